package ucap

import (
	capnp "capnproto.org/go/capnp/v3"
)

// RrNodes owns the node list of a graph.
type RrNodes capnp.Struct

func NewRrNodes(s *capnp.Segment) (RrNodes, error) {
	st, err := capnp.NewStruct(s, rrNodesSize)
	return RrNodes(st), err
}

func (s RrNodes) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s RrNodes) Nodes() (Node_List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return Node_List(p.List()), err
}

func (s RrNodes) HasNodes() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s RrNodes) NewNodes(n int32) (Node_List, error) {
	l, err := NewNode_List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return Node_List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}

// Node is one routing resource node.
//
// Layout: id @0 (u32), type @4 (u16), direction @6 (u16), capacity @8 (u32),
// xlow @12, xhigh @14, ylow @16, yhigh @18, ptc @20 (u16 each).
type Node capnp.Struct

func NewNode(s *capnp.Segment) (Node, error) {
	st, err := capnp.NewStruct(s, nodeSize)
	return Node(st), err
}

func (s Node) Id() uint32 {
	return capnp.Struct(s).Uint32(0)
}

func (s Node) SetId(v uint32) {
	capnp.Struct(s).SetUint32(0, v)
}

func (s Node) Type() uint16 {
	return capnp.Struct(s).Uint16(4)
}

func (s Node) SetType(v uint16) {
	capnp.Struct(s).SetUint16(4, v)
}

func (s Node) Direction() uint16 {
	return capnp.Struct(s).Uint16(6)
}

func (s Node) SetDirection(v uint16) {
	capnp.Struct(s).SetUint16(6, v)
}

func (s Node) Capacity() uint32 {
	return capnp.Struct(s).Uint32(8)
}

func (s Node) SetCapacity(v uint32) {
	capnp.Struct(s).SetUint32(8, v)
}

func (s Node) Xlow() uint16 {
	return capnp.Struct(s).Uint16(12)
}

func (s Node) SetXlow(v uint16) {
	capnp.Struct(s).SetUint16(12, v)
}

func (s Node) Xhigh() uint16 {
	return capnp.Struct(s).Uint16(14)
}

func (s Node) SetXhigh(v uint16) {
	capnp.Struct(s).SetUint16(14, v)
}

func (s Node) Ylow() uint16 {
	return capnp.Struct(s).Uint16(16)
}

func (s Node) SetYlow(v uint16) {
	capnp.Struct(s).SetUint16(16, v)
}

func (s Node) Yhigh() uint16 {
	return capnp.Struct(s).Uint16(18)
}

func (s Node) SetYhigh(v uint16) {
	capnp.Struct(s).SetUint16(18, v)
}

func (s Node) Ptc() uint16 {
	return capnp.Struct(s).Uint16(20)
}

func (s Node) SetPtc(v uint16) {
	capnp.Struct(s).SetUint16(20, v)
}

// Node_List is a list of Node.
type Node_List = capnp.StructList[Node]

func NewNode_List(s *capnp.Segment, sz int32) (Node_List, error) {
	l, err := capnp.NewCompositeList(s, nodeSize, sz)
	return capnp.StructList[Node](l), err
}
