package ucap

import (
	capnp "capnproto.org/go/capnp/v3"
)

// RrEdges owns the edge list of a graph.
type RrEdges capnp.Struct

func NewRrEdges(s *capnp.Segment) (RrEdges, error) {
	st, err := capnp.NewStruct(s, rrEdgesSize)
	return RrEdges(st), err
}

func (s RrEdges) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s RrEdges) Edges() (Edge_List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return Edge_List(p.List()), err
}

func (s RrEdges) HasEdges() bool {
	return capnp.Struct(s).HasPtr(0)
}

// NewEdges allocates a list of n edges and links it into the container.
// The list length is fixed from here on.
func (s RrEdges) NewEdges(n int32) (Edge_List, error) {
	l, err := NewEdge_List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return Edge_List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}

// Edge is one routing resource edge: a switch between two nodes.
//
// Layout: srcNode @0, sinkNode @4, switchId @8 (uint32 each).
type Edge capnp.Struct

func NewEdge(s *capnp.Segment) (Edge, error) {
	st, err := capnp.NewStruct(s, edgeSize)
	return Edge(st), err
}

func (s Edge) SrcNode() uint32 {
	return capnp.Struct(s).Uint32(0)
}

func (s Edge) SetSrcNode(v uint32) {
	capnp.Struct(s).SetUint32(0, v)
}

func (s Edge) SinkNode() uint32 {
	return capnp.Struct(s).Uint32(4)
}

func (s Edge) SetSinkNode(v uint32) {
	capnp.Struct(s).SetUint32(4, v)
}

func (s Edge) SwitchId() uint32 {
	return capnp.Struct(s).Uint32(8)
}

func (s Edge) SetSwitchId(v uint32) {
	capnp.Struct(s).SetUint32(8, v)
}

// Edge_List is a list of Edge.
type Edge_List = capnp.StructList[Edge]

func NewEdge_List(s *capnp.Segment, sz int32) (Edge_List, error) {
	l, err := capnp.NewCompositeList(s, edgeSize, sz)
	return capnp.StructList[Edge](l), err
}
