// Package ucap holds the Cap'n Proto bindings for the subset of the routing
// resource graph schema that rrgraph reads and writes.
//
// The layouts are rrgraph's own: a subset of the rr_graph record fields in a
// slot order private to this package, so other rr_graph readers cannot load
// these files. Every record is a capnp.Struct with fixed data and pointer
// sections, and lists of records are composite lists. Field offsets are part of
// the wire format and must not be reordered.
package ucap

import (
	capnp "capnproto.org/go/capnp/v3"
)

var (
	rrGraphSize = capnp.ObjectSize{DataSize: 0, PointerCount: 5}
	rrNodesSize = capnp.ObjectSize{DataSize: 0, PointerCount: 1}
	rrEdgesSize = capnp.ObjectSize{DataSize: 0, PointerCount: 1}
	nodeSize    = capnp.ObjectSize{DataSize: 24, PointerCount: 0}
	edgeSize    = capnp.ObjectSize{DataSize: 16, PointerCount: 0}
)

// NewGraphMessage allocates a single-segment message with an empty RrGraph root.
func NewGraphMessage() (*capnp.Message, RrGraph, error) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		return nil, RrGraph{}, err
	}

	root, err := NewRootRrGraph(seg)
	if err != nil {
		msg.Release()
		return nil, RrGraph{}, err
	}

	return msg, root, nil
}

// RrGraph is the root of a serialized routing resource graph.
type RrGraph capnp.Struct

func NewRrGraph(s *capnp.Segment) (RrGraph, error) {
	st, err := capnp.NewStruct(s, rrGraphSize)
	return RrGraph(st), err
}

func NewRootRrGraph(s *capnp.Segment) (RrGraph, error) {
	st, err := capnp.NewRootStruct(s, rrGraphSize)
	return RrGraph(st), err
}

// ReadRootRrGraph returns the message root. The result is invalid (IsValid
// reports false) when the message has no root yet.
func ReadRootRrGraph(msg *capnp.Message) (RrGraph, error) {
	root, err := msg.Root()
	return RrGraph(root.Struct()), err
}

func (s RrGraph) IsValid() bool {
	return capnp.Struct(s).IsValid()
}

func (s RrGraph) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s RrGraph) ToolName() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s RrGraph) SetToolName(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

func (s RrGraph) ToolVersion() (string, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.Text(), err
}

func (s RrGraph) SetToolVersion(v string) error {
	return capnp.Struct(s).SetText(1, v)
}

func (s RrGraph) ToolComment() (string, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return p.Text(), err
}

func (s RrGraph) SetToolComment(v string) error {
	return capnp.Struct(s).SetText(2, v)
}

func (s RrGraph) RrNodes() (RrNodes, error) {
	p, err := capnp.Struct(s).Ptr(3)
	return RrNodes(p.Struct()), err
}

func (s RrGraph) HasRrNodes() bool {
	return capnp.Struct(s).HasPtr(3)
}

// NewRrNodes allocates the node container and links it into the graph.
func (s RrGraph) NewRrNodes() (RrNodes, error) {
	ss, err := NewRrNodes(capnp.Struct(s).Segment())
	if err != nil {
		return RrNodes{}, err
	}
	err = capnp.Struct(s).SetPtr(3, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s RrGraph) RrEdges() (RrEdges, error) {
	p, err := capnp.Struct(s).Ptr(4)
	return RrEdges(p.Struct()), err
}

func (s RrGraph) HasRrEdges() bool {
	return capnp.Struct(s).HasPtr(4)
}

// NewRrEdges allocates the edge container and links it into the graph.
func (s RrGraph) NewRrEdges() (RrEdges, error) {
	ss, err := NewRrEdges(capnp.Struct(s).Segment())
	if err != nil {
		return RrEdges{}, err
	}
	err = capnp.Struct(s).SetPtr(4, capnp.Struct(ss).ToPtr())
	return ss, err
}
