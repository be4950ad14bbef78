package writer

import (
	"fmt"

	capnp "capnproto.org/go/capnp/v3"

	"rrgraph/internal/ucap"
)

// EdgeListWriter fills the edge list of a graph message by index.
// The zero value is unbound; call Init or use NewEdgeListWriter.
type EdgeListWriter struct {
	edges ucap.Edge_List
	bound bool
}

// NewEdgeListWriter binds a writer to a freshly allocated edge list of
// numEdges records inside msg.
func NewEdgeListWriter(msg *capnp.Message, numEdges int) (*EdgeListWriter, error) {
	w := &EdgeListWriter{}
	if err := w.Init(msg, numEdges); err != nil {
		return nil, err
	}
	return w, nil
}

// Init allocates an edge list of numEdges records inside msg and binds the
// writer to it. msg must carry an RrGraph root without an edge list. The list
// length is final.
func (w *EdgeListWriter) Init(msg *capnp.Message, numEdges int) error {
	if w.bound {
		return ErrAlreadyInitialized
	}

	n, err := checkCount(numEdges)
	if err != nil {
		return err
	}

	root, err := graphRoot(msg)
	if err != nil {
		return err
	}

	var container ucap.RrEdges
	if root.HasRrEdges() {
		container, err = root.RrEdges()
		if err != nil {
			return fmt.Errorf("failed to read edge container: %w", err)
		}
		if container.HasEdges() {
			return fmt.Errorf("%w: edges", ErrListAllocated)
		}
	} else {
		container, err = root.NewRrEdges()
		if err != nil {
			return fmt.Errorf("failed to allocate edge container: %w", err)
		}
	}

	edges, err := container.NewEdges(n)
	if err != nil {
		return fmt.Errorf("failed to allocate %d edges: %w", n, err)
	}

	w.edges = edges
	w.bound = true
	return nil
}

// Len returns the number of records in the bound list, or 0 when unbound.
func (w *EdgeListWriter) Len() int {
	if !w.bound {
		return 0
	}
	return w.edges.Len()
}

// AddEdge writes record index. A second write to the same index overwrites the first.
func (w *EdgeListWriter) AddEdge(index int, srcNode, sinkNode, switchID uint32) error {
	if !w.bound {
		return ErrNotInitialized
	}
	if err := checkIndex(index, w.edges.Len()); err != nil {
		return err
	}

	edge := w.edges.At(index)
	edge.SetSrcNode(srcNode)
	edge.SetSinkNode(sinkNode)
	edge.SetSwitchId(switchID)
	return nil
}
