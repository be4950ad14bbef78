package writer

import (
	"fmt"

	capnp "capnproto.org/go/capnp/v3"

	"rrgraph/internal/domain"
	"rrgraph/internal/ucap"
)

// NodeListWriter fills the node list of a graph message by index.
type NodeListWriter struct {
	nodes ucap.Node_List
	bound bool
}

// NewNodeListWriter binds a writer to a freshly allocated node list.
func NewNodeListWriter(msg *capnp.Message, numNodes int) (*NodeListWriter, error) {
	w := &NodeListWriter{}
	if err := w.Init(msg, numNodes); err != nil {
		return nil, err
	}
	return w, nil
}

// Init allocates a node list of numNodes records inside msg.
func (w *NodeListWriter) Init(msg *capnp.Message, numNodes int) error {
	if w.bound {
		return ErrAlreadyInitialized
	}

	n, err := checkCount(numNodes)
	if err != nil {
		return err
	}

	root, err := graphRoot(msg)
	if err != nil {
		return err
	}

	var container ucap.RrNodes
	if root.HasRrNodes() {
		container, err = root.RrNodes()
		if err != nil {
			return fmt.Errorf("failed to read node container: %w", err)
		}
		if container.HasNodes() {
			return fmt.Errorf("%w: nodes", ErrListAllocated)
		}
	} else {
		container, err = root.NewRrNodes()
		if err != nil {
			return fmt.Errorf("failed to allocate node container: %w", err)
		}
	}

	nodes, err := container.NewNodes(n)
	if err != nil {
		return fmt.Errorf("failed to allocate %d nodes: %w", n, err)
	}

	w.nodes = nodes
	w.bound = true
	return nil
}

func (w *NodeListWriter) Len() int {
	if !w.bound {
		return 0
	}
	return w.nodes.Len()
}

// AddNode writes record index.
func (w *NodeListWriter) AddNode(index int, node domain.Node) error {
	if !w.bound {
		return ErrNotInitialized
	}
	if err := checkIndex(index, w.nodes.Len()); err != nil {
		return err
	}

	rec := w.nodes.At(index)
	rec.SetId(node.ID)
	rec.SetType(node.Type.Code())
	rec.SetDirection(node.Direction.Code())
	rec.SetCapacity(node.Capacity)
	rec.SetXlow(node.XLow)
	rec.SetXhigh(node.XHigh)
	rec.SetYlow(node.YLow)
	rec.SetYhigh(node.YHigh)
	rec.SetPtc(node.Ptc)
	return nil
}
