package domain

import "fmt"

// Edge is a switch connecting a source node to a sink node
type Edge struct {
	SrcNode  uint32 `json:"src_node" yaml:"src_node"`
	SinkNode uint32 `json:"sink_node" yaml:"sink_node"`
	SwitchID uint32 `json:"switch_id" yaml:"switch_id"`
}

// NewEdge creates a new edge
func NewEdge(srcNode, sinkNode, switchID uint32) Edge {
	return Edge{
		SrcNode:  srcNode,
		SinkNode: sinkNode,
		SwitchID: switchID,
	}
}

// Reverse returns the edge running the other way through the same switch
func (e Edge) Reverse() Edge {
	return Edge{
		SrcNode:  e.SinkNode,
		SinkNode: e.SrcNode,
		SwitchID: e.SwitchID,
	}
}

func (e Edge) String() string {
	return fmt.Sprintf("%d->%d (switch %d)", e.SrcNode, e.SinkNode, e.SwitchID)
}
