package domain

import "fmt"

// NodeType is the kind of routing resource a node models
type NodeType string

const (
	NodeTypeChanX  NodeType = "CHANX"
	NodeTypeChanY  NodeType = "CHANY"
	NodeTypeSource NodeType = "SOURCE"
	NodeTypeSink   NodeType = "SINK"
	NodeTypeOPin   NodeType = "OPIN"
	NodeTypeIPin   NodeType = "IPIN"
)

// Wire codes. Zero is reserved for "unset" so an unwritten record is detectable.
var nodeTypeCodes = map[NodeType]uint16{
	NodeTypeChanX:  1,
	NodeTypeChanY:  2,
	NodeTypeSource: 3,
	NodeTypeSink:   4,
	NodeTypeOPin:   5,
	NodeTypeIPin:   6,
}

// Code returns the wire code for the node type, or 0 if the type is unknown
func (t NodeType) Code() uint16 {
	return nodeTypeCodes[t]
}

// NodeTypeFromCode maps a wire code back to a NodeType
func NodeTypeFromCode(code uint16) (NodeType, error) {
	for t, c := range nodeTypeCodes {
		if c == code {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown node type code %d", code)
}

// NodeDirection is the signal direction along a channel wire
type NodeDirection string

const (
	DirectionNone NodeDirection = ""
	DirectionInc  NodeDirection = "INC_DIR"
	DirectionDec  NodeDirection = "DEC_DIR"
	DirectionBi   NodeDirection = "BI_DIR"
)

var nodeDirectionCodes = map[NodeDirection]uint16{
	DirectionNone: 0,
	DirectionInc:  1,
	DirectionDec:  2,
	DirectionBi:   3,
}

// Code returns the wire code for the direction
func (d NodeDirection) Code() uint16 {
	return nodeDirectionCodes[d]
}

// NodeDirectionFromCode maps a wire code back to a NodeDirection
func NodeDirectionFromCode(code uint16) (NodeDirection, error) {
	for d, c := range nodeDirectionCodes {
		if c == code {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown node direction code %d", code)
}

// Node is a routing resource in the graph
type Node struct {
	ID        uint32        `json:"id" yaml:"id"`
	Type      NodeType      `json:"type" yaml:"type"`
	Direction NodeDirection `json:"direction,omitempty" yaml:"direction,omitempty"`
	Capacity  uint32        `json:"capacity" yaml:"capacity"`
	XLow      uint16        `json:"xlow" yaml:"xlow"`
	XHigh     uint16        `json:"xhigh" yaml:"xhigh"`
	YLow      uint16        `json:"ylow" yaml:"ylow"`
	YHigh     uint16        `json:"yhigh" yaml:"yhigh"`
	Ptc       uint16        `json:"ptc" yaml:"ptc"`
}

// IsChannel reports whether the node is a CHANX or CHANY wire
func (n Node) IsChannel() bool {
	return n.Type == NodeTypeChanX || n.Type == NodeTypeChanY
}

// Validate checks that the node is well formed
func (n Node) Validate() error {
	if n.Type.Code() == 0 {
		return fmt.Errorf("node %d: unknown type %q", n.ID, n.Type)
	}
	if _, ok := nodeDirectionCodes[n.Direction]; !ok {
		return fmt.Errorf("node %d: unknown direction %q", n.ID, n.Direction)
	}
	if n.XLow > n.XHigh || n.YLow > n.YHigh {
		return fmt.Errorf("node %d: inverted location (%d,%d)-(%d,%d)",
			n.ID, n.XLow, n.YLow, n.XHigh, n.YHigh)
	}
	return nil
}
