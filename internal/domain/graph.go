package domain

import (
	"fmt"
	"time"
)

// Tool identifies the program that produced a graph
type Tool struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Graph is the in-memory form of a routing resource graph.
// Edge order is significant: it is the index order of the serialized edge list.
type Graph struct {
	Tool  Tool   `json:"tool" yaml:"tool"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// NewGraph creates an empty graph
func NewGraph(tool Tool) *Graph {
	return &Graph{
		Tool:  tool,
		Nodes: make([]Node, 0),
		Edges: make([]Edge, 0),
	}
}

// AddNode appends a node
func (g *Graph) AddNode(node Node) {
	g.Nodes = append(g.Nodes, node)
}

// AddEdge appends an edge and returns its index
func (g *Graph) AddEdge(edge Edge) int {
	g.Edges = append(g.Edges, edge)
	return len(g.Edges) - 1
}

// Validate checks node ids are unique and every edge endpoint names a node
func (g *Graph) Validate() error {
	ids := make(map[uint32]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if err := n.Validate(); err != nil {
			return err
		}
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("duplicate node id %d", n.ID)
		}
		ids[n.ID] = struct{}{}
	}

	for i, e := range g.Edges {
		if _, ok := ids[e.SrcNode]; !ok {
			return fmt.Errorf("edge %d: unknown source node %d", i, e.SrcNode)
		}
		if _, ok := ids[e.SinkNode]; !ok {
			return fmt.Errorf("edge %d: unknown sink node %d", i, e.SinkNode)
		}
	}

	return nil
}

// GraphSummary is the listing view of a stored graph
type GraphSummary struct {
	ID        string    `json:"id"`
	ToolName  string    `json:"tool_name"`
	NodeCount int       `json:"node_count"`
	EdgeCount int       `json:"edge_count"`
	CreatedAt time.Time `json:"created_at"`
}
