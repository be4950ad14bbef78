package domain

import (
	"strings"
	"testing"
)

func chanNode(id uint32, nodeType NodeType) Node {
	return Node{
		ID:        id,
		Type:      nodeType,
		Direction: DirectionBi,
		Capacity:  1,
		XLow:      1,
		XHigh:     3,
		YLow:      2,
		YHigh:     2,
	}
}

func TestNewGraph(t *testing.T) {
	t.Run("creates empty graph with initialized collections", func(t *testing.T) {
		graph := NewGraph(Tool{Name: "rrgraph"})

		if graph.Nodes == nil || len(graph.Nodes) != 0 {
			t.Errorf("expected empty Nodes slice, got %v", graph.Nodes)
		}
		if graph.Edges == nil || len(graph.Edges) != 0 {
			t.Errorf("expected empty Edges slice, got %v", graph.Edges)
		}
		if graph.Tool.Name != "rrgraph" {
			t.Errorf("expected tool name rrgraph, got %s", graph.Tool.Name)
		}
	})
}

func TestGraphAddEdge(t *testing.T) {
	graph := NewGraph(Tool{})

	t.Run("returns positional index", func(t *testing.T) {
		if idx := graph.AddEdge(NewEdge(0, 1, 0)); idx != 0 {
			t.Errorf("expected index 0, got %d", idx)
		}
		if idx := graph.AddEdge(NewEdge(1, 0, 0)); idx != 1 {
			t.Errorf("expected index 1, got %d", idx)
		}
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		if graph.Edges[0].SrcNode != 0 || graph.Edges[1].SrcNode != 1 {
			t.Errorf("unexpected edge order: %v", graph.Edges)
		}
	})
}

func TestGraphValidate(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		edges   []Edge
		wantErr string
	}{
		{
			name:  "valid graph",
			nodes: []Node{chanNode(0, NodeTypeChanX), chanNode(1, NodeTypeChanY)},
			edges: []Edge{NewEdge(0, 1, 0), NewEdge(1, 0, 0)},
		},
		{
			name:  "empty graph",
			nodes: nil,
			edges: nil,
		},
		{
			name:    "duplicate node id",
			nodes:   []Node{chanNode(0, NodeTypeChanX), chanNode(0, NodeTypeChanY)},
			wantErr: "duplicate node id 0",
		},
		{
			name:    "unknown source",
			nodes:   []Node{chanNode(0, NodeTypeChanX)},
			edges:   []Edge{NewEdge(5, 0, 0)},
			wantErr: "unknown source node 5",
		},
		{
			name:    "unknown sink",
			nodes:   []Node{chanNode(0, NodeTypeChanX)},
			edges:   []Edge{NewEdge(0, 9, 0)},
			wantErr: "unknown sink node 9",
		},
		{
			name:    "bad node type",
			nodes:   []Node{chanNode(0, "WIRE")},
			wantErr: "unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph := NewGraph(Tool{})
			for _, n := range tt.nodes {
				graph.AddNode(n)
			}
			for _, e := range tt.edges {
				graph.AddEdge(e)
			}

			err := graph.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
