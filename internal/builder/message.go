package builder

import (
	"fmt"

	capnp "capnproto.org/go/capnp/v3"

	"rrgraph/internal/domain"
	"rrgraph/internal/ucap"
	"rrgraph/internal/writer"
)

// WriteMessage serializes g into a new message. The caller owns the message and
// must Release it.
func WriteMessage(g *domain.Graph) (*capnp.Message, error) {
	msg, root, err := ucap.NewGraphMessage()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate message: %w", err)
	}

	if err := writeGraph(msg, root, g); err != nil {
		msg.Release()
		return nil, err
	}
	return msg, nil
}

func writeGraph(msg *capnp.Message, root ucap.RrGraph, g *domain.Graph) error {
	if err := root.SetToolName(g.Tool.Name); err != nil {
		return fmt.Errorf("failed to set tool name: %w", err)
	}
	if err := root.SetToolVersion(g.Tool.Version); err != nil {
		return fmt.Errorf("failed to set tool version: %w", err)
	}
	if err := root.SetToolComment(g.Tool.Comment); err != nil {
		return fmt.Errorf("failed to set tool comment: %w", err)
	}

	nodes, err := writer.NewNodeListWriter(msg, len(g.Nodes))
	if err != nil {
		return fmt.Errorf("failed to init node list: %w", err)
	}
	for i, n := range g.Nodes {
		if err := nodes.AddNode(i, n); err != nil {
			return fmt.Errorf("failed to write node %d: %w", i, err)
		}
	}

	edges, err := writer.NewEdgeListWriter(msg, len(g.Edges))
	if err != nil {
		return fmt.Errorf("failed to init edge list: %w", err)
	}
	for i, e := range g.Edges {
		if err := edges.AddEdge(i, e.SrcNode, e.SinkNode, e.SwitchID); err != nil {
			return fmt.Errorf("failed to write edge %d: %w", i, err)
		}
	}

	return nil
}

// ReadMessage decodes a graph from msg. Missing node or edge lists read as empty.
func ReadMessage(msg *capnp.Message) (*domain.Graph, error) {
	root, err := ucap.ReadRootRrGraph(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph root: %w", err)
	}
	if !root.IsValid() {
		return nil, writer.ErrNoRoot
	}

	var tool domain.Tool
	if tool.Name, err = root.ToolName(); err != nil {
		return nil, fmt.Errorf("failed to read tool name: %w", err)
	}
	if tool.Version, err = root.ToolVersion(); err != nil {
		return nil, fmt.Errorf("failed to read tool version: %w", err)
	}
	if tool.Comment, err = root.ToolComment(); err != nil {
		return nil, fmt.Errorf("failed to read tool comment: %w", err)
	}

	g := domain.NewGraph(tool)

	if root.HasRrNodes() {
		if err := readNodes(root, g); err != nil {
			return nil, err
		}
	}
	if root.HasRrEdges() {
		if err := readEdges(root, g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func readNodes(root ucap.RrGraph, g *domain.Graph) error {
	container, err := root.RrNodes()
	if err != nil {
		return fmt.Errorf("failed to read node container: %w", err)
	}
	list, err := container.Nodes()
	if err != nil {
		return fmt.Errorf("failed to read nodes: %w", err)
	}

	for i := 0; i < list.Len(); i++ {
		rec := list.At(i)
		nodeType, err := domain.NodeTypeFromCode(rec.Type())
		if err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		dir, err := domain.NodeDirectionFromCode(rec.Direction())
		if err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		g.AddNode(domain.Node{
			ID:        rec.Id(),
			Type:      nodeType,
			Direction: dir,
			Capacity:  rec.Capacity(),
			XLow:      rec.Xlow(),
			XHigh:     rec.Xhigh(),
			YLow:      rec.Ylow(),
			YHigh:     rec.Yhigh(),
			Ptc:       rec.Ptc(),
		})
	}
	return nil
}

func readEdges(root ucap.RrGraph, g *domain.Graph) error {
	container, err := root.RrEdges()
	if err != nil {
		return fmt.Errorf("failed to read edge container: %w", err)
	}
	list, err := container.Edges()
	if err != nil {
		return fmt.Errorf("failed to read edges: %w", err)
	}

	for i := 0; i < list.Len(); i++ {
		rec := list.At(i)
		g.AddEdge(domain.NewEdge(rec.SrcNode(), rec.SinkNode(), rec.SwitchId()))
	}
	return nil
}
