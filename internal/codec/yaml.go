package codec

import (
	"fmt"
	"io"

	"rrgraph/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles generic YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlGraph represents the YAML structure for graph data
type yamlGraph struct {
	Tool  domain.Tool   `yaml:"tool"`
	Nodes []domain.Node `yaml:"nodes"`
	Edges []yamlEdge    `yaml:"edges"`
}

// yamlEdge is the compact YAML form of an edge
type yamlEdge struct {
	Src    uint32 `yaml:"src"`
	Sink   uint32 `yaml:"sink"`
	Switch uint32 `yaml:"switch"`
}

// Parse imports graph data from YAML
func (c *YAMLCodec) Parse(r io.Reader) (*domain.Graph, error) {
	var yg yamlGraph
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&yg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	g := domain.NewGraph(yg.Tool)
	for _, n := range yg.Nodes {
		g.AddNode(n)
	}
	for _, ye := range yg.Edges {
		g.AddEdge(domain.NewEdge(ye.Src, ye.Sink, ye.Switch))
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid graph: %w", err)
	}

	return g, nil
}

// Export exports graph data to YAML
func (c *YAMLCodec) Export(g *domain.Graph, w io.Writer) error {
	yg := yamlGraph{
		Tool:  g.Tool,
		Nodes: g.Nodes,
		Edges: make([]yamlEdge, 0, len(g.Edges)),
	}
	for _, e := range g.Edges {
		yg.Edges = append(yg.Edges, yamlEdge{Src: e.SrcNode, Sink: e.SinkNode, Switch: e.SwitchID})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&yg); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
