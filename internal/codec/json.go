package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"rrgraph/internal/domain"
)

// JSONCodec reads and writes a graph as a single JSON document.
type JSONCodec struct {
	indent string
}

func NewJSONCodec() *JSONCodec {
	return &JSONCodec{indent: "  "}
}

func (c *JSONCodec) Format() string {
	return "json"
}

// Parse rejects unknown fields and anything after the first document.
func (c *JSONCodec) Parse(r io.Reader) (*domain.Graph, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	g := domain.NewGraph(domain.Tool{})
	if err := dec.Decode(g); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse JSON: trailing data after graph")
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid graph: %w", err)
	}
	return g, nil
}

func (c *JSONCodec) Export(g *domain.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", c.indent)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
