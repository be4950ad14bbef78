package codec

import (
	"fmt"
	"io"

	capnp "capnproto.org/go/capnp/v3"

	"rrgraph/internal/builder"
	"rrgraph/internal/domain"
)

// CapnpCodec handles the binary Cap'n Proto stream format
type CapnpCodec struct {
	packed bool
}

// NewCapnpCodec creates a Cap'n Proto codec, optionally using packed encoding
func NewCapnpCodec(packed bool) *CapnpCodec {
	return &CapnpCodec{packed: packed}
}

// Format returns the codec format identifier
func (c *CapnpCodec) Format() string {
	if c.packed {
		return "capnp-packed"
	}
	return "capnp"
}

// Parse decodes one message from r
func (c *CapnpCodec) Parse(r io.Reader) (*domain.Graph, error) {
	var dec *capnp.Decoder
	if c.packed {
		dec = capnp.NewPackedDecoder(r)
	} else {
		dec = capnp.NewDecoder(r)
	}

	msg, err := dec.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode message: %w", err)
	}
	defer msg.Release()

	g, err := builder.ReadMessage(msg)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid graph: %w", err)
	}

	return g, nil
}

// Export writes g as a single message
func (c *CapnpCodec) Export(g *domain.Graph, w io.Writer) error {
	msg, err := builder.WriteMessage(g)
	if err != nil {
		return err
	}
	defer msg.Release()

	var enc *capnp.Encoder
	if c.packed {
		enc = capnp.NewPackedEncoder(w)
	} else {
		enc = capnp.NewEncoder(w)
	}

	if err := enc.Encode(msg); err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	return nil
}
