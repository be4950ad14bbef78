// Package codec reads and writes routing resource graphs in the formats rrgraph
// supports.
package codec

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"rrgraph/internal/domain"
)

// Importer interface for importing graph data from various formats
type Importer interface {
	Parse(r io.Reader) (*domain.Graph, error)
	Format() string
}

// Exporter interface for exporting graph data to various formats
type Exporter interface {
	Export(g *domain.Graph, w io.Writer) error
	Format() string
}

// Codec both imports and exports one format
type Codec interface {
	Importer
	Exporter
}

// ErrUnknownFormat is returned by Lookup for an unregistered format name
var ErrUnknownFormat = errors.New("unknown format")

var codecs = map[string]func() Codec{
	"capnp":        func() Codec { return NewCapnpCodec(false) },
	"capnp-packed": func() Codec { return NewCapnpCodec(true) },
	"yaml":         func() Codec { return NewYAMLCodec() },
	"json":         func() Codec { return NewJSONCodec() },
}

// Lookup returns the codec registered for format
func Lookup(format string) (Codec, error) {
	newCodec, ok := codecs[format]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	return newCodec(), nil
}

// Formats lists the registered format names in sorted order
func Formats() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
