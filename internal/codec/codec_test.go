package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rrgraph/internal/domain"
)

func sampleGraph() *domain.Graph {
	g := domain.NewGraph(domain.Tool{Name: "rrgraph", Version: "1.0"})
	g.AddNode(domain.Node{ID: 0, Type: domain.NodeTypeChanY, Direction: domain.DirectionBi, Capacity: 1, XLow: 1, XHigh: 1, YLow: 1, YHigh: 5})
	g.AddNode(domain.Node{ID: 1, Type: domain.NodeTypeChanX, Direction: domain.DirectionBi, Capacity: 1, XLow: 1, XHigh: 3, YLow: 2, YHigh: 2, Ptc: 1})
	g.AddEdge(domain.NewEdge(1, 0, 2))
	g.AddEdge(domain.NewEdge(0, 1, 2))
	return g
}

func TestCodecsRoundTrip(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			c, err := Lookup(format)
			require.NoError(t, err)
			assert.Equal(t, format, c.Format())

			var buf bytes.Buffer
			require.NoError(t, c.Export(sampleGraph(), &buf))

			got, err := c.Parse(&buf)
			require.NoError(t, err)
			assert.Equal(t, sampleGraph(), got)
		})
	}
}

func TestLookupUnknownFormat(t *testing.T) {
	_, err := Lookup("xml")
	assert.ErrorContains(t, err, "xml")
}

func TestPackedIsSmaller(t *testing.T) {
	var plain, packed bytes.Buffer
	require.NoError(t, NewCapnpCodec(false).Export(sampleGraph(), &plain))
	require.NoError(t, NewCapnpCodec(true).Export(sampleGraph(), &packed))
	assert.Less(t, packed.Len(), plain.Len())
}

func TestParseRejectsDanglingEdge(t *testing.T) {
	input := `
tool:
  name: rrgraph
nodes:
  - {id: 0, type: CHANX, capacity: 1, xlow: 1, xhigh: 1, ylow: 1, yhigh: 1, ptc: 0}
edges:
  - {src: 0, sink: 5, switch: 0}
`
	_, err := NewYAMLCodec().Parse(strings.NewReader(input))
	assert.ErrorContains(t, err, "unknown sink node 5")
}

func TestJSONParseRejectsTrailingData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONCodec().Export(sampleGraph(), &buf))
	buf.WriteString(`{"tool":{}}`)

	_, err := NewJSONCodec().Parse(&buf)
	assert.ErrorContains(t, err, "trailing data")
}

func TestCapnpParseGarbage(t *testing.T) {
	_, err := NewCapnpCodec(false).Parse(strings.NewReader("not a message"))
	assert.Error(t, err)
}

func TestParseBuildSpec(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		input := `
tool:
  name: rrgraph
  comment: ladder
xs: [1, 3]
ys: [2]
points:
  - {x: 1, y: 1}
  - {x: 3, y: 2}
grid_width: 10
switch_id: 3
`
		spec, err := ParseBuildSpec(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, "ladder", spec.Tool.Comment)
		assert.Equal(t, []int{1, 3}, spec.Xs)
		assert.Equal(t, []domain.Point{domain.P(1, 1), domain.P(3, 2)}, spec.Points)
		assert.Equal(t, 10, spec.GridWidth)
		assert.Equal(t, uint32(3), spec.SwitchID)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParseBuildSpec(strings.NewReader("xs: [1]\ncolumns: [2]\n"))
		assert.Error(t, err)
	})

	t.Run("no points", func(t *testing.T) {
		_, err := ParseBuildSpec(strings.NewReader("xs: [1]\n"))
		assert.ErrorContains(t, err, "no points")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseBuildSpec(strings.NewReader(""))
		assert.Error(t, err)
	})
}
