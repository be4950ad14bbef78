package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rrgraph/internal/domain"
	"rrgraph/internal/ucap"
)

func TestNodeListWriter(t *testing.T) {
	node := domain.Node{
		ID:        7,
		Type:      domain.NodeTypeChanY,
		Direction: domain.DirectionBi,
		Capacity:  1,
		XLow:      3,
		XHigh:     3,
		YLow:      1,
		YHigh:     5,
		Ptc:       2,
	}

	t.Run("writes every node field", func(t *testing.T) {
		msg := newGraphMessage(t)
		w, err := NewNodeListWriter(msg, 2)
		require.NoError(t, err)
		require.NoError(t, w.AddNode(1, node))

		root, err := ucap.ReadRootRrGraph(msg)
		require.NoError(t, err)
		container, err := root.RrNodes()
		require.NoError(t, err)
		nodes, err := container.Nodes()
		require.NoError(t, err)
		require.Equal(t, 2, nodes.Len())

		rec := nodes.At(1)
		assert.Equal(t, uint32(7), rec.Id())
		assert.Equal(t, domain.NodeTypeChanY.Code(), rec.Type())
		assert.Equal(t, domain.DirectionBi.Code(), rec.Direction())
		assert.Equal(t, uint32(1), rec.Capacity())
		assert.Equal(t, uint16(3), rec.Xlow())
		assert.Equal(t, uint16(3), rec.Xhigh())
		assert.Equal(t, uint16(1), rec.Ylow())
		assert.Equal(t, uint16(5), rec.Yhigh())
		assert.Equal(t, uint16(2), rec.Ptc())

		assert.Equal(t, uint16(0), nodes.At(0).Type())
	})

	t.Run("node and edge lists share one message", func(t *testing.T) {
		msg := newGraphMessage(t)
		nw, err := NewNodeListWriter(msg, 1)
		require.NoError(t, err)
		ew, err := NewEdgeListWriter(msg, 1)
		require.NoError(t, err)

		require.NoError(t, nw.AddNode(0, node))
		require.NoError(t, ew.AddEdge(0, 7, 7, 0))
		assert.Equal(t, []edgeRecord{{7, 7, 0}}, readEdges(t, msg))
	})

	t.Run("misuse errors", func(t *testing.T) {
		var w NodeListWriter
		assert.ErrorIs(t, w.AddNode(0, node), ErrNotInitialized)

		msg := newGraphMessage(t)
		require.NoError(t, w.Init(msg, 1))
		assert.ErrorIs(t, w.Init(msg, 1), ErrAlreadyInitialized)
		assert.ErrorIs(t, w.AddNode(1, node), ErrIndexOutOfRange)

		_, err := NewNodeListWriter(msg, 1)
		assert.ErrorIs(t, err, ErrListAllocated)
	})
}
