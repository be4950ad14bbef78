package tracks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rrgraph/internal/domain"
)

func points(coords ...[2]int) []domain.Point {
	out := make([]domain.Point, len(coords))
	for i, c := range coords {
		out[i] = domain.P(c[0], c[1])
	}
	return out
}

// Two columns and two rows over a 3x5 block.
func ladder(t *testing.T) ([]domain.Track, []domain.Connection) {
	t.Helper()
	pos := points(
		[2]int{1, 1}, [2]int{3, 1},
		[2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2},
		[2]int{1, 3}, [2]int{3, 3},
		[2]int{1, 4}, [2]int{2, 4}, [2]int{3, 4},
		[2]int{1, 5}, [2]int{3, 5},
	)
	tracks, conns, err := MakeTracks([]int{1, 3}, []int{2, 4}, pos, Options{})
	require.NoError(t, err)
	return tracks, conns
}

func TestMakeTracks(t *testing.T) {
	t.Run("two columns and two rows", func(t *testing.T) {
		tracks, conns := ladder(t)

		assert.Equal(t, []domain.Track{
			{Direction: domain.TrackY, XLow: 1, XHigh: 1, YLow: 1, YHigh: 5},
			{Direction: domain.TrackY, XLow: 3, XHigh: 3, YLow: 1, YHigh: 5},
			{Direction: domain.TrackX, XLow: 1, XHigh: 3, YLow: 2, YHigh: 2},
			{Direction: domain.TrackX, XLow: 1, XHigh: 3, YLow: 4, YHigh: 4},
		}, tracks)
		assert.Equal(t, []domain.Connection{{A: 2, B: 0}, {A: 2, B: 1}, {A: 3, B: 0}}, conns)
	})

	t.Run("L shaped point set", func(t *testing.T) {
		pos := points(
			[2]int{68, 48}, [2]int{69, 48},
			[2]int{68, 49}, [2]int{69, 49},
			[2]int{69, 50},
			[2]int{69, 51},
			[2]int{69, 52},
			[2]int{69, 53}, [2]int{70, 53}, [2]int{71, 53}, [2]int{72, 53},
		)
		tracks, conns, err := MakeTracks([]int{68, 69}, []int{53}, pos, Options{})
		require.NoError(t, err)

		assert.Equal(t, []domain.Track{
			{Direction: domain.TrackY, XLow: 68, XHigh: 68, YLow: 48, YHigh: 53},
			{Direction: domain.TrackY, XLow: 69, XHigh: 69, YLow: 48, YHigh: 53},
			{Direction: domain.TrackX, XLow: 68, XHigh: 72, YLow: 53, YHigh: 53},
		}, tracks)
		assert.Equal(t, []domain.Connection{{A: 2, B: 0}, {A: 2, B: 1}}, conns)
	})

	t.Run("grid bounds clamp track extents", func(t *testing.T) {
		pos := points([2]int{1, 0}, [2]int{1, 2}, [2]int{6, 2})
		tracks, _, err := MakeTracks([]int{1}, []int{2}, pos, Options{GridWidth: 6, GridHeight: 3})
		require.NoError(t, err)

		require.Len(t, tracks, 2)
		assert.Equal(t, 1, tracks[0].YLow)
		assert.Equal(t, 1, tracks[0].YHigh)
		assert.Equal(t, 1, tracks[1].XLow)
		assert.Equal(t, 4, tracks[1].XHigh)
	})

	t.Run("single track has no connections", func(t *testing.T) {
		tracks, conns, err := MakeTracks([]int{2}, nil, points([2]int{2, 1}, [2]int{2, 4}), Options{})
		require.NoError(t, err)
		assert.Len(t, tracks, 1)
		assert.Empty(t, conns)
	})

	t.Run("uncovered point fails", func(t *testing.T) {
		_, _, err := MakeTracks([]int{1}, []int{2}, points([2]int{1, 1}, [2]int{5, 5}), Options{})
		assert.ErrorContains(t, err, "(5,5)")
	})

	t.Run("several tracks in one dimension fail", func(t *testing.T) {
		_, _, err := MakeTracks([]int{1, 3}, nil, points([2]int{1, 1}, [2]int{3, 1}), Options{})
		assert.Error(t, err)
	})

	t.Run("no points fails", func(t *testing.T) {
		_, _, err := MakeTracks([]int{1}, []int{1}, nil, Options{})
		assert.Error(t, err)
	})
}

func TestVerifyTracks(t *testing.T) {
	t.Run("connected ladder passes", func(t *testing.T) {
		assert.NoError(t, New(ladder(t)).VerifyTracks())
	})

	t.Run("missing connection leaves a group behind", func(t *testing.T) {
		tracks, conns := ladder(t)
		err := New(tracks, conns[:2]).VerifyTracks()
		assert.ErrorContains(t, err, "2 disconnected groups")
	})

	t.Run("same direction join fails", func(t *testing.T) {
		tracks, _ := ladder(t)
		err := New(tracks, []domain.Connection{{A: 0, B: 1}}).VerifyTracks()
		assert.ErrorContains(t, err, "two Y tracks")
	})

	t.Run("redundant connection is ignored", func(t *testing.T) {
		tracks, conns := ladder(t)
		conns = append(conns, domain.Connection{A: 3, B: 1})
		assert.NoError(t, New(tracks, conns).VerifyTracks())
	})

	t.Run("dangling index fails", func(t *testing.T) {
		tracks, _ := ladder(t)
		err := New(tracks, []domain.Connection{{A: 2, B: 9}}).VerifyTracks()
		assert.Error(t, err)
	})
}

func TestIsWireAdjacentToTrack(t *testing.T) {
	tr := New(ladder(t))

	tests := []struct {
		name  string
		idx   int
		coord domain.Point
		want  domain.Side
	}{
		{"on X track row", 2, domain.P(2, 2), domain.SideTop},
		{"row above X track", 2, domain.P(2, 3), domain.SideBottom},
		{"two rows above X track", 2, domain.P(2, 4), domain.SideNone},
		{"past X track end", 2, domain.P(4, 2), domain.SideNone},
		{"on Y track column", 0, domain.P(1, 3), domain.SideRight},
		{"column right of Y track", 0, domain.P(2, 3), domain.SideLeft},
		{"below Y track start", 0, domain.P(1, 0), domain.SideNone},
		{"bad index", 9, domain.P(1, 1), domain.SideNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.IsWireAdjacentToTrack(tt.idx, tt.coord))
		})
	}
}

func TestGetTracksForWireAtCoord(t *testing.T) {
	tr := New(ladder(t))

	t.Run("collects one track per side", func(t *testing.T) {
		assert.Equal(t, map[domain.Side]int{
			domain.SideLeft:   0,
			domain.SideBottom: 2,
		}, tr.GetTracksForWireAtCoord(domain.P(2, 3)))

		assert.Equal(t, map[domain.Side]int{
			domain.SideRight: 1,
			domain.SideTop:   3,
		}, tr.GetTracksForWireAtCoord(domain.P(3, 4)))
	})

	t.Run("cached result is not shared with callers", func(t *testing.T) {
		first := tr.GetTracksForWireAtCoord(domain.P(2, 3))
		first[domain.SideTop] = 99

		again := tr.GetTracksForWireAtCoord(domain.P(2, 3))
		_, ok := again[domain.SideTop]
		assert.False(t, ok)
	})

	t.Run("far away coordinate has no tracks", func(t *testing.T) {
		assert.Empty(t, tr.GetTracksForWireAtCoord(domain.P(40, 40)))
	})
}
