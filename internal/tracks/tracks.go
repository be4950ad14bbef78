// Package tracks builds channel tracks from a set of grid points and answers
// adjacency queries against them.
package tracks

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"rrgraph/internal/domain"
)

// Options bounds track extents to a device grid. Zero means unbounded.
type Options struct {
	GridWidth  int
	GridHeight int
}

// MakeTracks returns one Y track per column in xs and one X track per row in ys,
// spanning the bounding box of points, plus the connections that tie them
// together.
//
// Every point must sit on or just right of / above a column or row. Each X track
// connects to the first Y track and each Y track to the first X track; the X
// track always comes first in a connection, and duplicates are dropped.
func MakeTracks(xs, ys []int, points []domain.Point, opts Options) ([]domain.Track, []domain.Connection, error) {
	if len(points) == 0 {
		return nil, nil, errors.New("no points to cover")
	}

	xSet := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		xSet[x] = struct{}{}
	}
	ySet := make(map[int]struct{}, len(ys))
	for _, y := range ys {
		ySet[y] = struct{}{}
	}

	for _, p := range points {
		if !covered(xSet, p.X) && !covered(ySet, p.Y) {
			return nil, nil, fmt.Errorf("point (%d,%d) is not covered by any column or row", p.X, p.Y)
		}
	}

	xMin, xMax := points[0].X, points[0].X
	yMin, yMax := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		xMin, xMax = min(xMin, p.X), max(xMax, p.X)
		yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
	}

	var (
		tracks  []domain.Track
		xTracks []int
		yTracks []int
	)

	for _, x := range xs {
		yHigh := yMax
		if opts.GridHeight > 0 {
			yHigh = min(yMax, opts.GridHeight-2)
		}
		tracks = append(tracks, domain.Track{
			Direction: domain.TrackY,
			XLow:      x,
			XHigh:     x,
			YLow:      max(yMin, 1),
			YHigh:     yHigh,
		})
		yTracks = append(yTracks, len(tracks)-1)
	}

	for _, y := range ys {
		xHigh := xMax
		if opts.GridWidth > 0 {
			xHigh = min(xMax, opts.GridWidth-2)
		}
		tracks = append(tracks, domain.Track{
			Direction: domain.TrackX,
			XLow:      max(xMin, 1),
			XHigh:     xHigh,
			YLow:      y,
			YHigh:     y,
		})
		xTracks = append(xTracks, len(tracks)-1)
	}

	if len(tracks) <= 1 {
		return tracks, nil, nil
	}

	if len(xTracks) == 0 || len(yTracks) == 0 {
		return nil, nil, errors.New("more than one track requires tracks in both dimensions")
	}

	seen := make(map[domain.Connection]struct{})
	var conns []domain.Connection
	for idx, track := range tracks {
		var c domain.Connection
		if track.Direction == domain.TrackX {
			c = domain.Connection{A: idx, B: yTracks[0]}
		} else {
			c = domain.Connection{A: xTracks[0], B: idx}
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		conns = append(conns, c)
	}

	return tracks, conns, nil
}

// covered reports whether v lies on a set line or one past it.
func covered(set map[int]struct{}, v int) bool {
	if _, ok := set[v]; ok {
		return true
	}
	if v > 0 {
		_, ok := set[v-1]
		return ok
	}
	return false
}

// Tracks groups tracks with the connections between them.
type Tracks struct {
	tracks      []domain.Track
	connections []domain.Connection

	cache map[domain.Point]map[domain.Side]int
}

func New(tracks []domain.Track, connections []domain.Connection) *Tracks {
	return &Tracks{
		tracks:      slices.Clone(tracks),
		connections: slices.Clone(connections),
		cache:       make(map[domain.Point]map[domain.Side]int),
	}
}

func (t *Tracks) Tracks() []domain.Track {
	return t.tracks
}

func (t *Tracks) Connections() []domain.Connection {
	return t.connections
}

// VerifyTracks checks that the connections join every track into a single
// group. A connection that merges two groups must join an X track to a Y track.
func (t *Tracks) VerifyTracks() error {
	if len(t.tracks) == 0 {
		return errors.New("no tracks")
	}

	parent := make([]int, len(t.tracks))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	groups := len(t.tracks)
	for _, c := range t.connections {
		if c.A < 0 || c.A >= len(t.tracks) || c.B < 0 || c.B >= len(t.tracks) {
			return fmt.Errorf("connection (%d,%d) references a missing track", c.A, c.B)
		}

		ra, rb := find(c.A), find(c.B)
		if ra == rb {
			continue
		}
		if t.tracks[c.A].Direction == t.tracks[c.B].Direction {
			return fmt.Errorf("connection (%d,%d) joins two %s tracks", c.A, c.B, t.tracks[c.A].Direction)
		}
		parent[ra] = rb
		groups--
	}

	if groups != 1 {
		return fmt.Errorf("tracks form %d disconnected groups", groups)
	}
	return nil
}

// IsWireAdjacentToTrack returns the side of track idx that a wire at coord
// touches, or SideNone. X tracks expose TOP (same row) and BOTTOM (row below the
// wire); Y tracks expose RIGHT (same column) and LEFT (column left of the wire).
func (t *Tracks) IsWireAdjacentToTrack(idx int, coord domain.Point) domain.Side {
	if idx < 0 || idx >= len(t.tracks) {
		return domain.SideNone
	}
	track := t.tracks[idx]

	switch track.Direction {
	case domain.TrackX:
		pinTop := track.YLow == coord.Y
		pinBottom := track.YLow == coord.Y-1
		if (pinTop || pinBottom) && track.XLow <= coord.X && coord.X <= track.XHigh {
			if pinTop {
				return domain.SideTop
			}
			return domain.SideBottom
		}
	case domain.TrackY:
		pinRight := track.XLow == coord.X
		pinLeft := track.XLow == coord.X-1
		if (pinRight || pinLeft) && track.YLow <= coord.Y && coord.Y <= track.YHigh {
			if pinRight {
				return domain.SideRight
			}
			return domain.SideLeft
		}
	}

	return domain.SideNone
}

// GetTracksForWireAtCoord maps each side a wire at coord can connect on to a
// track index. When several tracks touch the same side the last one wins.
// Results are memoized per coordinate.
func (t *Tracks) GetTracksForWireAtCoord(coord domain.Point) map[domain.Side]int {
	if conns, ok := t.cache[coord]; ok {
		return maps.Clone(conns)
	}

	conns := make(map[domain.Side]int)
	for idx := range t.tracks {
		if side := t.IsWireAdjacentToTrack(idx, coord); side != domain.SideNone {
			conns[side] = idx
		}
	}

	t.cache[coord] = conns
	return maps.Clone(conns)
}
