// Package builder turns a build spec into a routing resource graph and moves
// graphs in and out of Cap'n Proto messages.
package builder

import (
	"fmt"
	"math"
	"sort"

	"rrgraph/internal/channel"
	"rrgraph/internal/domain"
	"rrgraph/internal/tracks"
)

// Build lays out tracks for spec and returns the resulting graph. Each track
// becomes one channel node whose id is the track index; each connection becomes
// a pair of directed edges.
func Build(spec *domain.BuildSpec) (*domain.Graph, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	trackList, conns, err := tracks.MakeTracks(spec.Xs, spec.Ys, spec.Points, tracks.Options{
		GridWidth:  spec.GridWidth,
		GridHeight: spec.GridHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to make tracks: %w", err)
	}

	if err := tracks.New(trackList, conns).VerifyTracks(); err != nil {
		return nil, fmt.Errorf("failed to verify tracks: %w", err)
	}

	lanes, err := assignLanes(trackList)
	if err != nil {
		return nil, err
	}

	g := domain.NewGraph(spec.Tool)
	for idx, t := range trackList {
		node, err := trackNode(idx, t, lanes[idx])
		if err != nil {
			return nil, err
		}
		g.AddNode(node)
	}

	for _, c := range conns {
		e := domain.NewEdge(uint32(c.A), uint32(c.B), spec.SwitchID)
		g.AddEdge(e)
		g.AddEdge(e.Reverse())
	}

	return g, nil
}

// assignLanes packs tracks that share a row or column into non-overlapping lanes.
func assignLanes(trackList []domain.Track) (map[int]int, error) {
	type key struct {
		dir   domain.TrackDirection
		coord int
	}

	groups := make(map[key][]channel.Track)
	for idx, t := range trackList {
		if t.Direction == domain.TrackX {
			k := key{domain.TrackX, t.YLow}
			groups[k] = append(groups[k], channel.Track{Start: t.XLow, End: t.XHigh, Index: idx})
		} else {
			k := key{domain.TrackY, t.XLow}
			groups[k] = append(groups[k], channel.Track{Start: t.YLow, End: t.YHigh, Index: idx})
		}
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].dir != keys[j].dir {
			return keys[i].dir < keys[j].dir
		}
		return keys[i].coord < keys[j].coord
	})

	lanes := make(map[int]int, len(trackList))
	for _, k := range keys {
		ch, err := channel.New(groups[k])
		if err != nil {
			return nil, fmt.Errorf("failed to pack %s channel at %d: %w", k.dir, k.coord, err)
		}
		ch.Pack()
		for idx, lane := range ch.Assignments() {
			lanes[idx] = lane
		}
	}

	return lanes, nil
}

func trackNode(idx int, t domain.Track, lane int) (domain.Node, error) {
	for _, v := range []int{t.XLow, t.XHigh, t.YLow, t.YHigh, lane} {
		if v < 0 || v > math.MaxUint16 {
			return domain.Node{}, fmt.Errorf("track %d (%s): coordinate %d out of range", idx, t, v)
		}
	}

	nodeType := domain.NodeTypeChanY
	if t.Direction == domain.TrackX {
		nodeType = domain.NodeTypeChanX
	}

	return domain.Node{
		ID:        uint32(idx),
		Type:      nodeType,
		Direction: domain.DirectionBi,
		Capacity:  1,
		XLow:      uint16(t.XLow),
		XHigh:     uint16(t.XHigh),
		YLow:      uint16(t.YLow),
		YHigh:     uint16(t.YHigh),
		Ptc:       uint16(lane),
	}, nil
}
