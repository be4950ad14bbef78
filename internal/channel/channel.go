// Package channel packs channel tracks into the fewest lanes such that no two
// tracks in a lane overlap.
package channel

import (
	"fmt"
	"slices"
	"sort"
)

// Track is an inclusive interval [Start, End] along a channel, tagged with the
// caller's index for it.
type Track struct {
	Start int
	End   int
	Index int
}

func (t Track) length() int {
	return t.End - t.Start
}

func (t Track) overlaps(o Track) bool {
	return t.Start <= o.End && o.Start <= t.End
}

// Channel holds the tracks of one channel and, once packed, their lanes.
type Channel struct {
	tracks []Track
	trees  [][]Track
}

// New returns a channel over tracks, kept in input order.
func New(tracks []Track) (*Channel, error) {
	for _, t := range tracks {
		if t.Start > t.End {
			return nil, fmt.Errorf("track %d: start %d after end %d", t.Index, t.Start, t.End)
		}
	}
	return &Channel{tracks: slices.Clone(tracks)}, nil
}

func (c *Channel) Tracks() []Track {
	return c.tracks
}

// Trees returns the lanes from the last Pack, each in ascending start order.
func (c *Channel) Trees() [][]Track {
	return c.trees
}

// Pack assigns tracks to lanes first-fit, longest first. Ties go to the track
// that starts first, then to input order. Any previous packing is discarded.
func (c *Channel) Pack() [][]Track {
	order := slices.Clone(c.tracks)
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].length() != order[j].length() {
			return order[i].length() > order[j].length()
		}
		return order[i].Start < order[j].Start
	})

	c.trees = nil
	for _, t := range order {
		c.place(t)
	}
	return c.trees
}

func (c *Channel) place(t Track) {
	for i, tree := range c.trees {
		pos := sort.Search(len(tree), func(k int) bool { return tree[k].Start > t.Start })
		if pos > 0 && tree[pos-1].overlaps(t) {
			continue
		}
		if pos < len(tree) && tree[pos].overlaps(t) {
			continue
		}
		c.trees[i] = slices.Insert(tree, pos, t)
		return
	}
	c.trees = append(c.trees, []Track{t})
}

// Assignments maps each track index to its lane from the last Pack.
func (c *Channel) Assignments() map[int]int {
	lanes := make(map[int]int, len(c.tracks))
	for lane, tree := range c.trees {
		for _, t := range tree {
			lanes[t.Index] = lane
		}
	}
	return lanes
}
