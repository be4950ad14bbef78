package domain

import "fmt"

// TrackDirection is the axis a track runs along
type TrackDirection string

const (
	TrackX TrackDirection = "X"
	TrackY TrackDirection = "Y"
)

// Track is a wire running from one grid position to another along X or Y.
// Bounds are inclusive.
type Track struct {
	Direction TrackDirection `json:"direction" yaml:"direction"`
	XLow      int            `json:"x_low" yaml:"x_low"`
	XHigh     int            `json:"x_high" yaml:"x_high"`
	YLow      int            `json:"y_low" yaml:"y_low"`
	YHigh     int            `json:"y_high" yaml:"y_high"`
}

func (t Track) String() string {
	return fmt.Sprintf("Track(%s, x=%d..%d, y=%d..%d)", t.Direction, t.XLow, t.XHigh, t.YLow, t.YHigh)
}

// Connection joins two tracks, by index into a track list
type Connection struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
}

// Point is a grid coordinate
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// P is shorthand for a Point literal
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Side is where a wire sits relative to an adjacent track
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "LEFT"
	case SideRight:
		return "RIGHT"
	case SideTop:
		return "TOP"
	case SideBottom:
		return "BOTTOM"
	default:
		return "NO_SIDE"
	}
}
