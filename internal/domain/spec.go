package domain

import "errors"

// BuildSpec describes how to build a routing resource graph from channel tracks
type BuildSpec struct {
	Tool       Tool    `json:"tool" yaml:"tool"`
	Xs         []int   `json:"xs" yaml:"xs"`
	Ys         []int   `json:"ys" yaml:"ys"`
	Points     []Point `json:"points" yaml:"points"`
	GridWidth  int     `json:"grid_width,omitempty" yaml:"grid_width,omitempty"`
	GridHeight int     `json:"grid_height,omitempty" yaml:"grid_height,omitempty"`
	SwitchID   uint32  `json:"switch_id" yaml:"switch_id"`
}

// Validate checks the spec has something to build
func (s *BuildSpec) Validate() error {
	if len(s.Points) == 0 {
		return errors.New("build spec has no points")
	}
	if len(s.Xs) == 0 && len(s.Ys) == 0 {
		return errors.New("build spec has no columns or rows")
	}
	if s.GridWidth < 0 || s.GridHeight < 0 {
		return errors.New("grid dimensions must not be negative")
	}
	return nil
}
