// Package flags implements the boolean grid demo: a click marks a cell,
// a right click clears it.
package flags

import (
	"fmt"
	"strconv"

	"customgrid/internal/core"
	"customgrid/internal/scenes"
)

// Scene toggles boolean flags on a grid.
type Scene struct {
	scenes.Base[bool]
}

// New creates a flag scene.
func New(cfg core.SceneConfig) (*Scene, error) {
	s := &Scene{}
	if err := s.Init(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return s, nil
}

// Name identifies the scene.
func (s *Scene) Name() string { return "flags" }

// Update places or removes a flag under the cursor.
func (s *Scene) Update(in core.Input) core.Event {
	return s.Apply(in, scenes.Hooks[bool]{
		Spawn: func() bool { return true },
	})
}

// Label renders the flag stored in the cell.
func (s *Scene) Label(x, y int) string {
	v, _ := s.Cells().Get(x, y)
	return strconv.FormatBool(v)
}

func init() {
	core.Register("flags", func(cfg core.SceneConfig) (core.Scene, error) {
		s, err := New(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
