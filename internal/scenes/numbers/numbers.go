// Package numbers implements the random-number grid demo.
package numbers

import (
	"fmt"
	"strconv"

	"customgrid/internal/core"
	"customgrid/internal/scenes"
	gridcore "customgrid/pkg/core"
)

// Values placed by the scene fall in [MinValue, MaxValue).
const (
	MinValue = 1
	MaxValue = 100
)

// Scene stores a random number in each clicked cell.
type Scene struct {
	scenes.Base[int]
	rng  *gridcore.RNG
	seed int64
}

// New creates a number scene seeded from cfg.Seed.
func New(cfg core.SceneConfig) (*Scene, error) {
	s := &Scene{rng: gridcore.NewRNG(cfg.Seed), seed: cfg.Seed}
	if err := s.Init(cfg); err != nil {
		return nil, fmt.Errorf("numbers: %w", err)
	}
	return s, nil
}

// Name identifies the scene.
func (s *Scene) Name() string { return "numbers" }

// Reset empties the grid and reseeds the generator.
func (s *Scene) Reset() {
	s.Base.Reset()
	s.rng = gridcore.NewRNG(s.seed)
}

// Update places a fresh random number or removes the one under the cursor.
// A number is drawn only when a placement is requested.
func (s *Scene) Update(in core.Input) core.Event {
	return s.Apply(in, scenes.Hooks[int]{
		Spawn: func() int { return s.rng.IntRange(MinValue, MaxValue) },
	})
}

// Label renders the stored number, or nothing for an empty cell.
func (s *Scene) Label(x, y int) string {
	v, ok := s.Cells().Get(x, y)
	if !ok {
		return ""
	}
	return strconv.Itoa(v)
}

// Sum returns the total of every number on the grid.
func (s *Scene) Sum() int {
	sum := 0
	s.Cells().Each(func(_, _ int, v int) bool {
		sum += v
		return true
	})
	return sum
}

// StatusLines adds the running total to the HUD.
func (s *Scene) StatusLines() []core.StatusLine {
	return []core.StatusLine{{Label: "sum", Value: strconv.Itoa(s.Sum())}}
}

func init() {
	core.Register("numbers", func(cfg core.SceneConfig) (core.Scene, error) {
		s, err := New(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
