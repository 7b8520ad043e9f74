// Package objects implements the spawned-object grid demo. Markers are
// owned by the scene: the grid only records where they sit, and the scene
// disposes of them when they leave the grid.
package objects

import (
	"fmt"
	"strconv"

	"customgrid/internal/core"
	"customgrid/internal/scenes"
	gridcore "customgrid/pkg/core"
)

// Marker is an object spawned into a cell.
type Marker struct {
	ID   int
	X, Y int
	Pos  gridcore.Vec2

	disposed bool
}

// Dispose releases the marker. Disposing twice is a no-op.
func (m *Marker) Dispose() { m.disposed = true }

// Disposed reports whether Dispose was called.
func (m *Marker) Disposed() bool { return m.disposed }

// Scene spawns markers into clicked cells and keeps a node list in sync
// with the grid through an observer.
type Scene struct {
	scenes.Base[*Marker]
	nodes  []*Marker
	nextID int
	cancel func()
}

// New creates an object scene.
func New(cfg core.SceneConfig) (*Scene, error) {
	s := &Scene{}
	if err := s.Init(cfg); err != nil {
		return nil, fmt.Errorf("objects: %w", err)
	}
	s.cancel = s.Cells().Observe(gridcore.ObserverFunc[*Marker](s.itemChanged))
	return s, nil
}

// Name identifies the scene.
func (s *Scene) Name() string { return "objects" }

func (s *Scene) itemChanged(x, y int, c gridcore.Cell[*Marker]) {
	if c.Present {
		c.Item.X, c.Item.Y = x, y
		for _, n := range s.nodes {
			if n == c.Item {
				return
			}
		}
		s.nodes = append(s.nodes, c.Item)
		return
	}
	for i, n := range s.nodes {
		if n.X == x && n.Y == y {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return
		}
	}
}

// Update spawns a marker into the cell under the cursor or removes and
// disposes the one already there.
func (s *Scene) Update(in core.Input) core.Event {
	return s.Apply(in, scenes.Hooks[*Marker]{
		Spawn: func() *Marker {
			s.nextID++
			return &Marker{ID: s.nextID}
		},
		Placed:   func(m *Marker, at gridcore.Vec2) { m.Pos = at },
		Rejected: (*Marker).Dispose,
		Removed:  (*Marker).Dispose,
	})
}

// Reset disposes every marker and empties the grid.
func (s *Scene) Reset() {
	s.Cells().Each(func(_, _ int, m *Marker) bool {
		m.Dispose()
		return true
	})
	s.Base.Reset()
}

// Close detaches the scene from its grid.
func (s *Scene) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Nodes returns the live markers in spawn order.
func (s *Scene) Nodes() []*Marker {
	return append([]*Marker(nil), s.nodes...)
}

// Label renders the marker id.
func (s *Scene) Label(x, y int) string {
	m, ok := s.Cells().Get(x, y)
	if !ok {
		return ""
	}
	return "#" + strconv.Itoa(m.ID)
}

// StatusLines adds the node count to the HUD.
func (s *Scene) StatusLines() []core.StatusLine {
	return []core.StatusLine{{Label: "nodes", Value: strconv.Itoa(len(s.nodes))}}
}

func init() {
	core.Register("objects", func(cfg core.SceneConfig) (core.Scene, error) {
		s, err := New(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
