package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customgrid/internal/core"
	"customgrid/internal/scenes"
	gridcore "customgrid/pkg/core"
)

func newScene(t *testing.T) *Scene {
	t.Helper()
	s, err := New(core.SceneConfig{Width: 5, Height: 4, CellSize: 128, Offset: gridcore.Vec2{X: 16, Y: 8}})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestSpawnAddsNodeAtPlacement(t *testing.T) {
	s := newScene(t)

	ev := s.Update(core.Input{Cursor: gridcore.Vec2{X: 16 + 130, Y: 8 + 260}, Place: true})
	require.Equal(t, core.Event{Kind: core.EventPlaced, X: 1, Y: 2}, ev)

	nodes := s.Nodes()
	require.Len(t, nodes, 1)
	m := nodes[0]
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, [2]int{1, 2}, [2]int{m.X, m.Y})
	assert.Equal(t, gridcore.Vec2{X: 16 + 128, Y: 8 + 256}, m.Pos)
	assert.Equal(t, "#1", s.Label(1, 2))
}

func TestRejectedSpawnIsDisposed(t *testing.T) {
	s := newScene(t)
	cursor := gridcore.Vec2{X: 20, Y: 20}
	s.Update(core.Input{Cursor: cursor, Place: true})

	var spawned *Marker
	ev := s.Apply(core.Input{Cursor: cursor, Place: true}, scenes.Hooks[*Marker]{
		Spawn: func() *Marker {
			spawned = &Marker{ID: 99}
			return spawned
		},
		Rejected: (*Marker).Dispose,
	})
	assert.Equal(t, core.EventMissed, ev.Kind)
	require.NotNil(t, spawned)
	assert.True(t, spawned.Disposed())
	assert.Len(t, s.Nodes(), 1)
}

func TestRemoveDropsNodeAndDisposes(t *testing.T) {
	s := newScene(t)
	a := gridcore.Vec2{X: 20, Y: 20}
	b := gridcore.Vec2{X: 300, Y: 20}
	s.Update(core.Input{Cursor: a, Place: true})
	s.Update(core.Input{Cursor: b, Place: true})
	first := s.Nodes()[0]

	ev := s.Update(core.Input{Cursor: a, Remove: true})
	require.Equal(t, core.EventRemoved, ev.Kind)
	assert.True(t, first.Disposed())

	nodes := s.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, 2, nodes[0].ID)
	assert.False(t, nodes[0].Disposed())
}

func TestResetDisposesEverything(t *testing.T) {
	s := newScene(t)
	for _, p := range s.Grid().CellPositions() {
		s.Update(core.Input{Cursor: p.Add(gridcore.Vec2{X: 1, Y: 1}), Place: true})
	}
	nodes := s.Nodes()
	require.Len(t, nodes, 20)

	s.Reset()
	assert.Empty(t, s.Nodes())
	assert.Zero(t, s.Grid().Count())
	for _, n := range nodes {
		assert.True(t, n.Disposed(), "marker %d", n.ID)
	}
}

func TestTriggerChangedKeepsNodesUnique(t *testing.T) {
	s := newScene(t)
	s.Update(core.Input{Cursor: gridcore.Vec2{X: 20, Y: 20}, Place: true})

	require.True(t, s.Cells().TriggerChanged(0, 0))
	assert.Len(t, s.Nodes(), 1)
}

func TestStatusReportsNodes(t *testing.T) {
	s := newScene(t)
	s.Update(core.Input{Cursor: gridcore.Vec2{X: 20, Y: 20}, Place: true})

	lines := core.Status(s, gridcore.Vec2{X: 20, Y: 20})
	assert.Contains(t, lines, core.StatusLine{Label: "cursor", Value: "(0,0) #1"})
	assert.Contains(t, lines, core.StatusLine{Label: "nodes", Value: "1"})
}
