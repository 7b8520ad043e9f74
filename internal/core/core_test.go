package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customgrid/internal/core"
	_ "customgrid/internal/scenes/flags"
	_ "customgrid/internal/scenes/numbers"
	_ "customgrid/internal/scenes/objects"
	gridcore "customgrid/pkg/core"
)

func TestSceneNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"flags", "numbers", "objects"}, core.SceneNames())
}

func TestRegisterIgnoresIncomplete(t *testing.T) {
	core.Register("", func(core.SceneConfig) (core.Scene, error) { return nil, nil })
	core.Register("nil-factory", nil)
	assert.NotContains(t, core.Scenes(), "")
	assert.NotContains(t, core.Scenes(), "nil-factory")
}

func TestOccupancyMask(t *testing.T) {
	s, err := core.Scenes()["flags"](core.SceneConfig{Width: 3, Height: 2, CellSize: 10})
	require.NoError(t, err)
	s.Update(core.Input{Cursor: gridcore.Vec2{X: 25, Y: 5}, Place: true})
	s.Update(core.Input{Cursor: gridcore.Vec2{X: 5, Y: 15}, Place: true})

	mask := core.NewByteGrid(1, 1)
	mask.Occupancy(s.Grid())
	require.Equal(t, 3, mask.W)
	require.Equal(t, 2, mask.H)
	assert.Equal(t, []uint8{
		0, 0, 1,
		1, 0, 0,
	}, mask.Cells())

	s.Reset()
	mask.Occupancy(s.Grid())
	assert.Equal(t, make([]uint8, 6), mask.Cells())
}

func TestStatusCursorStates(t *testing.T) {
	s, err := core.Scenes()["flags"](core.SceneConfig{Width: 2, Height: 2, CellSize: 10})
	require.NoError(t, err)
	s.Update(core.Input{Cursor: gridcore.Vec2{X: 5, Y: 5}, Place: true})

	tests := []struct {
		cursor gridcore.Vec2
		want   string
	}{
		{gridcore.Vec2{X: 5, Y: 5}, "(0,0) true"},
		{gridcore.Vec2{X: 15, Y: 5}, "(1,0) empty"},
		{gridcore.Vec2{X: -5, Y: 5}, "(-1,0) outside"},
	}
	for _, tt := range tests {
		lines := core.Status(s, tt.cursor)
		require.Len(t, lines, 3)
		assert.Equal(t, core.StatusLine{Label: "scene", Value: "flags"}, lines[0])
		assert.Equal(t, core.StatusLine{Label: "occupied", Value: "1/4"}, lines[1])
		assert.Equal(t, core.StatusLine{Label: "cursor", Value: tt.want}, lines[2])
	}
}

func TestSceneSizeFollowsPosition(t *testing.T) {
	s, err := core.Scenes()["numbers"](core.SceneConfig{
		Width:    3,
		Height:   2,
		CellSize: 10,
		Offset:   gridcore.Vec2{X: 5, Y: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 35, H: 21}, s.Size())
	assert.Equal(t, s.Size(), core.Extent(s.Grid()))

	m, ok := s.(interface{ SetPosition(gridcore.Vec2) })
	require.True(t, ok)
	m.SetPosition(gridcore.Vec2{X: 100, Y: 10})
	assert.Equal(t, core.Size{W: 135, H: 31}, s.Size())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "placed", core.EventPlaced.String())
	assert.Equal(t, "missed", core.EventMissed.String())
	assert.Equal(t, "EventKind(9)", core.EventKind(9).String())
}
