package core

import (
	"math"
	"sort"

	gridcore "customgrid/pkg/core"
)

// Size is a pixel extent.
type Size struct {
	W int
	H int
}

// Extent returns the pixel size needed to show the whole grid, measured
// from the world origin to the far corner of the last cell.
func Extent(g GridView) Size {
	o := g.Origin()
	return Size{
		W: int(math.Ceil(o.X + float64(g.Width())*g.CellSize())),
		H: int(math.Ceil(o.Y + float64(g.Height())*g.CellSize())),
	}
}

// Input is the pointer state polled for a single tick.
type Input struct {
	Cursor gridcore.Vec2
	Place  bool
	Remove bool
}

// GridView is the read-only grid surface renderers draw from.
// *gridcore.Grid[T] satisfies it for every T.
type GridView interface {
	Width() int
	Height() int
	CellSize() float64
	Origin() gridcore.Vec2
	CellPositions() []gridcore.Vec2
	WorldToCell(p gridcore.Vec2) (x, y int, ok bool)
	IsEmpty(x, y int) bool
	Count() int
}

// Scene defines the minimal contract a grid demo must implement.
type Scene interface {
	Name() string
	// Size is the pixel extent the scene needs on screen.
	Size() Size
	Grid() GridView
	Update(in Input) Event
	Reset()
	// Label returns the text drawn inside cell (x, y).
	Label(x, y int) string
}

// SceneConfig carries the grid parameters a scene is built with.
type SceneConfig struct {
	Width    int
	Height   int
	CellSize float64
	Offset   gridcore.Vec2
	Seed     int64
}

// Factory constructs a Scene from its configuration.
type Factory func(cfg SceneConfig) (Scene, error)

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}

// SceneNames returns the registered scene names in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
