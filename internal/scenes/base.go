// Package scenes holds the plumbing shared by the grid demo scenes.
package scenes

import (
	"customgrid/internal/core"
	gridcore "customgrid/pkg/core"
)

// Base anchors a grid at a movable scene position plus a fixed offset.
// The grid's origin follows the position live; CellPositions is refreshed
// whenever the position changes.
type Base[T any] struct {
	grid     *gridcore.Grid[T]
	position gridcore.Vec2
	offset   gridcore.Vec2
}

// Init builds the grid described by cfg. Extra options are applied after
// the origin option.
func (b *Base[T]) Init(cfg core.SceneConfig, opts ...gridcore.Option[T]) error {
	b.offset = cfg.Offset
	opts = append([]gridcore.Option[T]{gridcore.WithOrigin[T](b.origin)}, opts...)
	g, err := gridcore.NewGrid[T](cfg.Width, cfg.Height, cfg.CellSize, opts...)
	if err != nil {
		return err
	}
	b.grid = g
	return nil
}

func (b *Base[T]) origin() gridcore.Vec2 { return b.position.Add(b.offset) }

// Cells returns the typed grid.
func (b *Base[T]) Cells() *gridcore.Grid[T] { return b.grid }

// Grid exposes the grid for rendering.
func (b *Base[T]) Grid() core.GridView { return b.grid }

// Size returns the pixel extent of the grid at its current position.
func (b *Base[T]) Size() core.Size { return core.Extent(b.grid) }

// Position returns the scene position the grid is anchored to.
func (b *Base[T]) Position() gridcore.Vec2 { return b.position }

// SetPosition moves the scene and resyncs the cached cell positions.
func (b *Base[T]) SetPosition(p gridcore.Vec2) {
	b.position = p
	b.grid.RefreshPositions()
}

// Reset empties the grid.
func (b *Base[T]) Reset() { b.grid.Clear() }

// Hooks customize how Apply creates and releases items.
type Hooks[T any] struct {
	// Spawn returns the item to place. It is called only when a placement
	// is requested.
	Spawn func() T
	// Placed receives a stored item and the world position of its cell.
	Placed func(item T, at gridcore.Vec2)
	// Rejected receives a spawned item the grid refused.
	Rejected func(item T)
	// Removed receives an item taken out of the grid.
	Removed func(item T)
}

// Apply runs one tick of input against the grid: placement first, then
// removal.
func (b *Base[T]) Apply(in core.Input, h Hooks[T]) core.Event {
	x, y, _ := b.grid.WorldToCell(in.Cursor)
	ev := core.Event{Kind: core.EventNone, X: x, Y: y}
	if in.Place && h.Spawn != nil {
		item := h.Spawn()
		if at, ok := b.grid.TrySet(in.Cursor, item); ok {
			ev.Kind = core.EventPlaced
			if h.Placed != nil {
				h.Placed(item, at)
			}
		} else {
			ev.Kind = core.EventMissed
			if h.Rejected != nil {
				h.Rejected(item)
			}
		}
	}
	if in.Remove {
		if item, ok := b.grid.TryRemove(in.Cursor); ok {
			ev.Kind = core.EventRemoved
			if h.Removed != nil {
				h.Removed(item)
			}
		} else if ev.Kind == core.EventNone {
			ev.Kind = core.EventMissed
		}
	}
	return ev
}
