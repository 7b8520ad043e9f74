package core

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// ErrInvalidDimension is returned by NewGrid for a non-positive or overflowing
// width and height, or a non-positive cell size.
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Cell is the content of one grid slot. Present is false for empty cells,
// in which case Item holds the zero value of T.
type Cell[T any] struct {
	Item    T
	Present bool
}

// Observer is notified after a cell's content changes.
type Observer[T any] interface {
	ItemChanged(x, y int, cell Cell[T])
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc[T any] func(x, y int, cell Cell[T])

// ItemChanged calls f(x, y, cell).
func (f ObserverFunc[T]) ItemChanged(x, y int, cell Cell[T]) { f(x, y, cell) }

// Option configures a Grid during construction.
type Option[T any] func(*Grid[T])

// WithOrigin sets the function queried for the world-space position of
// cell (0,0)'s corner. It is called on every coordinate translation.
func WithOrigin[T any](origin func() Vec2) Option[T] {
	return func(g *Grid[T]) { g.origin = origin }
}

// WithCellFactory fills every cell with factory() at construction. Cells
// filled this way count as occupied.
func WithCellFactory[T any](factory func() T) Option[T] {
	return func(g *Grid[T]) { g.factory = factory }
}

// WithZeroAsEmpty makes a cell holding T's zero value report as empty.
// Under this mode the zero value cannot be stored as an occupant: TrySet
// accepts it but IsEmpty, TryGet and TryRemove treat the cell as vacant.
func WithZeroAsEmpty[T any]() Option[T] {
	return func(g *Grid[T]) { g.zeroIsEmpty = true }
}

// Grid is a fixed-size, axis-aligned 2D grid holding at most one item per
// cell. World points map to cells by flooring their offset from the origin
// divided by the cell size.
//
// A Grid is not safe for concurrent use. Observers are invoked synchronously
// and must not mutate the grid.
type Grid[T any] struct {
	width, height int
	cellSize      float64

	cells     []Cell[T]
	positions []Vec2

	origin      func() Vec2
	factory     func() T
	zeroIsEmpty bool

	observers []*observerEntry[T]
}

type observerEntry[T any] struct {
	o Observer[T]
}

// NewGrid allocates a width x height grid with square cells of cellSize
// world units.
func NewGrid[T any](width, height int, cellSize float64, opts ...Option[T]) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidDimension, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: size %dx%d overflows", ErrInvalidDimension, width, height)
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 1) {
		return nil, fmt.Errorf("%w: cell size %v", ErrInvalidDimension, cellSize)
	}
	g := &Grid[T]{width: width, height: height, cellSize: cellSize}
	for _, opt := range opts {
		opt(g)
	}

	g.cells = make([]Cell[T], width*height)
	if g.factory != nil {
		for i := range g.cells {
			g.cells[i] = Cell[T]{Item: g.factory(), Present: true}
		}
	}
	g.RefreshPositions()
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// CellSize returns the edge length of a cell in world units.
func (g *Grid[T]) CellSize() float64 { return g.cellSize }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Origin returns the current world position of cell (0,0)'s corner.
func (g *Grid[T]) Origin() Vec2 {
	if g.origin == nil {
		return Vec2{}
	}
	return g.origin()
}

// Index returns the position of (x, y) in the cell and position order.
func (g *Grid[T]) Index(x, y int) int { return x*g.height + y }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CellPositions returns the world position of every cell's corner, x-major.
// The positions are a snapshot of the origin taken at construction or at
// the last RefreshPositions call.
func (g *Grid[T]) CellPositions() []Vec2 {
	return append([]Vec2(nil), g.positions...)
}

// RefreshPositions recomputes CellPositions from the current origin. Owners
// that move the origin call it to resync overlays.
func (g *Grid[T]) RefreshPositions() {
	origin := g.Origin()
	if g.positions == nil {
		g.positions = make([]Vec2, 0, g.width*g.height)
	}
	g.positions = g.positions[:0]
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			g.positions = append(g.positions, g.worldPosition(x, y, origin))
		}
	}
}

// WorldToCell maps a world point to cell coordinates. ok is false when the
// cell lies outside the grid; x and y are still the floored coordinates.
func (g *Grid[T]) WorldToCell(p Vec2) (x, y int, ok bool) {
	return g.toCell(p, g.Origin())
}

// CellToWorld returns the world position of cell (x, y)'s corner using the
// current origin.
func (g *Grid[T]) CellToWorld(x, y int) Vec2 {
	return g.worldPosition(x, y, g.Origin())
}

// IsEmpty reports whether (x, y) is inside the grid and holds no item.
func (g *Grid[T]) IsEmpty(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.vacant(g.cells[g.Index(x, y)])
}

// IsEmptyAt is IsEmpty for the cell containing p.
func (g *Grid[T]) IsEmptyAt(p Vec2) bool {
	x, y, ok := g.WorldToCell(p)
	return ok && g.IsEmpty(x, y)
}

// Get returns the item stored at (x, y).
func (g *Grid[T]) Get(x, y int) (T, bool) {
	var zero T
	if !g.InBounds(x, y) {
		return zero, false
	}
	c := g.cells[g.Index(x, y)]
	if g.vacant(c) {
		return zero, false
	}
	return c.Item, true
}

// TrySet stores item in the cell containing p and returns the world position
// of that cell's corner. It never overwrites: nil items, points outside the
// grid and occupied cells are rejected.
func (g *Grid[T]) TrySet(p Vec2, item T) (Vec2, bool) {
	if isNil(item) {
		return Vec2{}, false
	}
	origin := g.Origin()
	x, y, ok := g.toCell(p, origin)
	if !ok {
		return Vec2{}, false
	}
	i := g.Index(x, y)
	if !g.vacant(g.cells[i]) {
		return Vec2{}, false
	}
	g.cells[i] = Cell[T]{Item: item, Present: true}
	g.notify(x, y, g.cells[i])
	return g.worldPosition(x, y, origin), true
}

// TryGet returns the item in the cell containing p without removing it.
func (g *Grid[T]) TryGet(p Vec2) (T, bool) {
	x, y, ok := g.WorldToCell(p)
	if !ok {
		var zero T
		return zero, false
	}
	return g.Get(x, y)
}

// TryRemove empties the cell containing p and returns its previous item.
// The grid only tracks placement: disposing of the item is up to the caller.
func (g *Grid[T]) TryRemove(p Vec2) (T, bool) {
	var zero T
	x, y, ok := g.WorldToCell(p)
	if !ok {
		return zero, false
	}
	i := g.Index(x, y)
	c := g.cells[i]
	if g.vacant(c) {
		return zero, false
	}
	g.cells[i] = Cell[T]{}
	g.notify(x, y, g.cells[i])
	return c.Item, true
}

// TriggerChanged re-sends the current content of (x, y) to the observers
// without modifying it. It returns false when (x, y) is out of bounds.
func (g *Grid[T]) TriggerChanged(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.notify(x, y, g.cellAt(x, y))
	return true
}

// Clear empties every occupied cell and returns how many were cleared.
// Items are not disposed; use Each beforehand to release owned resources.
func (g *Grid[T]) Clear() int {
	n := 0
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			i := g.Index(x, y)
			if g.vacant(g.cells[i]) {
				continue
			}
			g.cells[i] = Cell[T]{}
			n++
			g.notify(x, y, g.cells[i])
		}
	}
	return n
}

// Count returns the number of occupied cells.
func (g *Grid[T]) Count() int {
	n := 0
	for _, c := range g.cells {
		if !g.vacant(c) {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied cell in x-major order until fn returns
// false.
func (g *Grid[T]) Each(fn func(x, y int, item T) bool) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			c := g.cells[g.Index(x, y)]
			if g.vacant(c) {
				continue
			}
			if !fn(x, y, c.Item) {
				return
			}
		}
	}
}

// Observe registers o to be notified of cell changes, after any observers
// registered earlier. The returned function unregisters it.
func (g *Grid[T]) Observe(o Observer[T]) (cancel func()) {
	if o == nil {
		return func() {}
	}
	e := &observerEntry[T]{o: o}
	g.observers = append(g.observers, e)
	return func() {
		for i, cur := range g.observers {
			if cur == e {
				g.observers = append(g.observers[:i:i], g.observers[i+1:]...)
				return
			}
		}
	}
}

func (g *Grid[T]) notify(x, y int, c Cell[T]) {
	if g.vacant(c) {
		c = Cell[T]{}
	}
	for _, e := range g.observers {
		e.o.ItemChanged(x, y, c)
	}
}

func (g *Grid[T]) cellAt(x, y int) Cell[T] { return g.cells[g.Index(x, y)] }

func (g *Grid[T]) vacant(c Cell[T]) bool {
	if !c.Present {
		return true
	}
	return g.zeroIsEmpty && isZero(c.Item)
}

func (g *Grid[T]) toCell(p, origin Vec2) (x, y int, ok bool) {
	fx := math.Floor((p.X - origin.X) / g.cellSize)
	fy := math.Floor((p.Y - origin.Y) / g.cellSize)
	// Bounds are checked on the floats so NaN and huge values never wrap
	// into range during the int conversion.
	ok = fx >= 0 && fx < float64(g.width) && fy >= 0 && fy < float64(g.height)
	return int(fx), int(fy), ok
}

func (g *Grid[T]) worldPosition(x, y int, origin Vec2) Vec2 {
	return Vec2{X: float64(x) * g.cellSize, Y: float64(y) * g.cellSize}.Add(origin)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
