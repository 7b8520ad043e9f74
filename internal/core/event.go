package core

import "fmt"

// EventKind classifies the outcome of a scene update.
type EventKind int

const (
	// EventNone means no action was requested this tick.
	EventNone EventKind = iota
	// EventPlaced means an item was stored in a cell.
	EventPlaced
	// EventRemoved means an item was taken out of a cell.
	EventRemoved
	// EventMissed means an action was requested but the grid rejected it:
	// the cursor was outside the grid, the cell was occupied on place or
	// empty on remove.
	EventMissed
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventPlaced:
		return "placed"
	case EventRemoved:
		return "removed"
	case EventMissed:
		return "missed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event reports what a scene did with one tick of input. X and Y are the
// floored cell coordinates under the cursor, possibly outside the grid.
type Event struct {
	Kind EventKind
	X, Y int
}
