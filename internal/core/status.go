package core

import (
	"fmt"

	gridcore "customgrid/pkg/core"
)

// StatusLine is one label/value pair shown on the HUD.
type StatusLine struct {
	Label string
	Value string
}

// StatusProvider lets a scene contribute extra HUD lines.
type StatusProvider interface {
	StatusLines() []StatusLine
}

// Status summarizes the scene and the cell under the cursor.
func Status(s Scene, cursor gridcore.Vec2) []StatusLine {
	g := s.Grid()
	total := g.Width() * g.Height()
	lines := []StatusLine{
		{Label: "scene", Value: s.Name()},
		{Label: "occupied", Value: fmt.Sprintf("%d/%d", g.Count(), total)},
	}

	x, y, ok := g.WorldToCell(cursor)
	cell := fmt.Sprintf("(%d,%d)", x, y)
	switch {
	case !ok:
		cell += " outside"
	case g.IsEmpty(x, y):
		cell += " empty"
	default:
		cell += " " + s.Label(x, y)
	}
	lines = append(lines, StatusLine{Label: "cursor", Value: cell})

	if p, ok := s.(StatusProvider); ok {
		lines = append(lines, p.StatusLines()...)
	}
	return lines
}
