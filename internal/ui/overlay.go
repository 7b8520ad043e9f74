//go:build ebiten

package ui

import (
	"image/color"

	"customgrid/internal/core"
	gridcore "customgrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws per-cell labels and highlights the cell under the cursor.
type Overlay struct {
	scene      core.Scene
	showLabels bool
	highlight  color.Color
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scene core.Scene) *Overlay {
	return &Overlay{
		scene:      scene,
		showLabels: true,
		highlight:  color.RGBA{R: 138, G: 43, B: 226, A: 96},
	}
}

// Update toggles labels with L.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.showLabels = !o.showLabels
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, cursor gridcore.Vec2) {
	g := o.scene.Grid()
	cell := g.CellSize()

	if x, y, ok := g.WorldToCell(cursor); ok {
		p := g.Origin().Add(gridcore.Vec2{X: float64(x) * cell, Y: float64(y) * cell})
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(cell), float32(cell), o.highlight, false)
	}

	if !o.showLabels {
		return
	}
	h := g.Height()
	for i, p := range g.CellPositions() {
		label := o.scene.Label(i/h, i%h)
		if label == "" {
			continue
		}
		ebitenutil.DebugPrintAt(screen, label, int(p.X+cell/4), int(p.Y+cell/2))
	}
}
