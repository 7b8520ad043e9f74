//go:build ebiten

package render

import (
	"image/color"

	"customgrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws a scene grid: occupied cells filled, every cell
// outlined.
type GridPainter struct {
	mask *core.ByteGrid
	img  *ebiten.Image
	buf  []byte

	On, Off, Outline color.Color
	// Stroke is the outline width in pixels.
	Stroke float32
}

// NewGridPainter returns a painter with the demo colors.
func NewGridPainter() *GridPainter {
	return &GridPainter{
		mask:    core.NewByteGrid(1, 1),
		On:      color.RGBA{R: 255, G: 255, A: 255},
		Off:     color.Black,
		Outline: color.RGBA{R: 173, G: 255, B: 47, A: 255},
		Stroke:  3,
	}
}

// Draw renders view onto dst. The fill is placed at the live origin; the
// outline uses the cached CellPositions.
func (gp *GridPainter) Draw(dst *ebiten.Image, view core.GridView) {
	gp.blitFill(dst, view)

	size := float32(view.CellSize())
	for _, p := range view.CellPositions() {
		vector.StrokeRect(dst, float32(p.X), float32(p.Y), size, size, gp.Stroke, gp.Outline, false)
	}
}

func (gp *GridPainter) blitFill(dst *ebiten.Image, view core.GridView) {
	gp.mask.Occupancy(view)
	w, h := gp.mask.W, gp.mask.H
	if gp.img == nil || gp.img.Bounds().Dx() != w || gp.img.Bounds().Dy() != h {
		gp.img = ebiten.NewImage(w, h)
		gp.buf = make([]byte, 4*w*h)
	}
	fillBinaryRGBA(gp.buf, gp.mask.Cells(), gp.On, gp.Off)
	gp.img.WritePixels(gp.buf)

	origin := view.Origin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(view.CellSize(), view.CellSize())
	op.GeoM.Translate(origin.X, origin.Y)
	dst.DrawImage(gp.img, op)
}
