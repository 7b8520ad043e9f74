package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order
// (y*W+x), the layout image pixels use.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Occupancy writes 1 for every occupied cell of view and 0 elsewhere,
// reallocating when the dimensions differ.
func (g *ByteGrid) Occupancy(view GridView) {
	w, h := view.Width(), view.Height()
	if g.W != w || g.H != h {
		g.W, g.H = w, h
		g.data = make([]uint8, w*h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(1)
			if view.IsEmpty(x, y) {
				v = 0
			}
			g.data[g.Index(x, y)] = v
		}
	}
}
