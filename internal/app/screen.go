package app

import (
	"customgrid/internal/core"
)

// Minimum screen size so the HUD stays readable on small grids.
const (
	minScreenWidth  = 320
	minScreenHeight = 240
)

// ScreenSize returns the window size for scene.
func ScreenSize(scene core.Scene) (int, int) {
	s := scene.Size()
	return max(s.W, minScreenWidth), max(s.H, minScreenHeight)
}

type closer interface {
	Close()
}

// Shutdown releases whatever the scene holds on its grid, such as
// observers. Scenes without resources are left alone.
func Shutdown(scene core.Scene) {
	if c, ok := scene.(closer); ok {
		c.Close()
	}
}
