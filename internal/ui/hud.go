//go:build ebiten

package ui

import (
	"fmt"

	"customgrid/internal/core"
	gridcore "customgrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	hudPadding    = 6
	hudLineHeight = 16
)

// HUD prints the scene status and key bindings in the top-left corner.
type HUD struct {
	scene core.Scene
}

// NewHUD returns a HUD for scene.
func NewHUD(scene core.Scene) *HUD { return &HUD{scene: scene} }

// Draw renders the status lines.
func (h *HUD) Draw(screen *ebiten.Image, cursor gridcore.Vec2) {
	y := hudPadding
	for _, line := range core.Status(h.scene, cursor) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %s", line.Label, line.Value), hudPadding, y)
		y += hudLineHeight
	}
	ebitenutil.DebugPrintAt(screen, "LMB/Enter place  RMB remove  arrows move  R reset  L labels  Q quit", hudPadding, y)
}
