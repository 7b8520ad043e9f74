//go:build ebiten

package app

import (
	"log/slog"

	"customgrid/internal/core"
	"customgrid/internal/render"
	"customgrid/internal/ui"
	gridcore "customgrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// moveStep is how far the arrow keys shift the scene, in pixels.
const moveStep = 16

// Game adapts a grid scene to the ebiten.Game interface.
type Game struct {
	scene   core.Scene
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *slog.Logger

	width, height int
	cursor        gridcore.Vec2
}

// New constructs a Game for the provided scene with a width x height pixel
// screen.
func New(scene core.Scene, width, height int, log *slog.Logger) *Game {
	return &Game{
		scene:   scene,
		painter: render.NewGridPainter(),
		overlay: ui.NewOverlay(scene),
		hud:     ui.NewHUD(scene),
		log:     log,
		width:   width,
		height:  height,
	}
}

// Update polls input and feeds it to the scene.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		Shutdown(g.scene)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Reset()
		g.log.Info("scene reset", slog.String("scene", g.scene.Name()))
	}
	g.move()

	cx, cy := ebiten.CursorPosition()
	g.cursor = gridcore.Vec2{X: float64(cx), Y: float64(cy)}
	in := core.Input{
		Cursor: g.cursor,
		Place: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Remove: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
	LogEvent(g.log, g.scene, g.scene.Update(in))

	g.overlay.Update()
	return nil
}

type mover interface {
	Position() gridcore.Vec2
	SetPosition(gridcore.Vec2)
}

func (g *Game) move() {
	m, ok := g.scene.(mover)
	if !ok {
		return
	}
	var d gridcore.Vec2
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		d.X = -moveStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		d.X = moveStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		d.Y = -moveStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		d.Y = moveStep
	default:
		return
	}
	m.SetPosition(m.Position().Add(d))
	g.log.Debug("scene moved", slog.Float64("x", m.Position().X), slog.Float64("y", m.Position().Y))
}

// Draw renders the grid, labels and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scene.Grid())
	g.overlay.Draw(screen, g.cursor)
	g.hud.Draw(screen, g.cursor)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
