//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"customgrid/internal/app"
	_ "customgrid/internal/scenes/flags"
	_ "customgrid/internal/scenes/numbers"
	_ "customgrid/internal/scenes/objects"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.File != "" {
		f, err := app.LoadFile(cfg.File)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Apply(f)
	}

	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	scene, err := cfg.NewScene()
	if err != nil {
		log.Fatal(err)
	}

	w, h := app.ScreenSize(scene)
	game := app.New(scene, w, h, logger)
	logger.Info("starting",
		slog.String("scene", scene.Name()),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Float64("cell", cfg.CellSize),
	)

	ebiten.SetWindowTitle("customgrid - " + scene.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
