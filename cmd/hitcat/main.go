// Command hitcat is a whack-a-mole game played with a hammer against cats.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/loliomg/hitcat/game"
)

const title = "hitcat"

func main() {
	cfg := game.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	materials, err := game.LoadMaterials()
	if err != nil {
		log.Fatalf("load materials: %v", err)
	}

	g := game.NewGame(cfg, materials)
	if cfg.Debug {
		g.EnableDebugUI(title, cfg.Width, cfg.Height)
	} else {
		ebiten.SetWindowTitle(title)
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	log.Printf("starting %dx%d, seed %d", cfg.Width, cfg.Height, g.World().Config.Get().Seed)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
