//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"golife/internal/app"
	"golife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.ParseArgs("life", os.Args[1:], nil)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("config: %v", err)
	}

	game, err := cfg.NewGame()
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	st, err := cfg.OpenStore()
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	session := app.NewSession(game, core.NewLoop(cfg.Delay()), st, nil)
	view := app.New(session, cfg)
	size := game.Size()

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(view); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
