//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifefb/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	app.SetLogger(app.NewTextLogger(os.Stderr, flags.Verbose))

	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}

	loop, err := app.NewLoop(cfg)
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(loop)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.OutWidth, cfg.OutHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
