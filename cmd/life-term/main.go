package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"lifefb/internal/app"
	"lifefb/internal/term"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}
	// Logging stays silent: tcell owns the terminal until Fini.

	loop, err := app.NewLoop(cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create terminal screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = term.Run(ctx, loop, screen)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
