package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lifefb/internal/app"
	"lifefb/internal/headless"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	generations := flag.Int("generations", 100, "number of generations to run")
	every := flag.Int("every", 10, "write a PNG snapshot every N generations (0 disables)")
	out := flag.String("out", "frames", "directory for PNG snapshots")
	stable := flag.Bool("stop-when-stable", false, "stop once the grid repeats a recent generation")
	realtime := flag.Bool("realtime", false, "pace frames at the configured tps")
	flag.Parse()

	logger := app.NewTextLogger(os.Stderr, flags.Verbose)
	app.SetLogger(logger)

	cfg, err := flags.Config()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	loop, err := app.NewLoop(cfg)
	if err != nil {
		logger.Error("setup failed", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	res, err := headless.Run(ctx, loop, headless.Options{
		Generations:    *generations,
		Every:          *every,
		OutDir:         *out,
		StopWhenStable: *stable,
		Realtime:       *realtime,
	})
	stop()
	if err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
	logger.Info("done",
		slog.Int("generations", res.Generations),
		slog.Int("snapshots", res.Snapshots),
		slog.Int("period", res.Period),
		slog.Int("population", res.Population))
}
