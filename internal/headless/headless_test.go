package headless

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"lifefb/internal/app"
	"lifefb/internal/core"
	"lifefb/internal/patterns"
	"lifefb/internal/render"
	"lifefb/internal/sims/life"
)

func blockLoop(t *testing.T) *app.Loop {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.OutWidth, cfg.OutHeight = 16, 16
	sim := life.New(cfg)
	patterns.Stamp(sim.Current(), patterns.Block.At(3, 3))
	return app.NewLoopFor(cfg, sim, render.DefaultPalette())
}

func TestRunWritesSnapshots(t *testing.T) {
	cfg := core.DefaultConfig()
	loop, err := app.NewLoop(cfg)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	dir := t.TempDir()
	res, err := Run(context.Background(), loop, Options{Generations: 10, Every: 5, OutDir: dir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Generations != 10 || res.Snapshots != 2 {
		t.Fatalf("result = %+v, want 10 generations and 2 snapshots", res)
	}
	if loop.Sim().Generation() != 10 {
		t.Fatalf("simulation at generation %d, want 10", loop.Sim().Generation())
	}

	f, err := os.Open(filepath.Join(dir, SnapshotName(0)))
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != cfg.OutWidth || b.Dy() != cfg.OutHeight {
		t.Fatalf("snapshot size = %v", b)
	}
	// Generation 0 has the catalogue glider cell (2,1) alive.
	if got := render.PackARGB(img.At(2*cfg.ScaleX(), 1*cfg.ScaleY())); got != render.ColorAlive {
		t.Fatalf("glider pixel = %#08x, want alive", got)
	}
	if got := render.PackARGB(img.At(0, 0)); got != render.ColorDead {
		t.Fatalf("origin pixel = %#08x, want dead", got)
	}
	if _, err := os.Stat(filepath.Join(dir, SnapshotName(5))); err != nil {
		t.Fatalf("second snapshot missing: %v", err)
	}
}

func TestRunStopsWhenStable(t *testing.T) {
	res, err := Run(context.Background(), blockLoop(t), Options{Generations: 100, StopWhenStable: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Period != 1 {
		t.Fatalf("period = %d, want 1 for a block", res.Period)
	}
	if res.Generations >= 100 || res.Population != 4 {
		t.Fatalf("result = %+v", res)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, blockLoop(t), Options{Generations: 100})
	if err != nil {
		t.Fatalf("cancellation should not be an error: %v", err)
	}
	if res.Generations != 0 {
		t.Fatalf("ran %d generations after cancellation", res.Generations)
	}
}

func TestRunReportsWriteFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(context.Background(), blockLoop(t), Options{Generations: 3, Every: 1, OutDir: file}); err == nil {
		t.Fatal("expected an error when the output dir is a file")
	}
}
