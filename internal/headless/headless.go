// Package headless runs a frame loop without a display, optionally writing
// framebuffer snapshots as PNG files.
package headless

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifefb/internal/app"
	"lifefb/internal/core"
	"lifefb/internal/render"
	"lifefb/internal/stats"
)

// Options controls a headless run.
type Options struct {
	// Generations is the number of frames to produce.
	Generations int
	// Every writes a snapshot of every Nth generation; 0 disables snapshots.
	Every int
	// OutDir receives the snapshots.
	OutDir string
	// StopWhenStable ends the run once the grid repeats a recent state.
	StopWhenStable bool
	// Realtime paces frames at the configured TPS instead of running flat out.
	Realtime bool
}

// Result summarises a finished run.
type Result struct {
	Generations int
	Snapshots   int
	Period      int
	Population  int
}

type snapshot struct {
	generation int
	fb         *render.Framebuffer
}

// Run produces frames from loop until opts.Generations frames have been
// rendered, the grid settles (with StopWhenStable) or ctx is cancelled.
// Cancellation is not an error. Snapshots are encoded on a separate
// goroutine from copies of the framebuffer; the simulation itself only runs
// on the frame goroutine.
func Run(ctx context.Context, loop *app.Loop, opts Options) (Result, error) {
	var res Result
	if opts.Every > 0 {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return res, errors.Wrapf(err, "[Run] failed to create output dir: %+v", opts.OutDir)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	frames := make(chan snapshot, 4)

	g.Go(func() error {
		defer close(frames)
		history := stats.NewHistory(stats.DefaultDepth)
		step := core.NewFixedStep(loop.Config().TPS)

		for i := 0; i < opts.Generations; i++ {
			if opts.Realtime {
				for !step.ShouldStep() {
					select {
					case <-gctx.Done():
						return nil
					case <-time.After(step.Remaining()):
					}
				}
			}
			if gctx.Err() != nil {
				return nil
			}

			generation := loop.Sim().Generation()
			fb := loop.Frame()
			res.Generations++

			if opts.Every > 0 && generation%opts.Every == 0 {
				select {
				case frames <- snapshot{generation: generation, fb: fb.Clone()}:
				case <-gctx.Done():
					return nil
				}
			}

			if opts.StopWhenStable {
				if p := history.Observe(loop.Sim().Current()); p > 0 {
					res.Period = p
					app.Logger().Info("grid settled",
						"generation", loop.Sim().Generation(),
						"period", p,
						"population", loop.Sim().Current().Population())
					return nil
				}
			}
		}
		return nil
	})

	g.Go(func() error {
		for s := range frames {
			path, err := writePNG(opts.OutDir, s)
			if err != nil {
				return err
			}
			res.Snapshots++
			app.Logger().Debug("snapshot written", "generation", s.generation, "path", path)
		}
		return nil
	})

	err := g.Wait()
	res.Population = loop.Sim().Current().Population()
	return res, err
}

// SnapshotName returns the file name used for a generation's snapshot.
func SnapshotName(generation int) string {
	return fmt.Sprintf("gen-%06d.png", generation)
}

func writePNG(dir string, s snapshot) (string, error) {
	path := filepath.Join(dir, SnapshotName(s.generation))
	f, err := os.Create(path)
	if err != nil {
		return path, errors.Wrapf(err, "[writePNG] failed to create file: %+v", path)
	}
	if err := png.Encode(f, render.Image(s.fb)); err != nil {
		f.Close()
		return path, errors.Wrapf(err, "[writePNG] failed to encode generation %d", s.generation)
	}
	if err := f.Close(); err != nil {
		return path, errors.Wrapf(err, "[writePNG] failed to close file: %+v", path)
	}
	return path, nil
}
