package app

import (
	"time"

	"github.com/pkg/errors"

	"lifefb/internal/core"
	_ "lifefb/internal/patterns" // registers the catalogue layout
	"lifefb/internal/render"
	"lifefb/internal/sims/life"
	"lifefb/internal/stats"
)

// Loop drives one simulation and its framebuffer. Each Frame renders the
// current generation, then advances the simulation by one step. A Loop is
// owned by a single frame driver and is not safe for concurrent use.
type Loop struct {
	cfg      core.Config
	sim      core.Sim
	renderer *render.Renderer
	fb       *render.Framebuffer
	stats    *stats.Stats
	last     time.Time
}

// NewLoop validates cfg, builds a Life simulation and applies the configured
// layout.
func NewLoop(cfg core.Config) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewLoop] invalid config")
	}
	sim := life.New(cfg)
	sim.Reset(cfg.Seed)
	return NewLoopFor(cfg, sim, render.DefaultPalette()), nil
}

// NewLoopFor wraps an existing simulation. cfg supplies the output
// resolution and scale factors.
func NewLoopFor(cfg core.Config, sim core.Sim, palette render.Palette) *Loop {
	r := render.NewRenderer(cfg, palette)
	l := &Loop{
		cfg:      cfg,
		sim:      sim,
		renderer: r,
		fb:       r.NewFramebuffer(cfg),
		stats:    stats.New(),
	}
	sx, sy := r.Scale()
	Logger().Debug("loop ready",
		"sim", sim.Name(),
		"grid", sim.Size(),
		"out_w", l.fb.W, "out_h", l.fb.H,
		"scale_x", sx, "scale_y", sy,
		"population", sim.Current().Population())
	return l
}

// Frame renders the current generation into the framebuffer, then steps the
// simulation. The returned framebuffer shows the generation that was current
// when Frame was called and stays valid until the next Frame or Redraw.
func (l *Loop) Frame() *render.Framebuffer {
	l.renderer.Render(l.sim.Current(), l.fb)
	l.record()
	l.sim.Step()
	return l.fb
}

// Redraw renders the current generation without stepping.
func (l *Loop) Redraw() *render.Framebuffer {
	l.renderer.Render(l.sim.Current(), l.fb)
	return l.fb
}

// Reset reseeds the simulation and clears the statistics.
func (l *Loop) Reset(seed int64) {
	l.sim.Reset(seed)
	l.stats = stats.New()
	l.last = time.Time{}
	Logger().Info("reset", "seed", seed, "population", l.sim.Current().Population())
}

// Sim returns the simulation being driven.
func (l *Loop) Sim() core.Sim { return l.sim }

// Stats returns statistics for frames produced so far.
func (l *Loop) Stats() *stats.Stats { return l.stats }

// Config returns the configuration the loop was built with.
func (l *Loop) Config() core.Config { return l.cfg }

// Framebuffer returns the buffer most recently rendered into.
func (l *Loop) Framebuffer() *render.Framebuffer { return l.fb }

func (l *Loop) record() {
	now := time.Now()
	var d time.Duration
	if !l.last.IsZero() {
		d = now.Sub(l.last)
	}
	l.last = now
	l.stats.Update(l.sim.Generation(), l.sim.Current().Population(), d)
}
