// Package term presents Life framebuffers in a terminal using tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifefb/internal/app"
	"lifefb/internal/core"
	"lifefb/internal/render"
	"lifefb/internal/ui"
)

// Presenter draws one framebuffer sample per grid cell, two terminal columns
// wide so cells look roughly square.
type Presenter struct {
	screen         tcell.Screen
	cols, rows     int
	scaleX, scaleY int
}

// NewPresenter builds a presenter for framebuffers produced under cfg.
func NewPresenter(screen tcell.Screen, cfg core.Config) *Presenter {
	return &Presenter{
		screen: screen,
		cols:   cfg.Width,
		rows:   cfg.Height,
		scaleX: max(cfg.ScaleX(), 1),
		scaleY: max(cfg.ScaleY(), 1),
	}
}

// Sample returns the framebuffer pixel at the centre of cell (x, y).
func (p *Presenter) Sample(fb *render.Framebuffer, x, y int) uint32 {
	return fb.At(x*p.scaleX+p.scaleX/2, y*p.scaleY+p.scaleY/2)
}

// Present draws fb and the status lines below it, clipped to the screen.
func (p *Presenter) Present(fb *render.Framebuffer, status []string) {
	sw, sh := p.screen.Size()
	p.screen.Clear()

	rows := min(p.rows, sh-len(status))
	cols := min(p.cols, sw/2)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := render.ARGB(p.Sample(fb, x, y))
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			p.screen.SetContent(2*x, y, ' ', nil, style)
			p.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}

	top := max(rows, 0)
	for i, line := range status {
		for j, r := range []rune(line) {
			if j >= sw {
				break
			}
			p.screen.SetContent(j, top+i, r, nil, tcell.StyleDefault)
		}
	}
	p.screen.Show()
}

// Run drives loop at its configured rate until ctx is cancelled or the user
// presses Escape, q or Ctrl-C. The screen must already be initialised.
func Run(ctx context.Context, loop *app.Loop, screen tcell.Screen) error {
	cfg := loop.Config()
	presenter := NewPresenter(screen, cfg)
	step := core.NewFixedStep(cfg.TPS)

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		paused   bool
		tickOnce bool
		fb       = loop.Redraw()
	)
	presenter.Present(fb, ui.Lines(loop.Stats(), paused))

	for {
		// Paused with nothing queued: wait for input only.
		var tick <-chan time.Time
		if !paused || tickOnce {
			tick = time.After(step.Remaining())
		}

		dirty := false
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					app.Logger().Info("quit", "generation", loop.Sim().Generation())
					return nil
				case ev.Rune() == ' ':
					paused = !paused
					dirty = true
				case ev.Rune() == 'n':
					tickOnce = true
				case ev.Rune() == 'r':
					loop.Reset(cfg.Seed)
					fb = loop.Redraw()
					dirty = true
				case ev.Rune() == 's':
					loop.Reset(time.Now().UnixNano())
					fb = loop.Redraw()
					dirty = true
				}
			case *tcell.EventResize:
				screen.Sync()
				dirty = true
			}
		case <-tick:
		}

		if (!paused || tickOnce) && step.ShouldStep() {
			fb = loop.Frame()
			tickOnce = false
			dirty = true
		}
		if dirty {
			presenter.Present(fb, ui.Lines(loop.Stats(), paused))
		}
	}
}
