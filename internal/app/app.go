//go:build ebiten

package app

import (
	"time"

	"lifefb/internal/render"
	"lifefb/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a frame Loop to the ebiten.Game interface. Update renders the
// current generation into the framebuffer and steps the simulation; Draw
// presents the framebuffer.
type Game struct {
	loop *Loop
	img  *ebiten.Image
	buf  []byte
	hud  *ui.HUD

	paused   bool
	tickOnce bool
	dirty    bool
	seed     int64
}

// New constructs a Game for the provided loop.
func New(loop *Loop) *Game {
	cfg := loop.Config()
	return &Game{
		loop:  loop,
		img:   ebiten.NewImage(cfg.OutWidth, cfg.OutHeight),
		buf:   make([]byte, 4*cfg.OutWidth*cfg.OutHeight),
		hud:   ui.NewHUD(),
		dirty: true,
		seed:  cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.loop.Reset(seed)
	g.tickOnce = false
	g.dirty = true
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		Logger().Debug("pause toggled", "paused", g.paused, "generation", g.loop.Sim().Generation())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.hud.Update()

	switch {
	case !g.paused || g.tickOnce:
		g.upload(g.loop.Frame())
		g.tickOnce = false
		g.dirty = false
	case g.dirty:
		g.upload(g.loop.Redraw())
		g.dirty = false
	}
	return nil
}

func (g *Game) upload(fb *render.Framebuffer) {
	render.ToRGBA(g.buf, fb)
	g.img.WritePixels(g.buf)
}

// Draw presents the most recent framebuffer.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
	g.hud.Draw(screen, g.loop.Stats(), g.paused)
}

// Layout returns the fixed framebuffer resolution; ebiten scales it to the
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.loop.Config()
	return cfg.OutWidth, cfg.OutHeight
}
