//go:build ebiten

package ui

import (
	"image/color"

	"lifefb/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 6
	headerBaseline = 12
	lineHeight     = 16
)

// HUD draws run statistics in the top-left corner of the window. H toggles
// its visibility.
type HUD struct {
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image, s *stats.Stats, paused bool) {
	if !h.visible || s == nil {
		return
	}
	lines := Lines(s, paused)

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		width = max(width, text.BoundString(face, l).Dx())
	}
	height := panelPadding*2 + len(lines)*lineHeight

	bg := color.RGBA{R: 16, G: 16, B: 32, A: 192}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+panelPadding*2), float64(height))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	screen.DrawImage(h.pixel, op)

	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, l := range lines {
		text.Draw(screen, l, face, panelPadding, panelPadding+headerBaseline+i*lineHeight, fg)
	}
}
