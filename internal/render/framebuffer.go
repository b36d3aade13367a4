// Package render paints Life grids into fixed-resolution ARGB framebuffers.
package render

import "lifefb/internal/core"

// Reference colours, packed as 0xAARRGGBB.
const (
	ColorAlive      uint32 = 0xFFFFFFFF
	ColorDead       uint32 = 0xFF000000
	ColorBackground uint32 = 0xFF323264
)

// Framebuffer is a row-major buffer of packed ARGB pixels.
type Framebuffer struct {
	W, H int
	Pix  []uint32
}

// NewFramebuffer allocates a w*h framebuffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{W: w, H: h, Pix: make([]uint32, w*h)}
}

// At returns the pixel at (x, y), or 0 outside the buffer.
func (fb *Framebuffer) At(x, y int) uint32 {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		return 0
	}
	return fb.Pix[y*fb.W+x]
}

// Set writes the pixel at (x, y). Writes outside the buffer are ignored.
func (fb *Framebuffer) Set(x, y int, c uint32) {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		return
	}
	fb.Pix[y*fb.W+x] = c
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c uint32) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// Clone returns an independent copy of the framebuffer.
func (fb *Framebuffer) Clone() *Framebuffer {
	return &Framebuffer{W: fb.W, H: fb.H, Pix: append([]uint32(nil), fb.Pix...)}
}

// Palette selects the colours used by a Renderer.
type Palette struct {
	Alive      uint32
	Dead       uint32
	Background uint32
}

// DefaultPalette returns white live cells on black, over a dark blue
// background.
func DefaultPalette() Palette {
	return Palette{Alive: ColorAlive, Dead: ColorDead, Background: ColorBackground}
}

// Renderer blits each grid cell as a scaleX*scaleY block of pixels.
type Renderer struct {
	scaleX, scaleY int
	palette        Palette
}

// NewRenderer builds a renderer using the scale factors implied by cfg.
func NewRenderer(cfg core.Config, palette Palette) *Renderer {
	return &Renderer{
		scaleX:  max(cfg.ScaleX(), 1),
		scaleY:  max(cfg.ScaleY(), 1),
		palette: palette,
	}
}

// NewFramebuffer allocates a framebuffer sized for cfg's output resolution.
func (r *Renderer) NewFramebuffer(cfg core.Config) *Framebuffer {
	return NewFramebuffer(cfg.OutWidth, cfg.OutHeight)
}

// Scale returns the block size painted for each cell.
func (r *Renderer) Scale() (int, int) { return r.scaleX, r.scaleY }

// Render repaints the whole framebuffer from g: background first, then one
// block per cell. Pixels of blocks that fall outside fb are skipped.
func (r *Renderer) Render(g *core.Grid, fb *Framebuffer) {
	fb.Fill(r.palette.Background)
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := r.palette.Dead
			if cells[y*g.W+x] {
				c = r.palette.Alive
			}
			r.block(fb, x*r.scaleX, y*r.scaleY, c)
		}
	}
}

func (r *Renderer) block(fb *Framebuffer, ox, oy int, c uint32) {
	for dy := 0; dy < r.scaleY; dy++ {
		py := oy + dy
		if py >= fb.H {
			return
		}
		row := fb.Pix[py*fb.W : (py+1)*fb.W]
		for dx := 0; dx < r.scaleX; dx++ {
			px := ox + dx
			if px >= fb.W {
				break
			}
			row[px] = c
		}
	}
}
