package render

import (
	"image"
	"image/color"
)

// ARGB unpacks a 0xAARRGGBB word into a color.RGBA.
func ARGB(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// PackARGB packs any color into a 0xAARRGGBB word.
func PackARGB(c color.Color) uint32 {
	r, g, b, a := c.RGBA()
	return uint32(a>>8)<<24 | uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(b>>8)
}

// fillRGBA converts packed ARGB pixels into RGBA bytes in buf.
func fillRGBA(buf []byte, pix []uint32) {
	for i, c := range pix {
		base := i * 4
		buf[base+0] = uint8(c >> 16)
		buf[base+1] = uint8(c >> 8)
		buf[base+2] = uint8(c)
		buf[base+3] = uint8(c >> 24)
	}
}

// ToRGBA writes fb into buf as 4 bytes per pixel in R, G, B, A order, the
// layout expected by ebiten.Image.WritePixels and image.RGBA. buf must hold
// at least 4*W*H bytes.
func ToRGBA(buf []byte, fb *Framebuffer) {
	fillRGBA(buf[:4*len(fb.Pix)], fb.Pix)
}

// Image copies fb into a new image.RGBA.
func Image(fb *Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.W, fb.H))
	ToRGBA(img.Pix, fb)
	return img
}
