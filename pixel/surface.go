// Package pixel drives the 16x8 RGB matrix as a buffered framebuffer.
// Mutations touch only the in-memory buffer; Render flushes the whole frame
// to the strip in one write.
package pixel

import "image/color"

// Color is a 24-bit packed RGB value, 0xRRGGBB.
type Color uint32

const (
	Black Color = 0x000000
	Green Color = 0x00FF00
)

func (c Color) rgba() color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 0xff,
	}
}

// Strip is the LED chain contract (the ws2812 device shape): one call
// latches the full pixel buffer.
type Strip interface {
	WriteColors(buf []color.RGBA) error
}

// Surface is the buffered framebuffer over a Strip. Coordinates are not
// validated here; out-of-range access is a caller error and propagates.
type Surface struct {
	w, h  int
	buf   []color.RGBA
	strip Strip
}

func NewSurface(strip Strip, w, h int) *Surface {
	return &Surface{
		w:     w,
		h:     h,
		buf:   make([]color.RGBA, w*h),
		strip: strip,
	}
}

func (s *Surface) Width() int  { return s.w }
func (s *Surface) Height() int { return s.h }

func (s *Surface) SetPixel(x, y int, c Color) {
	s.buf[y*s.w+x] = c.rgba()
}

func (s *Surface) Fill(c Color) {
	px := c.rgba()
	for i := range s.buf {
		s.buf[i] = px
	}
}

func (s *Surface) Clear() {
	s.Fill(Black)
}

// Render flushes the buffer to the physical strip.
func (s *Surface) Render() error {
	return s.strip.WriteColors(s.buf)
}
