//go:build !rp2040

package pixel

import (
	"image/color"

	"pixelkit-go/board"
)

type nopStrip struct{}

func (nopStrip) WriteColors([]color.RGBA) error { return nil }

// NewMatrix returns the board matrix surface. On host builds the strip
// discards writes.
func NewMatrix(board.Wiring) *Surface {
	return NewSurface(nopStrip{}, board.MatrixWidth, board.MatrixHeight)
}
