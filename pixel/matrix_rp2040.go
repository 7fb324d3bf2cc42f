//go:build rp2040

package pixel

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"pixelkit-go/board"
)

// NewMatrix binds the surface to the WS2812 chain on the wiring's data pin.
func NewMatrix(w board.Wiring) *Surface {
	pin := machine.Pin(w.Matrix)
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	strip := ws2812.New(pin)
	return NewSurface(strip, board.MatrixWidth, board.MatrixHeight)
}
