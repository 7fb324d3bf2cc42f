//go:build rp2040

package console

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"pixelkit-go/board"
	"pixelkit-go/x/fmtx"
)

// Init configures UART0 on the wiring's console pins and points fmtx at it.
func Init(w board.Wiring) {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.Pin(w.UARTTX),
		RX:       machine.Pin(w.UARTRX),
	})
	fmtx.DefaultOutput = u
}
