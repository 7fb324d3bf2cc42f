//go:build !rp2040

// Package console routes diagnostics. Host builds print straight to stdout
// through fmtx; MCU builds bring up the wiring's UART first.
package console

import "pixelkit-go/board"

func Init(board.Wiring) {}
