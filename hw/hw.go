// Package hw is the capability boundary between the kit core and the
// hardware. The core reads levels and samples through these interfaces and
// never touches a pin driver directly.
package hw

import "pixelkit-go/board"

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// DigitalPin is the runtime binding of one board pin for digital I/O.
type DigitalPin interface {
	Pin() board.Pin
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Get() bool
	Set(level bool)
}

// AnalogPin samples one ADC-capable board pin. ReadRaw returns a 16-bit
// scaled value regardless of converter resolution.
type AnalogPin interface {
	Pin() board.Pin
	ReadRaw() uint16
}

// Provider performs the actual hardware binding of a pin. It does not guard
// against double-binding; consumers go through the pin registry, which
// hands out one binding per pin.
type Provider interface {
	OpenDigital(p board.Pin) (DigitalPin, error)
	OpenAnalog(p board.Pin) (AnalogPin, error)
}
