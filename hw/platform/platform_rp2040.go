//go:build rp2040

package platform

import (
	"machine"

	"pixelkit-go/board"
	"pixelkit-go/errcode"
	"pixelkit-go/hw"
)

// NewProvider returns the machine-backed provider.
func NewProvider() hw.Provider { return &mcuProvider{} }

type mcuProvider struct {
	adcReady bool
}

type mcuPin struct {
	p  machine.Pin
	id board.Pin
}

func (pr *mcuProvider) OpenDigital(p board.Pin) (hw.DigitalPin, error) {
	if int(p) > board.GPIOMax {
		return nil, errcode.UnknownPin
	}
	return &mcuPin{p: machine.Pin(p), id: p}, nil
}

func (m *mcuPin) Pin() board.Pin { return m.id }

func (m *mcuPin) ConfigureInput(pull hw.Pull) error {
	var mode machine.PinMode
	switch pull {
	case hw.PullUp:
		mode = machine.PinInputPullup
	case hw.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	m.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (m *mcuPin) ConfigureOutput(initial bool) error {
	m.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	m.p.Set(initial)
	return nil
}

func (m *mcuPin) Get() bool      { return m.p.Get() }
func (m *mcuPin) Set(level bool) { m.p.Set(level) }

type mcuADC struct {
	a  machine.ADC
	id board.Pin
}

func (pr *mcuProvider) OpenAnalog(p board.Pin) (hw.AnalogPin, error) {
	if int(p) > board.GPIOMax {
		return nil, errcode.UnknownPin
	}
	// GP26..GP28 are the muxed ADC inputs on this package.
	if p < 26 || p > 28 {
		return nil, errcode.NotAnalog
	}
	if !pr.adcReady {
		machine.InitADC()
		pr.adcReady = true
	}
	a := machine.ADC{Pin: machine.Pin(p)}
	a.Configure(machine.ADCConfig{})
	return &mcuADC{a: a, id: p}, nil
}

func (m *mcuADC) Pin() board.Pin  { return m.id }
func (m *mcuADC) ReadRaw() uint16 { return m.a.Get() }
