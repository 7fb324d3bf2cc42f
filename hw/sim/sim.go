// Package sim is the host-side hardware provider: scriptable pins and ADC
// channels with open counters, for tests and the kit-sim demo.
package sim

import (
	"pixelkit-go/board"
	"pixelkit-go/errcode"
	"pixelkit-go/hw"
)

// Pin implements hw.DigitalPin with a settable level.
type Pin struct {
	id  board.Pin
	out bool

	// Level is the raw electrical level. Inputs idle high (pull-up), so a
	// fresh pin reads true until a test drives it low.
	Level bool

	Configures int
	Pull       hw.Pull
}

func (p *Pin) Pin() board.Pin { return p.id }

func (p *Pin) ConfigureInput(pull hw.Pull) error {
	p.out = false
	p.Pull = pull
	p.Configures++
	return nil
}

func (p *Pin) ConfigureOutput(initial bool) error {
	p.out = true
	p.Level = initial
	p.Configures++
	return nil
}

func (p *Pin) Get() bool { return p.Level }

func (p *Pin) Set(level bool) {
	if p.out {
		p.Level = level
	}
}

func (p *Pin) IsOutput() bool { return p.out }

// ADC implements hw.AnalogPin with a scriptable sample.
type ADC struct {
	id     board.Pin
	Sample uint16
	Reads  int
}

func (a *ADC) Pin() board.Pin { return a.id }

func (a *ADC) ReadRaw() uint16 {
	a.Reads++
	return a.Sample
}

// Provider implements hw.Provider. Each board pin maps to one Pin/ADC
// instance; opening the same pin again returns the same instance and bumps
// the open counter, so tests can assert how many bindings were requested.
type Provider struct {
	pins map[board.Pin]*Pin
	adcs map[board.Pin]*ADC

	digOpens map[board.Pin]int
	anaOpens map[board.Pin]int
}

func New() *Provider {
	return &Provider{
		pins:     map[board.Pin]*Pin{},
		adcs:     map[board.Pin]*ADC{},
		digOpens: map[board.Pin]int{},
		anaOpens: map[board.Pin]int{},
	}
}

func (pr *Provider) OpenDigital(p board.Pin) (hw.DigitalPin, error) {
	if int(p) > board.GPIOMax {
		return nil, errcode.UnknownPin
	}
	pr.digOpens[p]++
	if sp := pr.pins[p]; sp != nil {
		return sp, nil
	}
	sp := &Pin{id: p, Level: true}
	pr.pins[p] = sp
	return sp, nil
}

func (pr *Provider) OpenAnalog(p board.Pin) (hw.AnalogPin, error) {
	if int(p) > board.GPIOMax {
		return nil, errcode.UnknownPin
	}
	if !analogCapable(p) {
		return nil, errcode.NotAnalog
	}
	pr.anaOpens[p]++
	if sa := pr.adcs[p]; sa != nil {
		return sa, nil
	}
	sa := &ADC{id: p}
	pr.adcs[p] = sa
	return sa, nil
}

// analogCapable mirrors the RP2040 ADC mux (GP26..GP28 exposed).
func analogCapable(p board.Pin) bool {
	return p >= 26 && p <= 28
}

// Test hooks.

func (pr *Provider) Pin(p board.Pin) *Pin { return pr.pins[p] }
func (pr *Provider) ADC(p board.Pin) *ADC { return pr.adcs[p] }

func (pr *Provider) DigitalOpens(p board.Pin) int { return pr.digOpens[p] }
func (pr *Provider) AnalogOpens(p board.Pin) int  { return pr.anaOpens[p] }

// Drive forces the raw level of an input pin, creating it if the test runs
// ahead of the consumer. Returns the pin for chaining.
func (pr *Provider) Drive(p board.Pin, level bool) *Pin {
	sp := pr.pins[p]
	if sp == nil {
		sp = &Pin{id: p, Level: true}
		pr.pins[p] = sp
	}
	sp.Level = level
	return sp
}

// DriveAnalog forces the sample of an ADC channel, creating it if needed.
func (pr *Provider) DriveAnalog(p board.Pin, v uint16) *ADC {
	sa := pr.adcs[p]
	if sa == nil {
		sa = &ADC{id: p}
		pr.adcs[p] = sa
	}
	sa.Sample = v
	return sa
}
