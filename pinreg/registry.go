// Package pinreg hands out at most one hardware binding per board pin.
// Several logical roles can reference the same physical pin (the pause input
// often shares a button pin); without the registry each role would bind the
// pin again.
package pinreg

import (
	"pixelkit-go/board"
	"pixelkit-go/hw"
)

// Registry caches pin bindings for the life of the process. It is an
// explicit object so tests can run isolated instances; it is not a
// concurrency guard and expects the single cooperative poll thread.
//
// Digital and analog bindings are cached independently even though they share
// the pin namespace. A pin requested through both paths would be bound twice;
// no board wiring does that, and the registry does not cross-check.
type Registry struct {
	prov    hw.Provider
	digital map[board.Pin]hw.DigitalPin
	analog  map[board.Pin]hw.AnalogPin
}

func New(prov hw.Provider) *Registry {
	return &Registry{
		prov:    prov,
		digital: map[board.Pin]hw.DigitalPin{},
		analog:  map[board.Pin]hw.AnalogPin{},
	}
}

// AcquireDigital returns the binding for p, creating it on first request.
// A new binding is configured as an input with pull-up; callers that need an
// output reconfigure the returned handle.
func (r *Registry) AcquireDigital(p board.Pin) (hw.DigitalPin, error) {
	if h, ok := r.digital[p]; ok {
		return h, nil
	}
	h, err := r.prov.OpenDigital(p)
	if err != nil {
		return nil, err
	}
	if err := h.ConfigureInput(hw.PullUp); err != nil {
		return nil, err
	}
	r.digital[p] = h
	return h, nil
}

// AcquireAnalog returns the sampling binding for p, creating it on first
// request.
func (r *Registry) AcquireAnalog(p board.Pin) (hw.AnalogPin, error) {
	if h, ok := r.analog[p]; ok {
		return h, nil
	}
	h, err := r.prov.OpenAnalog(p)
	if err != nil {
		return nil, err
	}
	r.analog[p] = h
	return h, nil
}
