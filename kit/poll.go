package kit

import (
	"pixelkit-go/x/fmtx"
)

// Poll runs one cooperative scan cycle: joystick, buttons, dial,
// microphone, then the pause check. Callers invoke it from their main loop.
func (k *Kit) Poll() {
	for i := range k.digitals {
		k.digitals[i].step()
	}
	for i := range k.analogs {
		k.analogs[i].step()
	}
	k.CheckPause()
}

// step advances the two-state press machine. Inputs are active-low: a low
// raw level means pressed. The callback fires exactly once on the
// released-to-pressed edge; releases are tracked silently. Level-compare
// only; contact bounce is not filtered.
func (s *digitalScan) step() {
	level := s.pin.Get()
	switch {
	case !level && !s.pressed:
		s.pressed = true
		s.fire()
	case level && s.pressed:
		s.pressed = false
	}
}

// step dispatches whenever the sample moved from the stored value. There is
// no hysteresis; a noisy sensor fires on every cycle.
func (s *analogScan) step() {
	v := int(s.pin.ReadRaw())
	if v == s.last {
		return
	}
	s.last = v
	s.fire(v)
}

// CheckPause terminates the program when the pause input asserts
// (active-low): the matrix is cleared and flushed first so the panel does
// not hold the last frame. Despite the name this is not a resumable pause.
// With no pause input configured, or the input idle, it returns normally.
func (k *Kit) CheckPause() {
	if k.pause == nil || k.pause.Get() {
		return
	}
	k.surface.Clear()
	if err := k.surface.Render(); err != nil {
		fmtx.Printf("pause clear render failed: %v\n", err)
	}
	fmtx.Printf("pause pressed, exiting\n")
	k.terminate()
}
