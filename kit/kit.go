// Package kit is the board I/O core: it owns the input handles and the
// matrix surface, scans inputs once per Poll and dispatches change events.
// There is no internal scheduling; the caller's loop drives Poll.
package kit

import (
	"io/fs"
	"os"

	"pixelkit-go/board"
	"pixelkit-go/errcode"
	"pixelkit-go/hw"
	"pixelkit-go/pinreg"
	"pixelkit-go/pixel"
)

// Events is the callback surface. Nil fields are no-ops. Digital callbacks
// fire once per press; Dial and Microphone receive every changed raw sample
// and must tolerate high-frequency invocation under sensor noise.
type Events struct {
	JoystickUp    func()
	JoystickDown  func()
	JoystickLeft  func()
	JoystickRight func()
	JoystickClick func()
	ButtonA       func()
	ButtonB       func()

	Dial       func(value int)
	Microphone func(value int)
}

// PinSource names where a digital role gets its handle: an already-bound
// handle, a pin to acquire, or (zero value) the wiring default. Resolved
// once at construction.
type PinSource struct {
	kind uint8 // 0 default, 1 provided, 2 acquire
	h    hw.DigitalPin
	p    board.Pin
}

func Provided(h hw.DigitalPin) PinSource { return PinSource{kind: 1, h: h} }
func FromPin(p board.Pin) PinSource      { return PinSource{kind: 2, p: p} }

func (s PinSource) resolve(def board.Pin, reg *pinreg.Registry) (hw.DigitalPin, error) {
	switch s.kind {
	case 1:
		return s.h, nil
	case 2:
		return reg.AcquireDigital(s.p)
	default:
		return reg.AcquireDigital(def)
	}
}

// AnalogSource is the analog counterpart of PinSource.
type AnalogSource struct {
	kind uint8
	h    hw.AnalogPin
	p    board.Pin
}

func ProvidedAnalog(h hw.AnalogPin) AnalogSource { return AnalogSource{kind: 1, h: h} }
func AnalogFromPin(p board.Pin) AnalogSource     { return AnalogSource{kind: 2, p: p} }

func (s AnalogSource) resolve(def board.Pin, reg *pinreg.Registry) (hw.AnalogPin, error) {
	switch s.kind {
	case 1:
		return s.h, nil
	case 2:
		return reg.AcquireAnalog(s.p)
	default:
		return reg.AcquireAnalog(def)
	}
}

// Options configures construction. The zero value of every field has a
// working default.
type Options struct {
	Wiring board.Wiring // zero value: board.Default

	JoystickUp, JoystickDown, JoystickLeft, JoystickRight, JoystickClick PinSource
	ButtonA, ButtonB, Reset                                              PinSource
	Dial, Microphone                                                     AnalogSource

	// Pause, when set, bypasses the config file.
	Pause           PinSource
	PauseConfigPath string // default "pausebutton_pin_config.txt"
	ConfigFS        fs.FS  // default os.DirFS(".")

	Surface *pixel.Surface // default pixel.NewMatrix(Wiring)

	Events Events

	// Terminate runs when the pause input asserts. Default exits the
	// process; tests substitute a recorder.
	Terminate func()
}

// Kit owns the resolved handles and per-input state.
type Kit struct {
	surface *pixel.Surface

	digitals []digitalScan
	analogs  []analogScan

	pause     hw.DigitalPin // nil when no pause button is configured
	reset     hw.DigitalPin // held to keep the pin claimed; not scanned
	terminate func()
}

type digitalScan struct {
	pin     hw.DigitalPin
	pressed bool
	fire    func()
}

type analogScan struct {
	pin  hw.AnalogPin
	last int
	fire func(int)
}

// New resolves every input role against the registry and builds the fixed
// scan table. Hardware binding failures propagate; a missing or invalid
// pause config does not.
func New(reg *pinreg.Registry, opts Options) (*Kit, error) {
	w := opts.Wiring
	if w == (board.Wiring{}) {
		w = board.Default
	}

	k := &Kit{
		surface:   opts.Surface,
		terminate: opts.Terminate,
	}
	if k.surface == nil {
		k.surface = pixel.NewMatrix(w)
	}
	if k.terminate == nil {
		k.terminate = func() { os.Exit(0) }
	}

	// Digital inputs, in scan order.
	digitals := []struct {
		name string
		src  PinSource
		def  board.Pin
		fire func()
	}{
		{"joystick_up", opts.JoystickUp, w.JoyUp, opts.Events.JoystickUp},
		{"joystick_down", opts.JoystickDown, w.JoyDown, opts.Events.JoystickDown},
		{"joystick_left", opts.JoystickLeft, w.JoyLeft, opts.Events.JoystickLeft},
		{"joystick_right", opts.JoystickRight, w.JoyRight, opts.Events.JoystickRight},
		{"joystick_click", opts.JoystickClick, w.JoyClick, opts.Events.JoystickClick},
		{"button_a", opts.ButtonA, w.ButtonA, opts.Events.ButtonA},
		{"button_b", opts.ButtonB, w.ButtonB, opts.Events.ButtonB},
	}
	for _, d := range digitals {
		h, err := d.src.resolve(d.def, reg)
		if err != nil {
			return nil, &errcode.E{C: errcode.Of(err), Op: d.name, Err: err}
		}
		k.digitals = append(k.digitals, digitalScan{
			pin:  h,
			fire: orNop(d.fire),
		})
	}

	var err error
	if k.reset, err = opts.Reset.resolve(w.Reset, reg); err != nil {
		return nil, &errcode.E{C: errcode.Of(err), Op: "reset", Err: err}
	}

	// Analog inputs. The stored value starts at the first sample so the
	// change callback only fires on a real change after construction.
	analogs := []struct {
		name string
		src  AnalogSource
		def  board.Pin
		fire func(int)
	}{
		{"dial", opts.Dial, w.Dial, opts.Events.Dial},
		{"microphone", opts.Microphone, w.Microphone, opts.Events.Microphone},
	}
	for _, a := range analogs {
		h, err := a.src.resolve(a.def, reg)
		if err != nil {
			return nil, &errcode.E{C: errcode.Of(err), Op: a.name, Err: err}
		}
		k.analogs = append(k.analogs, analogScan{
			pin:  h,
			last: int(h.ReadRaw()),
			fire: orNopValue(a.fire),
		})
	}

	// Pause input: explicit source wins, otherwise the config file decides.
	if opts.Pause.kind != 0 {
		if k.pause, err = opts.Pause.resolve(board.NoPin, reg); err != nil {
			return nil, &errcode.E{C: errcode.Of(err), Op: "pause", Err: err}
		}
	} else {
		path := opts.PauseConfigPath
		if path == "" {
			path = "pausebutton_pin_config.txt"
		}
		fsys := opts.ConfigFS
		if fsys == nil {
			fsys = os.DirFS(".")
		}
		if k.pause, err = loadPauseConfig(fsys, path, reg); err != nil {
			return nil, err
		}
	}

	return k, nil
}

// Surface exposes the matrix for drawing.
func (k *Kit) Surface() *pixel.Surface { return k.surface }

// Drawing conveniences mirroring the surface contract.

func (k *Kit) SetPixel(x, y int, c pixel.Color) { k.surface.SetPixel(x, y, c) }
func (k *Kit) SetBackground(c pixel.Color)      { k.surface.Fill(c) }
func (k *Kit) Clear()                           { k.surface.Clear() }
func (k *Kit) Render() error                    { return k.surface.Render() }

// HasPause reports whether a pause input is configured.
func (k *Kit) HasPause() bool { return k.pause != nil }

func orNop(f func()) func() {
	if f == nil {
		return func() {}
	}
	return f
}

func orNopValue(f func(int)) func(int) {
	if f == nil {
		return func(int) {}
	}
	return f
}
