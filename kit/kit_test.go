package kit

import (
	"errors"
	"image/color"
	"testing"
	"testing/fstest"

	"pixelkit-go/board"
	"pixelkit-go/hw/sim"
	"pixelkit-go/pinreg"
	"pixelkit-go/pixel"
)

// stripRec records flushed frames and, when given a log, the render order
// relative to other instrumented actions.
type stripRec struct {
	frames [][]color.RGBA
	log    *[]string
}

func (r *stripRec) WriteColors(buf []color.RGBA) error {
	r.frames = append(r.frames, append([]color.RGBA(nil), buf...))
	if r.log != nil {
		*r.log = append(*r.log, "render")
	}
	return nil
}

func noConfig() fstest.MapFS { return fstest.MapFS{} }

func TestDigitalEdgeFiresOncePerPress(t *testing.T) {
	prov := sim.New()
	reg := pinreg.New(prov)

	presses := 0
	k, err := New(reg, Options{
		Surface:  pixel.NewSurface(&stripRec{}, board.MatrixWidth, board.MatrixHeight),
		ConfigFS: noConfig(),
		Events:   Events{ButtonA: func() { presses++ }},
		Terminate: func() {
			t.Fatal("terminate must not run")
		},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	pin := prov.Pin(board.Default.ButtonA)
	// Raw levels, active-low: three asserted reads, one release, one assert.
	for _, level := range []bool{false, false, false, true, false} {
		pin.Level = level
		k.Poll()
	}
	if presses != 2 {
		t.Fatalf("press callback fired %d times, want 2", presses)
	}
}

func TestAnalogFiresOnChangedSampleOnly(t *testing.T) {
	prov := sim.New()
	reg := pinreg.New(prov)
	adc := prov.DriveAnalog(board.Default.Dial, 10)

	var got []int
	k, err := New(reg, Options{
		Surface:  pixel.NewSurface(&stripRec{}, board.MatrixWidth, board.MatrixHeight),
		ConfigFS: noConfig(),
		Events:   Events{Dial: func(v int) { got = append(got, v) }},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for _, v := range []uint16{10, 10, 12, 12, 9} {
		adc.Sample = v
		k.Poll()
	}
	if len(got) != 2 || got[0] != 12 || got[1] != 9 {
		t.Fatalf("dial callbacks = %v, want [12 9]", got)
	}
}

func TestPauseIdleReturnsNormally(t *testing.T) {
	prov := sim.New()
	reg := pinreg.New(prov)

	strip := &stripRec{}
	k, err := New(reg, Options{
		Surface:  pixel.NewSurface(strip, board.MatrixWidth, board.MatrixHeight),
		ConfigFS: noConfig(),
		Pause:    FromPin(15),
		Terminate: func() {
			t.Fatal("terminate must not run while pause is idle")
		},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !k.HasPause() {
		t.Fatal("pause input should be configured")
	}

	k.CheckPause()
	if len(strip.frames) != 0 {
		t.Fatal("idle pause check must not touch the surface")
	}
}

func TestPauseAssertClearsThenRendersThenTerminates(t *testing.T) {
	prov := sim.New()
	reg := pinreg.New(prov)

	var ops []string
	strip := &stripRec{log: &ops}
	terminated := 0
	k, err := New(reg, Options{
		Surface:  pixel.NewSurface(strip, board.MatrixWidth, board.MatrixHeight),
		ConfigFS: noConfig(),
		Pause:    FromPin(15),
		Terminate: func() {
			terminated++
			ops = append(ops, "terminate")
		},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	k.SetBackground(pixel.Green)
	prov.Pin(15).Level = false // assert, active-low
	k.CheckPause()

	if terminated != 1 {
		t.Fatalf("terminated %d times, want 1", terminated)
	}
	if len(ops) != 2 || ops[0] != "render" || ops[1] != "terminate" {
		t.Fatalf("ops = %v, want [render terminate]", ops)
	}
	// The single flushed frame must already be all-off.
	black := color.RGBA{A: 0xff}
	for i, px := range strip.frames[0] {
		if px != black {
			t.Fatalf("pixel %d = %v at shutdown, want black", i, px)
		}
	}
}

// deadStrip fails every flush, like an unpowered chain.
type deadStrip struct {
	writes int
}

func (d *deadStrip) WriteColors([]color.RGBA) error {
	d.writes++
	return errors.New("strip not responding")
}

func TestPauseAssertTerminatesDespiteRenderFailure(t *testing.T) {
	prov := sim.New()
	reg := pinreg.New(prov)

	strip := &deadStrip{}
	terminated := 0
	k, err := New(reg, Options{
		Surface:   pixel.NewSurface(strip, board.MatrixWidth, board.MatrixHeight),
		ConfigFS:  noConfig(),
		Pause:     FromPin(15),
		Terminate: func() { terminated++ },
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	prov.Pin(15).Level = false
	k.CheckPause()

	if strip.writes != 1 {
		t.Fatalf("clear flushed %d times, want 1", strip.writes)
	}
	if terminated != 1 {
		t.Fatalf("terminated %d times, want 1", terminated)
	}
}

func TestScanOrderDeterministic(t *testing.T) {
	prov := sim.New()
	reg := pinreg.New(prov)
	dial := prov.DriveAnalog(board.Default.Dial, 100)
	mic := prov.DriveAnalog(board.Default.Microphone, 100)

	var order []string
	name := func(n string) func() {
		return func() { order = append(order, n) }
	}
	k, err := New(reg, Options{
		Surface:  pixel.NewSurface(&stripRec{}, board.MatrixWidth, board.MatrixHeight),
		ConfigFS: noConfig(),
		Pause:    FromPin(15),
		Events: Events{
			JoystickUp:    name("joystick_up"),
			JoystickDown:  name("joystick_down"),
			JoystickLeft:  name("joystick_left"),
			JoystickRight: name("joystick_right"),
			JoystickClick: name("joystick_click"),
			ButtonA:       name("button_a"),
			ButtonB:       name("button_b"),
			Dial:          func(int) { order = append(order, "dial") },
			Microphone:    func(int) { order = append(order, "microphone") },
		},
		Terminate: func() { order = append(order, "pause") },
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// Assert every input in one cycle.
	w := board.Default
	for _, p := range []board.Pin{
		w.JoyUp, w.JoyDown, w.JoyLeft, w.JoyRight, w.JoyClick,
		w.ButtonA, w.ButtonB, 15,
	} {
		prov.Pin(p).Level = false
	}
	dial.Sample = 200
	mic.Sample = 200

	k.Poll()

	want := []string{
		"joystick_up", "joystick_down", "joystick_left", "joystick_right",
		"joystick_click", "button_a", "button_b", "dial", "microphone",
		"pause",
	}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestProvidedHandleSkipsAcquisition(t *testing.T) {
	prov := sim.New()
	reg := pinreg.New(prov)

	external := prov.Drive(22, true)
	pressed := false
	k, err := New(reg, Options{
		Surface:  pixel.NewSurface(&stripRec{}, board.MatrixWidth, board.MatrixHeight),
		ConfigFS: noConfig(),
		ButtonA:  Provided(external),
		Events:   Events{ButtonA: func() { pressed = true }},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if n := prov.DigitalOpens(board.Default.ButtonA); n != 0 {
		t.Fatalf("default button A pin bound %d times, want 0", n)
	}

	// The provided handle is scanned like any other input.
	external.Level = false
	k.Poll()
	if !pressed {
		t.Fatal("provided handle was not scanned")
	}
}

func TestNoPauseConfigured(t *testing.T) {
	prov := sim.New()
	reg := pinreg.New(prov)

	k, err := New(reg, Options{
		Surface:  pixel.NewSurface(&stripRec{}, board.MatrixWidth, board.MatrixHeight),
		ConfigFS: noConfig(),
		Terminate: func() {
			t.Fatal("terminate must not run without a pause input")
		},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if k.HasPause() {
		t.Fatal("no pause input expected")
	}
	k.CheckPause()
}
