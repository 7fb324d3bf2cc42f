// cmd/kit-sim/main.go
//
// Host demo: runs the kit against the simulated provider through a scripted
// session and prints each dispatched event.
package main

import (
	"fmt"
	"os"

	"pixelkit-go/board"
	"pixelkit-go/hw/sim"
	"pixelkit-go/kit"
	"pixelkit-go/pinreg"
)

func main() {
	prov := sim.New()
	reg := pinreg.New(prov)

	k, err := kit.New(reg, kit.Options{
		Pause: kit.FromPin(15),
		Events: kit.Events{
			JoystickUp:    func() { fmt.Println("event: joystick up") },
			JoystickDown:  func() { fmt.Println("event: joystick down") },
			JoystickLeft:  func() { fmt.Println("event: joystick left") },
			JoystickRight: func() { fmt.Println("event: joystick right") },
			JoystickClick: func() { fmt.Println("event: joystick click") },
			ButtonA:       func() { fmt.Println("event: button a") },
			ButtonB:       func() { fmt.Println("event: button b") },
			Dial:          func(v int) { fmt.Printf("event: dial %d\n", v) },
			Microphone:    func(v int) { fmt.Printf("event: microphone %d\n", v) },
		},
		Terminate: func() {
			fmt.Println("pause asserted, session over")
			os.Exit(0)
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "kit init failed:", err)
		os.Exit(1)
	}

	w := board.Default
	press := func(p board.Pin) {
		prov.Pin(p).Level = false
		k.Poll()
		prov.Pin(p).Level = true
		k.Poll()
	}

	// A short walk around the controls.
	press(w.JoyUp)
	press(w.JoyRight)
	press(w.JoyClick)
	press(w.ButtonA)
	press(w.ButtonB)

	dial := prov.ADC(w.Dial)
	for _, v := range []uint16{120, 120, 480, 2000} {
		dial.Sample = v
		k.Poll()
	}

	mic := prov.ADC(w.Microphone)
	mic.Sample = 900
	k.Poll()

	// Pause ends the process.
	prov.Pin(15).Level = false
	k.Poll()
}
