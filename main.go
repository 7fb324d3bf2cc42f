package main

import (
	"time"

	"pixelkit-go/board"
	"pixelkit-go/console"
	"pixelkit-go/hw/platform"
	"pixelkit-go/kit"
	"pixelkit-go/pinreg"
	"pixelkit-go/pixel"
	"pixelkit-go/x/fmtx"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	console.Init(board.Default)
	fmtx.Printf("boot\n")

	reg := pinreg.New(platform.NewProvider())
	k, err := kit.New(reg, kit.Options{
		Events: kit.Events{
			JoystickUp:    func() { fmtx.Printf("joystick up\n") },
			JoystickDown:  func() { fmtx.Printf("joystick down\n") },
			JoystickLeft:  func() { fmtx.Printf("joystick left\n") },
			JoystickRight: func() { fmtx.Printf("joystick right\n") },
			JoystickClick: func() { fmtx.Printf("joystick click\n") },
			ButtonA:       func() { fmtx.Printf("button a\n") },
			ButtonB:       func() { fmtx.Printf("button b\n") },
			Dial:          func(v int) { fmtx.Printf("dial %d\n", v) },
			Microphone:    func(v int) { fmtx.Printf("microphone %d\n", v) },
		},
	})
	if err != nil {
		fmtx.Printf("kit init failed: %v\n", err)
		return
	}

	// Ready marker in the corner.
	k.SetPixel(0, 0, pixel.Green)
	if err := k.Render(); err != nil {
		fmtx.Printf("render failed: %v\n", err)
	}

	for {
		k.Poll()
		time.Sleep(10 * time.Millisecond)
	}
}
