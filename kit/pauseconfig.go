package kit

import (
	"io/fs"
	"strings"

	"pixelkit-go/board"
	"pixelkit-go/hw"
	"pixelkit-go/pinreg"
	"pixelkit-go/x/fmtx"
)

// loadPauseConfig reads a one-line "<PIN_NAME>,<DIRECTION>" file, e.g.
// "D15,IN". Any parse or resolve failure logs a diagnostic and yields a nil
// handle: running without a pause button is a fully supported state. Only
// hardware binding failures return an error.
func loadPauseConfig(fsys fs.FS, path string, reg *pinreg.Registry) (hw.DigitalPin, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		fmtx.Printf("pause config: %s not readable, no pause button\n", path)
		return nil, nil
	}

	line := firstLine(string(raw))
	if line == "" {
		fmtx.Printf("pause config: empty, no pause button\n")
		return nil, nil
	}

	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		fmtx.Printf("pause config: malformed %q, no pause button\n", line)
		return nil, nil
	}
	name := strings.TrimSpace(parts[0])
	dir := strings.ToUpper(strings.TrimSpace(parts[1]))

	pin, ok := board.Lookup(name)
	if !ok {
		fmtx.Printf("pause config: unknown pin %q, no pause button\n", name)
		return nil, nil
	}
	if dir != "IN" && dir != "OUT" {
		fmtx.Printf("pause config: bad direction %q, no pause button\n", dir)
		return nil, nil
	}

	h, err := reg.AcquireDigital(pin)
	if err != nil {
		return nil, err
	}
	// The handle may be shared with another role; apply the configured
	// direction explicitly.
	if dir == "IN" {
		err = h.ConfigureInput(hw.PullUp)
	} else {
		err = h.ConfigureOutput(false)
	}
	if err != nil {
		return nil, err
	}

	fmtx.Printf("pause config: %s %s\n", name, dir)
	return h, nil
}

// firstLine returns the first significant line, trimmed.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
