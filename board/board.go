// Package board describes the PixelKit handheld: an RP2040 carrier with a
// 16x8 WS2812 matrix, a five-way joystick, two face buttons, a dial and a
// microphone. It holds identities and wiring only; runtime pin state lives
// behind the hw package.
package board

// Pin identifies one GPIO-capable pin on the board.
type Pin uint8

// NoPin marks an unassigned role.
const NoPin Pin = 0xff

const (
	GPIOMin = 0
	GPIOMax = 28
)

func (p Pin) Number() int { return int(p) }

func (p Pin) String() string {
	if p == NoPin {
		return "none"
	}
	for name, pin := range names {
		if pin == p && name[0] == 'D' {
			return name
		}
	}
	return "none"
}

// names is the static pin table. Matching is case-sensitive; "D15" resolves,
// "d15" does not. VP/VN are the silkscreen labels of the two analog inputs.
var names = map[string]Pin{
	"D0": 0, "D1": 1, "D2": 2, "D3": 3, "D4": 4,
	"D5": 5, "D6": 6, "D7": 7, "D8": 8, "D9": 9,
	"D10": 10, "D11": 11, "D12": 12, "D13": 13, "D14": 14,
	"D15": 15, "D16": 16, "D17": 17, "D18": 18, "D19": 19,
	"D20": 20, "D21": 21, "D22": 22, "D23": 23, "D24": 24,
	"D25": 25, "D26": 26, "D27": 27, "D28": 28,
	"VP": 26, "VN": 27,
}

// Lookup resolves a pin name from the static table.
func Lookup(name string) (Pin, bool) {
	p, ok := names[name]
	return p, ok
}

// Matrix geometry.
const (
	MatrixWidth  = 16
	MatrixHeight = 8
)

// Wiring is the fixed role-to-pin assignment of one board revision.
type Wiring struct {
	Matrix Pin // WS2812 data line

	JoyUp, JoyDown, JoyLeft, JoyRight, JoyClick Pin
	ButtonA, ButtonB, Reset                     Pin

	Dial, Microphone Pin // ADC-capable

	UARTTX, UARTRX Pin // diagnostic console
}

// Default is the production wiring.
var Default = Wiring{
	Matrix: 4,

	JoyUp:    10,
	JoyDown:  11,
	JoyLeft:  12,
	JoyRight: 13,
	JoyClick: 14,
	ButtonA:  16,
	ButtonB:  17,
	Reset:    5,

	Dial:       26, // VP
	Microphone: 27, // VN

	UARTTX: 0,
	UARTRX: 1,
}
