//go:build rp2040

package fmtx

import "io"

// DefaultOutput is used by Printf on MCU builds.
// Set this from the platform bootstrap (e.g. a UART writer).
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// --- Public API (signatures match fmt) ---

func Sprintf(format string, a ...any) string {
	var b builder
	b.format(format, a...)
	return string(b.buf)
}

func Printf(format string, a ...any) (int, error) {
	s := Sprintf(format, a...)
	return DefaultOutput.Write([]byte(s))
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	s := Sprintf(format, a...)
	return w.Write([]byte(s))
}

func Errorf(format string, a ...any) error {
	return &stringError{Sprintf(format, a...)}
}

type stringError struct{ s string }

func (e *stringError) Error() string { return e.s }

// --- Internals: tiny formatter subset ---
// Supports %s %q %d %x %v %t %%. No width, precision or flags; keep MCU
// cost low.

type builder struct{ buf []byte }

func (b *builder) str(s string) { b.buf = append(b.buf, s...) }

func (b *builder) format(format string, args ...any) {
	ai := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			b.buf = append(b.buf, format[i])
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.buf = append(b.buf, '%')
			i += 2
			continue
		}
		i++
		if i >= len(format) {
			return
		}
		verb := format[i]
		i++
		if ai >= len(args) {
			b.missing(verb)
			continue
		}
		arg := args[ai]
		ai++
		b.verb(verb, arg)
	}
}

func (b *builder) verb(verb byte, arg any) {
	switch verb {
	case 's':
		b.str(asString(arg))
	case 'q':
		b.quote(asString(arg))
	case 'd':
		if isUnsigned(arg) {
			b.uint(toU64(arg))
		} else {
			b.int(toI64(arg))
		}
	case 'x':
		if isUnsigned(arg) {
			b.hex(toU64(arg))
		} else if n := toI64(arg); n < 0 {
			b.buf = append(b.buf, '-')
			b.hex(-uint64(n))
		} else {
			b.hex(uint64(n))
		}
	case 't':
		v, _ := arg.(bool)
		b.bool(v)
	case 'v':
		b.any(arg)
	default:
		// Unknown verb: write it literally to aid debugging.
		b.buf = append(b.buf, '%', verb)
	}
}

func (b *builder) any(v any) {
	switch x := v.(type) {
	case string:
		b.str(x)
	case bool:
		b.bool(x)
	case error:
		b.str(x.Error())
	case interface{ String() string }:
		b.str(x.String())
	default:
		switch {
		case isUnsigned(v):
			b.uint(toU64(v))
		case isInt(v):
			b.int(toI64(v))
		default:
			b.str("<unk>")
		}
	}
}

func (b *builder) missing(verb byte) {
	b.str("%!")
	b.buf = append(b.buf, verb)
	b.str("(MISSING)")
}

func (b *builder) bool(v bool) {
	if v {
		b.str("true")
	} else {
		b.str("false")
	}
}

func (b *builder) int(v int64) {
	u := uint64(v)
	if v < 0 {
		b.buf = append(b.buf, '-')
		u = -u // two's complement negation; exact for MinInt64
	}
	b.uint(u)
}

func (b *builder) uint(v uint64) {
	var tmp [20]byte
	p := len(tmp)
	for {
		p--
		tmp[p] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	b.buf = append(b.buf, tmp[p:]...)
}

func (b *builder) hex(v uint64) {
	const digits = "0123456789abcdef"
	var tmp [16]byte
	p := len(tmp)
	for {
		p--
		tmp[p] = digits[v&0xf]
		v >>= 4
		if v == 0 {
			break
		}
	}
	b.buf = append(b.buf, tmp[p:]...)
}

func (b *builder) quote(s string) {
	b.buf = append(b.buf, '"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '"':
			b.buf = append(b.buf, '\\', s[i])
		case '\n':
			b.buf = append(b.buf, '\\', 'n')
		case '\r':
			b.buf = append(b.buf, '\\', 'r')
		case '\t':
			b.buf = append(b.buf, '\\', 't')
		default:
			b.buf = append(b.buf, s[i])
		}
	}
	b.buf = append(b.buf, '"')
}

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case error:
		return x.Error()
	default:
		return "<unk>"
	}
}

func isInt(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func isUnsigned(v any) bool {
	switch v.(type) {
	case uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func toU64(v any) uint64 {
	switch t := v.(type) {
	case uint:
		return uint64(t)
	case uint8:
		return uint64(t)
	case uint16:
		return uint64(t)
	case uint32:
		return uint64(t)
	case uint64:
		return t
	default:
		return 0
	}
}

func toI64(v any) int64 {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case int64:
		return t
	case uint:
		return int64(t)
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		return int64(t)
	default:
		return 0
	}
}
