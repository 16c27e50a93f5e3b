package render

import "strconv"

// RGB is a 24-bit colour
type RGB struct {
	R, G, B uint8
}

var RGBBlack = RGB{0, 0, 0}

// ParseHex reads "#rrggbb" or "rrggbb"
func ParseHex(s string) (RGB, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// MustHex parses s or falls back to def
func MustHex(s string, def RGB) RGB {
	if c, ok := ParseHex(s); ok {
		return c
	}
	return def
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend is linear alpha compositing of src over dst
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1 - alpha
	return RGB{
		R: clamp(float64(dst.R)*inv + float64(src.R)*alpha + 0.5),
		G: clamp(float64(dst.G)*inv + float64(src.G)*alpha + 0.5),
		B: clamp(float64(dst.B)*inv + float64(src.B)*alpha + 0.5),
	}
}

// Scale multiplies every channel by f
func Scale(c RGB, f float64) RGB {
	return RGB{
		R: clamp(float64(c.R)*f + 0.5),
		G: clamp(float64(c.G)*f + 0.5),
		B: clamp(float64(c.B)*f + 0.5),
	}
}
