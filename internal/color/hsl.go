// Package color derives the two colours of a lucky sign and converts between
// HSL and hex. Everything here is a pure function over read-only tables.
package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	domainerrors "github.com/listenupapp/luckysign/internal/errors"
)

// HSL is a colour in hue/saturation/lightness space.
// H is in degrees [0,360), S and L are percentages [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Hex converts the colour to "#rrggbb".
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// HSLToHex converts HSL to a lowercase "#rrggbb" string using the six 60°
// hue sectors. Each channel is rounded half-up and clamped to [0,255], so
// out-of-range input produces the nearest representable colour.
func HSLToHex(h, s, l float64) string {
	s /= 100
	l /= 100

	hp := h / 60
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case 0 <= hp && hp < 1:
		r, g, b = c, x, 0
	case 1 <= hp && hp < 2:
		r, g, b = x, c, 0
	case 2 <= hp && hp < 3:
		r, g, b = 0, c, x
	case 3 <= hp && hp < 4:
		r, g, b = 0, x, c
	case 4 <= hp && hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2

	return "#" + channelHex((r+m)*255) + channelHex((g+m)*255) + channelHex((b+m)*255)
}

// channelHex rounds half-up, clamps to a byte and formats two lowercase hex digits.
func channelHex(v float64) string {
	if math.IsNaN(v) {
		v = 0
	}
	n := int(Clamp(math.Floor(v+0.5), 0, 255))
	return fmt.Sprintf("%02x", n)
}

// HexToHSL parses "#rrggbb" (either case) and converts it to HSL.
// Achromatic colours report h = s = 0.
func HexToHSL(hex string) (HSL, error) {
	if !IsHex(hex) {
		return HSL{}, domainerrors.InvalidColorf("invalid hex color %q", hex)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return HSL{}, domainerrors.ErrInvalidColor.WithCause(err)
	}

	h, s, l := c.Hsl()
	if s == 0 {
		h = 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	return HSL{H: h, S: s * 100, L: l * 100}, nil
}

// IsHex reports whether s is exactly "#" followed by six hex digits.
func IsHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		isDigit := c >= '0' && c <= '9'
		isLower := c >= 'a' && c <= 'f'
		isUpper := c >= 'A' && c <= 'F'
		if !isDigit && !isLower && !isUpper {
			return false
		}
	}
	return true
}

// NormalizeHex validates a hex colour and returns it in lowercase.
func NormalizeHex(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !IsHex(s) {
		return "", domainerrors.InvalidColorf("invalid hex color %q", s)
	}
	return strings.ToLower(s), nil
}

// ShiftLightness moves the lightness of a hex colour by delta percentage
// points, clamped to [0,100]. Hue and saturation are preserved.
func ShiftLightness(hex string, delta float64) (string, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}
	hsl.L = Clamp(hsl.L+delta, 0, 100)
	return hsl.Hex(), nil
}
