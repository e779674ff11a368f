// Package colorspace converts between hex, RGB and HSL color representations.
//
// All functions are pure. Hex parsing is the only fallible operation and it
// reports failure with a boolean rather than an error: an unparseable string
// means "not a color yet", and callers keep their previous valid state.
package colorspace

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Contrast labels returned by ContrastText
const (
	DarkText  = "#333"
	LightText = "white"
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// RGB is a color with 8-bit channels stored as ints in [0, 255]
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// HSL is a color with hue in degrees [0, 360) and saturation/lightness in percent [0, 100]
type HSL struct {
	H int `json:"h" yaml:"h"`
	S int `json:"s" yaml:"s"`
	L int `json:"l" yaml:"l"`
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// HexToRGB parses a 6-digit hex color with an optional leading '#'.
// The second return value is false when the input is not a valid color.
func HexToRGB(hex string) (RGB, bool) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, false
	}
	return RGB{R: parseByte(m[1]), G: parseByte(m[2]), B: parseByte(m[3])}, true
}

func parseByte(s string) int {
	// The regexp guarantees two hex digits.
	v, _ := strconv.ParseUint(s, 16, 8)
	return int(v)
}

// RGBToHex formats a color as canonical uppercase #RRGGBB
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

// RGBToHSL converts using the min/max channel algorithm, rounding every
// component to the nearest integer.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	hue := round(h * 360)
	hue = ((hue % 360) + 360) % 360

	return HSL{H: hue, S: round(s * 100), L: round(l * 100)}
}

// HSLToRGB converts with the lightness/chroma parametrization
// a = s*min(l, 1-l) and a clamped triangular wave per channel.
func HSLToRGB(c HSL) RGB {
	h := float64(c.H)
	s := float64(c.S) / 100
	l := float64(c.L) / 100
	a := s * math.Min(l, 1-l)

	channel := func(n float64) int {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return round(255 * v)
	}

	return RGB{R: channel(0), G: channel(8), B: channel(4)}
}

// HSLToHex converts an HSL triple to canonical uppercase #RRGGBB
func HSLToHex(c HSL) string {
	return RGBToHex(HSLToRGB(c))
}

// HexToHSL parses a hex color and converts it to HSL
func HexToHSL(hex string) (HSL, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return HSL{}, false
	}
	return RGBToHSL(rgb), true
}

// Normalize returns the canonical uppercase form of a hex color
func Normalize(hex string) (string, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return "", false
	}
	return RGBToHex(rgb), true
}

// ContrastText picks a text color for the given background using the YIQ
// luminance (r*299 + g*587 + b*114) / 1000. It is a coarse binary heuristic,
// not a WCAG contrast ratio: luminance >= 128 gets DarkText, everything else
// (including unparseable input) gets LightText.
func ContrastText(hex string) string {
	rgb, ok := HexToRGB(strings.TrimSpace(hex))
	if !ok {
		return LightText
	}
	yiq := float64(rgb.R*299+rgb.G*587+rgb.B*114) / 1000
	if yiq >= 128 {
		return DarkText
	}
	return LightText
}

// RGBString renders the "R 16 G 70 B 53" caption used next to swatches
func RGBString(hex string) string {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("R %d G %d B %d", rgb.R, rgb.G, rgb.B)
}

// round rounds half up, matching the behaviour the ramps were tuned against
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampByte(v int) int {
	return max(0, min(255, v))
}
