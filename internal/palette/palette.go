// Package palette derives shade ramps and hue-harmony sets from a seed color.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mbourmaud/shade/internal/colorspace"
)

// Mode selects how secondary colors are derived from the seed
type Mode string

const (
	ModeShades        Mode = "shades"
	ModeComplementary Mode = "complementary"
	ModeAnalogous     Mode = "analogous"
	ModeTriadic       Mode = "triadic"
)

// Role labels used by the harmony modes
const (
	NameBase      = "Base"
	NameComp      = "Comp."
	NameAnalogOne = "Analog. 1"
	NameAnalogTwo = "Analog. 2"
	NameTriadOne  = "Triad 1"
	NameTriadTwo  = "Triad 2"
)

// Modes returns every supported mode in menu order
func Modes() []Mode {
	return []Mode{ModeShades, ModeComplementary, ModeAnalogous, ModeTriadic}
}

// ParseMode resolves a mode name, case-insensitively
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown palette mode %q (expected one of %s)", s, modeList())
	}
	return m, nil
}

// Valid reports whether m is one of the supported modes
func (m Mode) Valid() bool {
	switch m {
	case ModeShades, ModeComplementary, ModeAnalogous, ModeTriadic:
		return true
	}
	return false
}

// Size is the number of entries Generate returns for m
func (m Mode) Size() int {
	switch m {
	case ModeShades:
		return len(ShadeTable)
	case ModeComplementary:
		return 2
	case ModeAnalogous, ModeTriadic:
		return 3
	default:
		return 1
	}
}

func (m Mode) String() string {
	return string(m)
}

func modeList() string {
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

// Entry is one named color of a generated palette
type Entry struct {
	Name   string `json:"name" yaml:"name"`
	Hex    string `json:"hex" yaml:"hex"`
	IsBase bool   `json:"is_base,omitempty" yaml:"is_base,omitempty"`
}

// ShadeStep pairs a shade key with its reference lightness
type ShadeStep struct {
	Key       int
	Lightness int
}

// Name is the entry label for the step ("50".."950")
func (s ShadeStep) Name() string {
	return strconv.Itoa(s.Key)
}

// ShadeTable is the canonical lightness ramp, lightest first. Iteration order
// is significant: ClosestShade breaks ties in favour of the earlier step.
var ShadeTable = []ShadeStep{
	{Key: 50, Lightness: 95},
	{Key: 100, Lightness: 90},
	{Key: 200, Lightness: 79},
	{Key: 300, Lightness: 66},
	{Key: 400, Lightness: 55},
	{Key: 500, Lightness: 44},
	{Key: 600, Lightness: 34},
	{Key: 700, Lightness: 27},
	{Key: 800, Lightness: 23},
	{Key: 900, Lightness: 17},
	{Key: 950, Lightness: 10},
}

// fallbackShade anchors lightness values that are 100 or more away from every step
var fallbackShade = ShadeStep{Key: 900, Lightness: 17}

// ClosestShade returns the step whose reference lightness is nearest to l
func ClosestShade(l int) ShadeStep {
	best := fallbackShade
	bestDiff := 100
	for _, step := range ShadeTable {
		diff := abs(l - step.Lightness)
		if diff < bestDiff {
			best = step
			bestDiff = diff
		}
	}
	return best
}

// Generate computes the full palette for seed in the given mode.
// Input is not range checked; only the shades ramp clamps s and l.
func Generate(seed colorspace.HSL, mode Mode) []Entry {
	if mode == ModeShades {
		return shades(seed)
	}

	entries := make([]Entry, 0, mode.Size())
	entries = append(entries, Entry{Name: NameBase, Hex: colorspace.HSLToHex(seed), IsBase: true})

	rotate := func(name string, offset int) {
		c := colorspace.HSL{H: (seed.H + offset) % 360, S: seed.S, L: seed.L}
		entries = append(entries, Entry{Name: name, Hex: colorspace.HSLToHex(c)})
	}

	switch mode {
	case ModeComplementary:
		rotate(NameComp, 180)
	case ModeAnalogous:
		rotate(NameAnalogOne, 30)
		rotate(NameAnalogTwo, 330)
	case ModeTriadic:
		rotate(NameTriadOne, 120)
		rotate(NameTriadTwo, 240)
	}

	return entries
}

// shades shifts the whole reference ramp by the seed's offset from its
// nearest step, so the ramp passes through the seed's own lightness.
func shades(seed colorspace.HSL) []Entry {
	anchor := ClosestShade(seed.L)
	offset := seed.L - anchor.Lightness
	s := clamp(seed.S, 0, 100)

	entries := make([]Entry, 0, len(ShadeTable))
	for _, step := range ShadeTable {
		l := clamp(step.Lightness+offset, 0, 100)
		entries = append(entries, Entry{
			Name:   step.Name(),
			Hex:    colorspace.HSLToHex(colorspace.HSL{H: seed.H, S: s, L: l}),
			IsBase: step.Key == anchor.Key,
		})
	}
	return entries
}

// Base returns the entry flagged as base, if any
func Base(entries []Entry) (Entry, bool) {
	for _, e := range entries {
		if e.IsBase {
			return e, true
		}
	}
	return Entry{}, false
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
