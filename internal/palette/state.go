package palette

import (
	"strings"

	"github.com/mbourmaud/shade/internal/colorspace"
)

// Defaults for a fresh editing session
const (
	DefaultHex  = "#104635"
	DefaultName = "Sherwood Green"
	DefaultMode = ModeShades
)

// Picker chooses an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

// State is the editable session state. HSL is canonical; the hex form and
// the palette are always derived from it and never stored.
type State struct {
	hsl    colorspace.HSL
	mode   Mode
	name   string
	locked bool

	// draft holds hex input that did not parse yet
	draft string
}

// NewState returns the default session: Sherwood Green in shades mode
func NewState() *State {
	return &State{
		hsl:  colorspace.HSL{H: 161, S: 62, L: 17},
		mode: DefaultMode,
		name: DefaultName,
	}
}

// HSL returns the canonical color
func (s *State) HSL() colorspace.HSL { return s.hsl }

// Hex returns the canonical color as #RRGGBB
func (s *State) Hex() string { return colorspace.HSLToHex(s.hsl) }

// RGB returns the canonical color as RGB
func (s *State) RGB() colorspace.RGB { return colorspace.HSLToRGB(s.hsl) }

func (s *State) Mode() Mode { return s.mode }

func (s *State) Name() string { return s.name }

func (s *State) NameLocked() bool { return s.locked }

// Input is what the hex field should show: the pending draft when the last
// edit did not parse, otherwise the derived hex.
func (s *State) Input() string {
	if s.draft != "" {
		return s.draft
	}
	return s.Hex()
}

// SetHex applies a hex edit. Invalid input is kept as a draft and the color
// is left untouched; the return value reports whether the color changed.
func (s *State) SetHex(hex string) bool {
	hsl, ok := colorspace.HexToHSL(strings.TrimSpace(hex))
	if !ok {
		s.draft = hex
		return false
	}
	s.hsl = hsl
	s.draft = ""
	return true
}

// SetHSL applies a slider edit
func (s *State) SetHSL(c colorspace.HSL) {
	s.hsl = c
	s.draft = ""
}

// SetMode changes the harmony mode; unknown modes are rejected
func (s *State) SetMode(m Mode) bool {
	if !m.Valid() {
		return false
	}
	s.mode = m
	return true
}

func (s *State) SetName(name string) { s.name = name }

// LockName stops Randomize from renaming the palette
func (s *State) LockName(locked bool) { s.locked = locked }

// Palette regenerates the palette from the current color and mode
func (s *State) Palette() []Entry {
	return Generate(s.hsl, s.mode)
}

// Randomize jumps to a curated seed, adopting its name unless the name is locked
func (s *State) Randomize(p Picker) Seed {
	seed := Seeds[p.IntN(len(Seeds))]
	s.SetHex(seed.Hex)
	if !s.locked {
		s.name = seed.Name
	}
	return seed
}

// LibraryName is the name a palette is saved under; exports sanitize Name instead
func (s *State) LibraryName() string {
	if strings.TrimSpace(s.name) == "" {
		return "Power Color Palette"
	}
	return s.name
}
