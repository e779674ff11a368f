package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbourmaud/shade/internal/colorspace"
)

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMode("  Triadic ")
	require.NoError(t, err)
	assert.Equal(t, ModeTriadic, got)

	_, err = ParseMode("tetradic")
	assert.Error(t, err)
}

func TestModeSize(t *testing.T) {
	seed := colorspace.HSL{H: 161, S: 62, L: 17}
	for _, m := range Modes() {
		t.Run(string(m), func(t *testing.T) {
			assert.Len(t, Generate(seed, m), m.Size())
		})
	}
	assert.Equal(t, 11, ModeShades.Size())
	assert.Equal(t, 2, ModeComplementary.Size())
	assert.Equal(t, 3, ModeAnalogous.Size())
	assert.Equal(t, 3, ModeTriadic.Size())
}

func TestShadeTableOrder(t *testing.T) {
	keys := []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}
	lightness := []int{95, 90, 79, 66, 55, 44, 34, 27, 23, 17, 10}

	require.Len(t, ShadeTable, len(keys))
	for i, step := range ShadeTable {
		assert.Equal(t, keys[i], step.Key)
		assert.Equal(t, lightness[i], step.Lightness)
	}
}

func TestClosestShade(t *testing.T) {
	tests := []struct {
		name string
		l    int
		want int
	}{
		{"exact 900", 17, 900},
		{"exact 50", 95, 50},
		{"tie 800/900 favours lower key", 20, 800},
		{"tie 700/800 favours lower key", 25, 700},
		{"tie 500/600 favours lower key", 39, 500},
		{"near 400", 57, 400},
		{"very light", 100, 50},
		{"very dark", 0, 950},
		{"far out of range", 250, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClosestShade(tt.l).Key)
		})
	}
}

func TestGenerateShadesAnchor(t *testing.T) {
	entries := Generate(colorspace.HSL{H: 161, S: 62, L: 17}, ModeShades)

	want := []Entry{
		{Name: "50", Hex: "#EAFAF5"},
		{Name: "100", Hex: "#D6F5EB"},
		{Name: "200", Hex: "#A8EBD6"},
		{Name: "300", Hex: "#73DEBC"},
		{Name: "400", Hex: "#45D3A6"},
		{Name: "500", Hex: "#2BB68A"},
		{Name: "600", Hex: "#218C6A"},
		{Name: "700", Hex: "#1A7055"},
		{Name: "800", Hex: "#165F48"},
		{Name: "900", Hex: "#104635", IsBase: true},
		{Name: "950", Hex: "#0A291F"},
	}
	assert.Equal(t, want, entries)

	// 500 sits at reference lightness 44 because the seed is exactly on 900
	assert.Equal(t, colorspace.HSLToHex(colorspace.HSL{H: 161, S: 62, L: 44}), entries[5].Hex)
}

func TestGenerateShadesShiftedRamp(t *testing.T) {
	// l=60 anchors on 400 (55) and shifts the whole ramp up by 5
	entries := Generate(colorspace.HSL{H: 217, S: 91, L: 60}, ModeShades)

	base, ok := Base(entries)
	require.True(t, ok)
	assert.Equal(t, "400", base.Name)
	assert.Equal(t, "#3C83F6", base.Hex)

	assert.Equal(t, "#FFFFFF", entries[0].Hex, "50 clamps at lightness 100")
	assert.Equal(t, "#E7F0FE", entries[1].Hex)
	assert.Equal(t, "#031E49", entries[10].Hex)
}

func TestGenerateShadesClamp(t *testing.T) {
	t.Run("lightness above range", func(t *testing.T) {
		entries := Generate(colorspace.HSL{H: 0, S: 0, L: 120}, ModeShades)
		assert.Equal(t, "#FFFFFF", entries[0].Hex)
		assert.True(t, entries[0].IsBase)
		for _, e := range entries[:3] {
			assert.Equal(t, "#FFFFFF", e.Hex, e.Name)
		}
	})

	t.Run("lightness below range", func(t *testing.T) {
		entries := Generate(colorspace.HSL{H: 0, S: 0, L: -20}, ModeShades)
		last := entries[len(entries)-1]
		assert.Equal(t, "950", last.Name)
		assert.Equal(t, "#000000", last.Hex)
		assert.True(t, last.IsBase)
	})

	t.Run("saturation clamped", func(t *testing.T) {
		over := Generate(colorspace.HSL{H: 200, S: 180, L: 50}, ModeShades)
		capped := Generate(colorspace.HSL{H: 200, S: 100, L: 50}, ModeShades)
		assert.Equal(t, capped, over)
	})

	t.Run("seed l=98 never overflows", func(t *testing.T) {
		entries := Generate(colorspace.HSL{H: 30, S: 50, L: 98}, ModeShades)
		assert.Equal(t, "50", entries[0].Name)
		assert.True(t, entries[0].IsBase)
		assert.Equal(t, colorspace.HSLToHex(colorspace.HSL{H: 30, S: 50, L: 98}), entries[0].Hex)
	})
}

func TestGenerateShadesSingleBase(t *testing.T) {
	for l := 0; l <= 100; l++ {
		entries := Generate(colorspace.HSL{H: 161, S: 62, L: l}, ModeShades)
		count := 0
		for _, e := range entries {
			if e.IsBase {
				count++
				assert.Equal(t, colorspace.HSLToHex(colorspace.HSL{H: 161, S: 62, L: l}), e.Hex, "base passes through the seed at l=%d", l)
			}
		}
		assert.Equal(t, 1, count, "l=%d", l)
	}
}

func TestGenerateHarmony(t *testing.T) {
	seed := colorspace.HSL{H: 161, S: 62, L: 17}

	tests := []struct {
		mode Mode
		want []Entry
	}{
		{ModeComplementary, []Entry{
			{Name: NameBase, Hex: "#104635", IsBase: true},
			{Name: NameComp, Hex: colorspace.HSLToHex(colorspace.HSL{H: 341, S: 62, L: 17})},
		}},
		{ModeAnalogous, []Entry{
			{Name: NameBase, Hex: "#104635", IsBase: true},
			{Name: NameAnalogOne, Hex: "#103C46"},
			{Name: NameAnalogTwo, Hex: "#10461A"},
		}},
		{ModeTriadic, []Entry{
			{Name: NameBase, Hex: "#104635", IsBase: true},
			{Name: NameTriadOne, Hex: "#351046"},
			{Name: NameTriadTwo, Hex: "#463510"},
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(seed, tt.mode))
		})
	}
}

func TestGenerateHueWraparound(t *testing.T) {
	comp := Generate(colorspace.HSL{H: 350, S: 62, L: 17}, ModeComplementary)
	require.Len(t, comp, 2)
	assert.Equal(t, colorspace.HSLToHex(colorspace.HSL{H: 170, S: 62, L: 17}), comp[1].Hex)
	assert.Equal(t, "#10463D", comp[1].Hex)

	triad := Generate(colorspace.HSL{H: 10, S: 80, L: 50}, ModeTriadic)
	require.Len(t, triad, 3)
	assert.Equal(t, "#E63C19", triad[0].Hex)
	assert.Equal(t, "#19E63B", triad[1].Hex, "hue 130")
	assert.Equal(t, "#3C19E6", triad[2].Hex, "hue 250")

	analog := Generate(colorspace.HSL{H: 10, S: 80, L: 50}, ModeAnalogous)
	assert.Equal(t, colorspace.HSLToHex(colorspace.HSL{H: 340, S: 80, L: 50}), analog[2].Hex)
}

func TestGenerateUnknownModeReturnsBase(t *testing.T) {
	entries := Generate(colorspace.HSL{H: 161, S: 62, L: 17}, Mode("tetradic"))
	assert.Equal(t, []Entry{{Name: NameBase, Hex: "#104635", IsBase: true}}, entries)
}

func TestGenerateDeterministic(t *testing.T) {
	seed := colorspace.HSL{H: 42, S: 77, L: 33}
	for _, m := range Modes() {
		assert.Equal(t, Generate(seed, m), Generate(seed, m))
	}
}
