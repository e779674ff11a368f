package palette

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mbourmaud/shade/internal/colorspace"
)

// Seed is a named starting color offered by Randomize
type Seed struct {
	Name string
	Hex  string
}

// Seeds is the curated list random palettes are drawn from
var Seeds = []Seed{
	{Name: "Red", Hex: "#EF4444"},
	{Name: "Orange", Hex: "#F97316"},
	{Name: "Amber", Hex: "#EAB308"},
	{Name: "Lime", Hex: "#84CC16"},
	{Name: "Green", Hex: "#22C55E"},
	{Name: "Emerald", Hex: "#10B981"},
	{Name: "Cyan", Hex: "#06B6D4"},
	{Name: "Sky", Hex: "#0EA5E9"},
	{Name: "Blue", Hex: "#3B82F6"},
	{Name: "Indigo", Hex: "#6366F1"},
	{Name: "Violet", Hex: "#8B5CF6"},
	{Name: "Fuchsia", Hex: "#D946EF"},
	{Name: "Pink", Hex: "#DB2777"},
	{Name: "Rose", Hex: "#BE185D"},
	{Name: "Red-900", Hex: "#7F1D1D"},
	{Name: "Blue-900", Hex: "#1E3A8A"},
	{Name: "Green-900", Hex: "#365314"},
}

// SuggestName returns the name of the curated seed perceptually closest to
// hex (CIEDE2000). It returns "" when hex does not parse.
func SuggestName(hex string) string {
	norm, ok := colorspace.Normalize(hex)
	if !ok {
		return ""
	}
	target, err := colorful.Hex(norm)
	if err != nil {
		return ""
	}

	best := ""
	bestDist := 0.0
	for _, seed := range Seeds {
		c, err := colorful.Hex(seed.Hex)
		if err != nil {
			continue
		}
		d := target.DistanceCIEDE2000(c)
		if best == "" || d < bestDist {
			best = seed.Name
			bestDist = d
		}
	}
	return best
}
