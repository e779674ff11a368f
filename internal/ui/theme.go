package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mbourmaud/shade/internal/colorspace"
)

// Color palette for the shade CLI itself
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#218C6A", Dark: "#45D3A6"} // Sherwood Green 600/400
	ColorCyan   = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#06B6D4"}
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#22C55E"}
	ColorYellow = lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#EAB308"}
	ColorOrange = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#F97316"}

	ColorDim = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#555555"}
)

// Terminal colors for the two ContrastText labels
const (
	darkTextColor  = lipgloss.Color("#333333")
	lightTextColor = lipgloss.Color("#FFFFFF")
)

// TextColorFor returns the swatch label color for a background hex
func TextColorFor(hex string) lipgloss.Color {
	if colorspace.ContrastText(hex) == colorspace.DarkText {
		return darkTextColor
	}
	return lightTextColor
}
