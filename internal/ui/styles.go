package ui

import "github.com/charmbracelet/lipgloss"

// Base text styles
var (
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleDim  = lipgloss.NewStyle().Foreground(ColorDim)
)

// Colored text styles
var (
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleCyan   = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
)

// Semantic styles
var (
	StyleHeader  = StyleBold.Foreground(ColorAccent)
	StyleSuccess = StyleBold.Foreground(ColorGreen)
	StyleWarning = StyleBold.Foreground(ColorYellow)
	StyleError   = StyleBold.Foreground(ColorOrange)
	StyleCommand = StyleCyan
	StyleComment = StyleDim
)

// Box styles
var (
	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorOrange).
			Padding(0, 1).
			MaxWidth(80)

	InfoBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1).
			MaxWidth(80)
)

// Table styles
var (
	TableHeaderStyle = StyleBold.
				Foreground(ColorAccent).
				PaddingRight(2)
)

// SwatchStyle is the block a palette color is painted into
var SwatchStyle = lipgloss.NewStyle().
	Width(12).
	Align(lipgloss.Center)
