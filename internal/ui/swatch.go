package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mbourmaud/shade/internal/colorspace"
	"github.com/mbourmaud/shade/internal/palette"
)

// BaseMarker flags the base entry of a palette
const BaseMarker = "◆ base"

// Swatch paints label on a block of the given color, picking a readable
// text color with the YIQ heuristic
func Swatch(hex, label string) string {
	return SwatchStyle.
		Background(lipgloss.Color(hex)).
		Foreground(TextColorFor(hex)).
		Render(label)
}

// PaletteView renders a palette as a table of swatches
func PaletteView(title string, mode palette.Mode, entries []palette.Entry) string {
	var b strings.Builder

	b.WriteString(Header("🎨", fmt.Sprintf("%s · %s", title, mode)))
	b.WriteString("\n")

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		marker := ""
		if e.IsBase {
			marker = StyleAccent.Render(BaseMarker)
		}
		rows = append(rows, []string{
			Swatch(e.Hex, e.Name),
			StyleBold.Render(e.Hex),
			StyleDim.Render(colorspace.RGBString(e.Hex)),
			marker,
		})
	}
	b.WriteString(Table([]string{"Swatch", "Hex", "RGB", ""}, rows))

	return b.String()
}

// ColorCard describes a single color in every representation
func ColorCard(hex string) string {
	rgb, ok := colorspace.HexToRGB(hex)
	if !ok {
		return Warning(fmt.Sprintf("%q is not a 6-digit hex color", hex))
	}
	return colorCard(colorspace.RGBToHex(rgb), rgb, colorspace.RGBToHSL(rgb))
}

// ColorCardHSL is ColorCard for a color given as HSL. The triple is shown as
// given rather than re-derived from the rounded hex.
func ColorCardHSL(c colorspace.HSL) string {
	return colorCard(colorspace.HSLToHex(c), colorspace.HSLToRGB(c), c)
}

func colorCard(canonical string, rgb colorspace.RGB, hsl colorspace.HSL) string {
	var b strings.Builder
	b.WriteString(Swatch(canonical, canonical) + "\n\n")
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("hex "), canonical)
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("rgb "), rgb)
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("hsl "), hsl)
	fmt.Fprintf(&b, "%s  %s", StyleDim.Render("text"), colorspace.ContrastText(canonical))

	return InfoBox("≈ "+palette.SuggestName(canonical), b.String())
}
