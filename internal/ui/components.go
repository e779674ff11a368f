package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Header renders a bold title line
func Header(emoji, title string) string {
	text := title
	if emoji != "" {
		text = emoji + " " + title
	}
	return StyleHeader.Render(text) + "\n"
}

// Success renders a success message
func Success(message string) string {
	return StyleSuccess.Render("✓ " + message)
}

// Warning renders a warning message
func Warning(message string) string {
	return StyleWarning.Render("⚠️  " + message)
}

// Error renders an error message
func Error(message string) string {
	return StyleError.Render("✗ " + message)
}

// ErrorBox renders content in an error box with optional title
func ErrorBox(title, content string) string {
	if title == "" {
		title = "Error"
	}

	lines := strings.Split(strings.TrimSpace(content), "\n")
	maxWidth := 76 // 80 - padding
	for i, line := range lines {
		if lipgloss.Width(line) > maxWidth {
			lines[i] = ansi.Truncate(line, maxWidth, "...")
		}
	}

	fullContent := StyleError.Render("⚠️  " + title)
	if body := strings.Join(lines, "\n"); body != "" {
		fullContent += "\n\n" + body
	}

	return "\n" + ErrorBoxStyle.Render(fullContent) + "\n"
}

// InfoBox renders content in an info box
func InfoBox(title, content string) string {
	if title == "" {
		title = "Info"
	}

	fullContent := StyleAccent.Render(title)
	if content != "" {
		fullContent += "\n\n" + content
	}

	return InfoBoxStyle.Render(fullContent) + "\n"
}

// Step represents a step in the "Next steps" section
type Step struct {
	Command     string
	Description string
}

// NextSteps renders a "Next steps:" section with commands
func NextSteps(steps []Step) string {
	var b strings.Builder

	b.WriteString("\n" + StyleBold.Render("Next steps:") + "\n")

	for _, step := range steps {
		command := StyleCommand.Render(step.Command)
		desc := ""
		if step.Description != "" {
			desc = StyleComment.Render("  # " + step.Description)
		}
		b.WriteString("  " + command + desc + "\n")
	}

	return b.String()
}

// Table renders a simple table. Cells may already be styled; widths are
// measured without ANSI sequences.
func Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var b strings.Builder

	for i, h := range headers {
		b.WriteString(TableHeaderStyle.Render(h + strings.Repeat(" ", widths[i]-lipgloss.Width(h))))
	}
	b.WriteString("\n")

	for _, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
