package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/mbourmaud/shade/internal/colorspace"
)

// DefaultStdio returns the default terminal stdio (os.Stdin, os.Stdout, os.Stderr)
func DefaultStdio() terminal.Stdio {
	return terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(label string, defaultYes bool) (bool, error) {
	return PromptConfirmWithStdio(label, defaultYes, DefaultStdio())
}

// =============================================================================
// WithStdio variants for testing with virtual terminals
// =============================================================================

// PromptDefaultWithStdio is like PromptDefault but with custom stdio for testing
func PromptDefaultWithStdio(label, defaultValue string, stdio terminal.Stdio) (string, error) {
	var value string
	prompt := &survey.Input{
		Message: label,
		Default: defaultValue,
	}

	err := survey.AskOne(prompt, &value, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	if err != nil {
		return defaultValue, err
	}

	if value == "" {
		return defaultValue, nil
	}

	return value, nil
}

// PromptConfirmWithStdio is like PromptConfirm but with custom stdio for testing
func PromptConfirmWithStdio(label string, defaultYes bool, stdio terminal.Stdio) (bool, error) {
	var value bool
	prompt := &survey.Confirm{
		Message: label,
		Default: defaultYes,
	}

	err := survey.AskOne(prompt, &value, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	return value, err
}

// PromptSelectWithStdio is like PromptSelect but with custom stdio for testing.
// An empty defaultValue starts on the first option.
func PromptSelectWithStdio(label string, options []string, defaultValue string, stdio terminal.Stdio) (string, error) {
	var value string
	prompt := &survey.Select{
		Message: label,
		Options: options,
	}
	if defaultValue != "" {
		prompt.Default = defaultValue
	}

	err := survey.AskOne(prompt, &value, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	return value, err
}

// PromptHSLWithStdio is like PromptHSL but with custom stdio for testing.
// Each component is validated against its slider bounds.
func PromptHSLWithStdio(label string, current colorspace.HSL, stdio terminal.Stdio) (colorspace.HSL, error) {
	var value string
	prompt := &survey.Input{
		Message: label,
		Default: FormatHSL(current),
	}

	err := survey.AskOne(prompt, &value,
		survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			if s == "" {
				return nil
			}
			_, err := ParseHSL(s)
			return err
		}),
		survey.WithStdio(stdio.In, stdio.Out, stdio.Err),
	)
	if err != nil {
		return current, err
	}
	if value == "" {
		return current, nil
	}
	return ParseHSL(value)
}

// FormatHSL renders c as the "h,s,l" text PromptHSL accepts
func FormatHSL(c colorspace.HSL) string {
	return fmt.Sprintf("%d,%d,%d", c.H, c.S, c.L)
}

// ParseHSL reads "h,s,l" with h in [0,360] (360 wraps to 0) and s, l in [0,100]
func ParseHSL(s string) (colorspace.HSL, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) != 3 {
		return colorspace.HSL{}, fmt.Errorf("expected h,s,l but got %q", s)
	}

	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSuffix(p, "%"))
		if err != nil {
			return colorspace.HSL{}, fmt.Errorf("invalid number %q", p)
		}
		vals[i] = v
	}

	if vals[0] < 0 || vals[0] > 360 {
		return colorspace.HSL{}, fmt.Errorf("hue must be between 0 and 360")
	}
	if vals[1] < 0 || vals[1] > 100 {
		return colorspace.HSL{}, fmt.Errorf("saturation must be between 0 and 100")
	}
	if vals[2] < 0 || vals[2] > 100 {
		return colorspace.HSL{}, fmt.Errorf("lightness must be between 0 and 100")
	}

	return colorspace.HSL{H: vals[0] % 360, S: vals[1], L: vals[2]}, nil
}
