// Package export serializes generated palettes as CSS, SCSS or JSON.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mbourmaud/shade/internal/palette"
)

// Format is an export target
type Format string

const (
	FormatCSS  Format = "css"
	FormatSCSS Format = "scss"
	FormatJSON Format = "json"
)

// FallbackName is used when the palette has no name
const FallbackName = "color"

// ErrUnknownFormat is returned by Serialize for formats it cannot produce
var ErrUnknownFormat = errors.New("unknown export format")

var whitespaceRun = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// Formats returns the supported formats in menu order
func Formats() []Format {
	return []Format{FormatCSS, FormatSCSS, FormatJSON}
}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatCSS, FormatSCSS, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension for f, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// SanitizeName lower-cases name and collapses whitespace runs into '-'.
// An empty name becomes FallbackName.
func SanitizeName(name string) string {
	if name == "" {
		return FallbackName
	}
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// Serialize renders entries in generator order. Output is deterministic:
// identical input always yields identical bytes.
func Serialize(entries []palette.Entry, f Format, name string) (string, error) {
	prefix := SanitizeName(name)

	switch f {
	case FormatCSS:
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("  --%s-%s: %s;", prefix, e.Name, e.Hex))
		}
		return ":root {\n" + strings.Join(lines, "\n") + "\n}", nil

	case FormatSCSS:
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("$%s-%s: %s;", prefix, e.Name, e.Hex))
		}
		return strings.Join(lines, "\n"), nil

	case FormatJSON:
		return serializeJSON(entries, prefix), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// serializeJSON writes {"<prefix>": {"<entry>": "<hex>", ...}} with two-space
// indentation. A repeated entry name keeps its first position and takes the
// last value.
func serializeJSON(entries []palette.Entry, prefix string) string {
	var keys []string
	values := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, seen := values[e.Name]; !seen {
			keys = append(keys, e.Name)
		}
		values[e.Name] = e.Hex
	}

	var b strings.Builder
	b.WriteString("{\n  ")
	b.WriteString(quote(prefix))
	if len(keys) == 0 {
		b.WriteString(": {}\n}")
		return b.String()
	}

	b.WriteString(": {\n")
	for i, k := range keys {
		b.WriteString("    ")
		b.WriteString(quote(k))
		b.WriteString(": ")
		b.WriteString(quote(values[k]))
		if i < len(keys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  }\n}")
	return b.String()
}

// quote JSON-encodes s without escaping HTML characters
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// WriteFile saves serialized output, creating parent directories as needed
func WriteFile(path, content string) error {
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(cleanPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
