package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbourmaud/shade/internal/colorspace"
	"github.com/mbourmaud/shade/internal/config"
	"github.com/mbourmaud/shade/internal/export"
	"github.com/mbourmaud/shade/internal/palette"
)

func TestExportStdout(t *testing.T) {
	out, err := executeCommand(t, "export", "--hsl", "161,62,17", "-m", "complementary", "--name", "Forest Floor")
	require.NoError(t, err)
	comp := colorspace.HSLToHex(colorspace.HSL{H: 341, S: 62, L: 17})
	assert.Equal(t, ":root {\n  --forest-floor-base: #104635;\n  --forest-floor-comp.: "+comp+";\n}", out)
}

func TestExportFormats(t *testing.T) {
	entries := palette.Generate(colorspace.HSL{H: 161, S: 62, L: 17}, palette.ModeShades)

	for _, f := range export.Formats() {
		t.Run(string(f), func(t *testing.T) {
			want, err := export.Serialize(entries, f, palette.DefaultName)
			require.NoError(t, err)

			out, err := executeCommand(t, "export", "-f", string(f))
			require.NoError(t, err)
			assert.Equal(t, want, out)
		})
	}
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "colors.scss")

	out, err := executeCommand(t, "export", "-f", "scss", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "$sherwood-green-900: #104635;")
}

func TestExportToConfiguredDirectory(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.FileName)
	cfg := config.Default()
	cfg.Export.Directory = filepath.Join(dir, "tokens")
	cfg.Export.Format = "json"
	require.NoError(t, cfg.Save(cfgPath))

	_, err := executeRaw(t, "--config", cfgPath, "--env-file", filepath.Join(dir, ".env"),
		"export", "--name", "Brand Blue", "--hex", "#3b82f6")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "tokens", "brand-blue.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"brand-blue": {`)
	assert.Contains(t, string(data), `"400": "#3C83F6"`)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "export", "-f", "less")
	require.Error(t, err)
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestExportPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		dir    string
		want   string
	}{
		{"stdout by default", "", "", ""},
		{"explicit stdout", "-", "out", ""},
		{"explicit file", "a.css", "out", "a.css"},
		{"config directory", "", "out", filepath.Join("out", "my-palette.css")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exportPath(tt.output, tt.dir, "My Palette", export.FormatCSS))
		})
	}
}
