package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertHex(t *testing.T) {
	out, err := executeCommand(t, "convert", "#3b82f6")
	require.NoError(t, err)
	assert.Contains(t, out, "#3B82F6")
	assert.Contains(t, out, "rgb(59, 130, 246)")
	assert.Contains(t, out, "hsl(217, 91%, 60%)")
	assert.Contains(t, out, "Blue")
}

func TestConvertHSL(t *testing.T) {
	out, err := executeCommand(t, "convert", "161,62,17")
	require.NoError(t, err)
	assert.Contains(t, out, "#104635")
	assert.Contains(t, out, "rgb(16, 70, 53)")
	assert.Contains(t, out, "hsl(161, 62%, 17%)", "the typed triple, not the one re-derived from #104635")
	assert.NotContains(t, out, "hsl(161, 63%, 17%)")
}

func TestConvertInvalid(t *testing.T) {
	_, err := executeCommand(t, "convert", "not-a-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither")

	_, err = executeCommand(t, "convert")
	assert.Error(t, err, "missing argument")
}

func TestConvertInputs(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"#104635", []string{"#104635"}},
		{"3b82f6", []string{"#3B82F6"}},
		{"0,100,50", []string{"#FF0000", "hsl(0, 100%, 50%)"}},
		{"360, 100%, 50%", []string{"#FF0000", "hsl(0, 100%, 50%)"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out, err := executeCommand(t, "convert", tt.input)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}
