package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer

	PrintTable([][]string{
		{"NAME", "ROUNDS"},
		{"Pomodoro", "4"},
	}, &buf)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Pomodoro")
}

func TestColorsKeepText(t *testing.T) {
	for _, dark := range []bool{false, true} {
		DarkTheme = dark

		for _, fn := range []func(any) string{Green, Cyan, Blue, Red, Highlight} {
			assert.Contains(t, fn("lumen"), "lumen")
		}
	}

	DarkTheme = false
}
