// Package ui holds terminal colour and table helpers shared by the
// commands.
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each colour so text stays
// readable on dark backgrounds.
var DarkTheme bool

func paint(a any, light, dark pterm.Color) string {
	if DarkTheme {
		return dark.Sprint(a)
	}

	return light.Sprint(a)
}

func Green(a any) string {
	return paint(a, pterm.FgGreen, pterm.FgLightGreen)
}

func Cyan(a any) string {
	return paint(a, pterm.FgCyan, pterm.FgLightCyan)
}

func Blue(a any) string {
	return paint(a, pterm.FgBlue, pterm.FgLightBlue)
}

func Red(a any) string {
	return paint(a, pterm.FgRed, pterm.FgLightRed)
}

// Highlight makes a value stand out from the surrounding text.
func Highlight(a any) string {
	return paint(a, pterm.FgBlack, pterm.FgLightWhite)
}
