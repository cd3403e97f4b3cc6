// Package report prints command outcomes to the terminal.
package report

import (
	"errors"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/lumen/store"
)

// Error prints err. A locked database gets a hint instead of the raw
// error.
func Error(err error) {
	if errors.Is(err, store.ErrLocked) {
		pterm.Warning.Println(store.ErrLocked.Error())
		return
	}

	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	Error(err)
	os.Exit(1)
}
