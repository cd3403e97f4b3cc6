// Package osutil holds small operating system helpers.
package osutil

import (
	"os"
	"runtime"
)

const (
	Windows = "windows"
	Darwin  = "darwin"
)

const (
	DirPermission  = 0o755
	FilePermission = 0o600
)

// firstNonEmpty returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func defaultEditor(goos string) string {
	switch goos {
	case Windows:
		return "notepad.exe"
	case Darwin:
		return "open -t"
	}

	return "nano"
}

// Editor returns the user's preferred text editor command line.
func Editor() string {
	return firstNonEmpty(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor(runtime.GOOS),
	)
}
