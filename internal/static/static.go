// Package static embeds the files lumen installs into its data directory,
// such as the notification icon.
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/lumen/internal/osutil"
)

const (
	filesDir = "files"

	// Icon is the notification icon, relative to the data directory.
	Icon = "icon.png"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into dir. Files that already exist are
// left alone so users can replace them.
func Install(dir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(filesDir, filepath.FromSlash(p))
			if err != nil {
				return err
			}

			destPath := filepath.Join(dir, rel)

			_, err = os.Stat(destPath)
			if err == nil {
				return nil
			}

			if !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
				return err
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
}

// IconPath returns the location of the installed notification icon, or an
// empty string if it has not been installed.
func IconPath(dir string) string {
	p := filepath.Join(dir, Icon)

	if _, err := os.Stat(p); err != nil {
		return ""
	}

	return p
}
