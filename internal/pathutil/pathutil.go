// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "LUMEN_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	boltFileName   string
	sqliteFileName string
	logFileName    string

	// Computed absolute paths
	dataDir        string
	configFilePath string
	boltFilePath   string
	sqliteFilePath string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = newPaths(os.Getenv(envName))
		initErr = paths.computePaths()
	})

	return initErr
}

func newPaths(env string) *Paths {
	p := &Paths{
		configDir:      "lumen",
		configFileName: "config.yml",
		boltFileName:   "lumen.db",
		sqliteFileName: "lumen.sqlite",
		logFileName:    "lumen.log",
	}

	p.applyEnvironmentOverrides(env)

	return p
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

// DataDir is the directory holding the database, logs and static files.
func DataDir() string {
	return Must().dataDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

// DBFilePath returns the database location for the named store driver.
func DBFilePath(driver string) string {
	if driver == "bolt" {
		return Must().boltFilePath
	}

	return Must().sqliteFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.boltFileName = fmt.Sprintf("lumen_%s.db", env)
	p.sqliteFileName = fmt.Sprintf("lumen_%s.sqlite", env)
	p.logFileName = fmt.Sprintf("lumen_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	p.dataDir, err = xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.boltFilePath = filepath.Join(p.dataDir, p.boltFileName)
	p.sqliteFilePath = filepath.Join(p.dataDir, p.sqliteFileName)
	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}
