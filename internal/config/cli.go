package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// WithCLIConfig returns an Option that applies command line flags on top
// of the file configuration.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		c.CLI = CLIConfig{
			Preset:  strings.TrimSpace(ctx.String("preset")),
			Task:    strings.TrimSpace(ctx.String("task")),
			NoColor: ctx.Bool("no-color"),
		}

		if ctx.Bool("disable-notification") {
			c.Notifications.Enabled = false
		}

		if ctx.Bool("mute") {
			c.Sound.Enabled = false
		}

		if ctx.Bool("debug") {
			c.Log.Debug = true
		}

		if driver := ctx.String("store"); driver != "" {
			c.Store.Driver = strings.ToLower(strings.TrimSpace(driver))
		}

		return nil
	}
}
