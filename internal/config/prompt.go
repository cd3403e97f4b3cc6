package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/lumen/internal/models"
)

const asciiLogo = `
██╗     ██╗   ██╗███╗   ███╗███████╗███╗   ██╗
██║     ██║   ██║████╗ ████║██╔════╝████╗  ██║
██║     ██║   ██║██╔████╔██║█████╗  ██╔██╗ ██║
██║     ██║   ██║██║╚██╔╝██║██╔══╝  ██║╚██╗██║
███████╗╚██████╔╝██║ ╚═╝ ██║███████╗██║ ╚████║
╚══════╝ ╚═════╝ ╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Preset        string
	Sound         bool
	Notifications bool
}

// WithPromptConfig returns an Option that asks for first-run settings when
// no config file exists yet. It must run before WithViperConfig so the
// answers are written into the new file.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPromptFailed.Wrap(err)
		}

		return writePromptOptions(configPath, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Preset:        models.PomodoroPreset,
		Sound:         true,
		Notifications: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure lumen for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'lumen edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default preset").
				Options(
					huh.NewOption("Pomodoro (25m work, 4 rounds)", models.PomodoroPreset).Selected(true),
					huh.NewOption("Quick Focus (15m work, 6 rounds)", models.QuickFocusPreset),
				).
				Value(&opts.Preset),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play sound cues?").
				Value(&opts.Sound),
			huh.NewConfirm().
				Title("Show desktop notifications?").
				Value(&opts.Notifications),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}
