// Package app defines the lumen command line.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lumen/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func taskCommand() *cli.Command {
	return &cli.Command{
		Name:    "task",
		Aliases: []string{"tasks"},
		Usage:   "Manage the tasks you focus on",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a task",
				ArgsUsage: "<title>",
				Flags:     []cli.Flag{descriptionFlag, tagsFlag},
				Action:    withEnv(taskAddAction),
			},
			{
				Name:   "list",
				Usage:  "List tasks",
				Flags:  []cli.Flag{jsonFlag},
				Action: withEnv(taskListAction),
			},
			{
				Name:      "rename",
				Usage:     "Rename a task",
				ArgsUsage: "<task> <title>",
				Action:    withEnv(taskRenameAction),
			},
			{
				Name:      "delete",
				Usage:     "Delete a task. Its sessions are kept",
				ArgsUsage: "<task>",
				Action:    withEnv(taskDeleteAction),
			},
		},
	}
}

func presetCommand() *cli.Command {
	return &cli.Command{
		Name:    "preset",
		Aliases: []string{"presets"},
		Usage:   "Manage timer presets",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a preset",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					workFlag,
					shortBreakFlag,
					longBreakFlag,
					roundsFlag,
				},
				Action: withEnv(presetAddAction),
			},
			{
				Name:   "list",
				Usage:  "List presets",
				Flags:  []cli.Flag{jsonFlag},
				Action: withEnv(presetListAction),
			},
			{
				Name:      "delete",
				Usage:     "Delete a preset",
				ArgsUsage: "<name>",
				Action:    withEnv(presetDeleteAction),
			},
		},
	}
}

func sessionCommand() *cli.Command {
	return &cli.Command{
		Name:    "session",
		Aliases: []string{"sessions"},
		Usage:   "Inspect and delete recorded sessions",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List sessions, newest first",
				Flags:  []cli.Flag{sinceFlag, untilFlag, taskFlag, jsonFlag},
				Action: withEnv(sessionListAction),
			},
			{
				Name:   "delete",
				Usage:  "Delete sessions",
				Flags:  []cli.Flag{sinceFlag, untilFlag, taskFlag, yesFlag},
				Action: withEnv(sessionDeleteAction),
			},
		},
	}
}

func gardenCommand() *cli.Command {
	return &cli.Command{
		Name:  "garden",
		Usage: "Tend the plants grown by completed sessions",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List your plants",
				Flags:  []cli.Flag{jsonFlag},
				Action: withEnv(gardenListAction),
			},
			{
				Name:      "plant",
				Usage:     "Plant something new",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{plantTypeFlag, plantColorFlag},
				Action:    withEnv(gardenPlantAction),
			},
			{
				Name:      "water",
				Usage:     "Water a plant",
				ArgsUsage: "<id>",
				Action:    withEnv(gardenWaterAction),
			},
		},
	}
}

// Get retrieves the lumen app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "lumen",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Lumen is a Pomodoro focus timer for the command-line. Work in focused 
		rounds, take breaks, track your tasks and grow a garden as you go.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			taskCommand(),
			presetCommand(),
			sessionCommand(),
			gardenCommand(),
			{
				Name: "stats",
				Usage: `
				Show totals, streaks and your most focused tasks`,
				Flags:  []cli.Flag{sinceFlag, untilFlag, taskFlag, topFlag, jsonFlag},
				Action: withEnv(statsAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			presetFlag,
			taskFlag,
			disableNotificationFlag,
			muteFlag,
			storeFlag,
			debugFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}
}
