package app

import (
	"time"

	"github.com/urfave/cli/v2"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Log debug output to stderr as well as the log file",
	}

	storeFlag = &cli.StringFlag{
		Name:  "store",
		Usage: "Database driver to use: sqlite or bolt",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable desktop notifications",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Do not play sound cues",
	}

	presetFlag = &cli.StringFlag{
		Name:    "preset",
		Aliases: []string{"p"},
		Usage:   "Name of the preset to run (e.g. 'Quick Focus')",
	}

	taskFlag = &cli.StringFlag{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "ID or title of the task to focus on",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions started after this date (e.g. '2 weeks ago', '2025-03-01')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include sessions started before this date (e.g. 'yesterday')",
	}

	topFlag = &cli.IntFlag{
		Name:  "top",
		Usage: "Number of tasks to rank",
	}

	descriptionFlag = &cli.StringFlag{
		Name:  "description",
		Usage: "Task description",
	}

	tagsFlag = &cli.StringSliceFlag{
		Name:  "tag",
		Usage: "Comma-delimited task tags (may be repeated)",
	}

	workFlag = &cli.DurationFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work phase length",
		Value:   25 * time.Minute,
	}

	shortBreakFlag = &cli.DurationFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break length",
		Value:   5 * time.Minute,
	}

	longBreakFlag = &cli.DurationFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break length",
		Value:   15 * time.Minute,
	}

	roundsFlag = &cli.IntFlag{
		Name:    "rounds",
		Aliases: []string{"r"},
		Usage:   "Number of work phases per session",
		Value:   4,
	}

	plantTypeFlag = &cli.StringFlag{
		Name:     "type",
		Usage:    "Plant type (Flower, Tree, Herb, Succulent, Vegetable, Fruit)",
		Required: true,
	}

	plantColorFlag = &cli.StringFlag{
		Name:  "color",
		Usage: "Plant colour",
	}
)
