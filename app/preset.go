package app

import (
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lumen/internal/config"
	"github.com/ayoisaiah/lumen/internal/models"
)

func presetAddAction(ctx *cli.Context, e *env) error {
	name := ctx.Args().First()
	if name == "" {
		return errMissingArg.Fmt("preset name")
	}

	p := &models.Preset{
		ID:         uuid.NewString(),
		Name:       name,
		Work:       ctx.Duration("work"),
		ShortBreak: ctx.Duration("short-break"),
		LongBreak:  ctx.Duration("long-break"),
		Rounds:     ctx.Int("rounds"),
		CreatedAt:  time.Now(),
	}

	if err := e.db.CreatePreset(ctx.Context, p); err != nil {
		return err
	}

	pterm.Success.Printfln("preset %q added", p.Name)

	return nil
}

func presetListAction(ctx *cli.Context, e *env) error {
	presets, err := e.db.ListPresets(ctx.Context)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(config.Stdout, presets)
	}

	printPresetsTable(config.Stdout, presets)

	return nil
}

func presetDeleteAction(ctx *cli.Context, e *env) error {
	name := ctx.Args().First()
	if name == "" {
		return errMissingArg.Fmt("preset name")
	}

	p, err := findPreset(ctx, e, name)
	if err != nil {
		return err
	}

	if err := e.db.DeletePreset(ctx.Context, p.ID); err != nil {
		return err
	}

	pterm.Success.Printfln("preset %q deleted", p.Name)

	return nil
}
