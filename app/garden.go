package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lumen/internal/config"
	"github.com/ayoisaiah/lumen/internal/garden"
)

func gardenListAction(ctx *cli.Context, e *env) error {
	plants, err := garden.New(e.db).List(ctx.Context)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(config.Stdout, plants)
	}

	if len(plants) == 0 {
		pterm.Info.Println(noPlantsMsg)
		return nil
	}

	printPlantsTable(config.Stdout, plants)

	return nil
}

func gardenPlantAction(ctx *cli.Context, e *env) error {
	name := ctx.Args().First()
	if name == "" {
		return errMissingArg.Fmt("plant name")
	}

	p, err := garden.New(e.db).Plant(
		ctx.Context,
		name,
		ctx.String("type"),
		ctx.String("color"),
	)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("%s planted (%s)", p.Name, p.ID)

	return nil
}

func gardenWaterAction(ctx *cli.Context, e *env) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingArg.Fmt("plant ID")
	}

	p, err := garden.New(e.db).Water(ctx.Context, id)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"%s watered: water %d%%, growth %s",
		p.Name,
		p.WaterLevel,
		growthBar(p.GrowthLevel),
	)

	return nil
}
