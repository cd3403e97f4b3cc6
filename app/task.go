package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lumen/internal/config"
	"github.com/ayoisaiah/lumen/internal/tasks"
)

func taskAddAction(ctx *cli.Context, e *env) error {
	title := ctx.Args().First()
	if title == "" {
		return errMissingArg.Fmt("task title")
	}

	task, err := tasks.New(e.db).Add(
		ctx.Context,
		title,
		ctx.String("description"),
		ctx.StringSlice("tag")...,
	)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("task %q added (%s)", task.Title, task.ID)

	return nil
}

func taskListAction(ctx *cli.Context, e *env) error {
	list, err := tasks.New(e.db).List(ctx.Context)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(config.Stdout, list)
	}

	if len(list) == 0 {
		pterm.Info.Println(noTasksMsg)
		return nil
	}

	printTasksTable(config.Stdout, list)

	return nil
}

func taskRenameAction(ctx *cli.Context, e *env) error {
	if ctx.NArg() < 2 {
		return errMissingArg.Fmt("task and new title")
	}

	svc := tasks.New(e.db)

	task, err := svc.Find(ctx.Context, ctx.Args().Get(0))
	if err != nil {
		return err
	}

	task, err = svc.Rename(ctx.Context, task.ID, ctx.Args().Get(1))
	if err != nil {
		return err
	}

	pterm.Success.Printfln("task renamed to %q", task.Title)

	return nil
}

// taskDeleteAction removes a task. Its sessions are kept.
func taskDeleteAction(ctx *cli.Context, e *env) error {
	ref := ctx.Args().First()
	if ref == "" {
		return errMissingArg.Fmt("task")
	}

	svc := tasks.New(e.db)

	task, err := svc.Find(ctx.Context, ref)
	if err != nil {
		return err
	}

	if err := svc.Delete(ctx.Context, task.ID); err != nil {
		return err
	}

	pterm.Success.Printfln("task %q deleted", task.Title)

	return nil
}
