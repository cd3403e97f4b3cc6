package app

import (
	"bufio"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lumen/internal/config"
	"github.com/ayoisaiah/lumen/internal/models"
)

func listFilteredSessions(ctx *cli.Context, e *env) ([]*models.Session, error) {
	filter, err := sessionFilter(ctx, e, time.Now())
	if err != nil {
		return nil, err
	}

	return e.db.ListSessions(ctx.Context, filter)
}

// taskTitles maps task IDs to titles for display.
func taskTitles(ctx *cli.Context, e *env) (map[string]string, error) {
	list, err := e.db.ListTasks(ctx.Context)
	if err != nil {
		return nil, err
	}

	titles := make(map[string]string, len(list))
	for _, t := range list {
		titles[t.ID] = t.Title
	}

	return titles, nil
}

// sessionListAction prints the sessions in the requested range, newest
// first.
func sessionListAction(ctx *cli.Context, e *env) error {
	sessions, err := listFilteredSessions(ctx, e)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(config.Stdout, sessions)
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	titles, err := taskTitles(ctx, e)
	if err != nil {
		return err
	}

	printSessionsTable(config.Stdout, sessions, titles)

	return nil
}

// sessionDeleteAction deletes the sessions in the requested range. It asks
// for confirmation unless --yes is set.
func sessionDeleteAction(ctx *cli.Context, e *env) error {
	sessions, err := listFilteredSessions(ctx, e)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	if !ctx.Bool("yes") {
		titles, err := taskTitles(ctx, e)
		if err != nil {
			return err
		}

		printSessionsTable(config.Stdout, sessions, titles)

		warning := pterm.Warning.Sprint(
			"The above sessions will be deleted permanently. Press ENTER to proceed",
		)

		fmt.Fprint(config.Stdout, warning)

		reader := bufio.NewReader(config.Stdin)

		_, _ = reader.ReadString('\n')
	}

	ids := make([]string, len(sessions))
	for i, sess := range sessions {
		ids[i] = sess.ID
	}

	if err := e.db.DeleteSessions(ctx.Context, ids...); err != nil {
		return err
	}

	pterm.Success.Printfln("%d sessions deleted", len(ids))

	return nil
}
