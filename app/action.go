package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lumen/internal/config"
	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/osutil"
	"github.com/ayoisaiah/lumen/internal/pathutil"
	"github.com/ayoisaiah/lumen/internal/session"
	"github.com/ayoisaiah/lumen/internal/stats"
	"github.com/ayoisaiah/lumen/internal/tasks"
	"github.com/ayoisaiah/lumen/internal/timeutil"
	"github.com/ayoisaiah/lumen/store"
	"github.com/ayoisaiah/lumen/timer"
)

const (
	envNoColor      = "NO_COLOR"
	envLumenNoColor = "LUMEN_NO_COLOR"
)

// findPreset resolves a preset name, reporting unknown names helpfully.
func findPreset(ctx *cli.Context, e *env, name string) (*models.Preset, error) {
	p, err := e.db.GetPresetByName(ctx.Context, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errUnknownPreset.Fmt(name)
	}

	return p, err
}

// defaultAction runs the interactive timer.
func defaultAction(ctx *cli.Context) (err error) {
	e, err := load(ctx, true)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, e.Close())
	}()

	preset, err := findPreset(ctx, e, e.cfg.PresetName())
	if err != nil {
		return err
	}

	taskSvc := tasks.New(e.db)

	m, err := session.New(preset, sessionDeps(ctx.Context, e.cfg, e.db))
	if err != nil {
		return err
	}

	if ref := e.cfg.CLI.Task; ref != "" {
		task, err := taskSvc.Find(ctx.Context, ref)
		if err != nil {
			return err
		}

		if err := m.SelectTask(task); err != nil {
			return err
		}
	}

	slog.Info("starting timer", "preset", preset.Name, "task", e.cfg.CLI.Task)

	return timer.Run(ctx.Context, m, taskSvc, timer.Options{
		DarkTheme:      e.cfg.Display.DarkTheme,
		TwentyFourHour: e.cfg.Display.TwentyFourHour,
	})
}

// statsAction prints statistics over the recorded sessions.
func statsAction(ctx *cli.Context, e *env) error {
	now := time.Now()

	filter, err := sessionFilter(ctx, e, now)
	if err != nil {
		return err
	}

	sessions, err := e.db.ListSessions(ctx.Context, filter)
	if err != nil {
		return err
	}

	taskList, err := e.db.ListTasks(ctx.Context)
	if err != nil {
		return err
	}

	summary := stats.Compute(sessions, taskList, now, ctx.Int("top"))

	if ctx.Bool("json") {
		return stats.RenderJSON(config.Stdout, summary)
	}

	stats.Render(config.Stdout, summary)

	return nil
}

// sessionFilter builds a session filter from the --since, --until and
// --task flags.
func sessionFilter(
	ctx *cli.Context,
	e *env,
	now time.Time,
) (store.SessionFilter, error) {
	var (
		filter store.SessionFilter
		err    error
	)

	if s := ctx.String("since"); s != "" {
		filter.Since, err = timeutil.FromStr(s, now)
		if err != nil {
			return filter, err
		}
	}

	if s := ctx.String("until"); s != "" {
		filter.Until, err = timeutil.EndFromStr(s, now)
		if err != nil {
			return filter, err
		}
	}

	if ref := ctx.String("task"); ref != "" {
		task, err := tasks.New(e.db).Find(ctx.Context, ref)
		if err != nil {
			return filter, err
		}

		filter.TaskID = task.ID
	}

	return filter, nil
}

// editConfigAction opens the config file in the user's editor.
func editConfigAction(ctx *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	args, err := shellquote.Split(osutil.Editor())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return errEditorNotSet
	}

	args = append(args, pathutil.ConfigFilePath())

	cmd := exec.CommandContext(ctx.Context, args[0], args[1:]...)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Fprintf(
			config.Stdout,
			"https://github.com/ayoisaiah/lumen/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if LUMEN_NO_COLOR is set
	if _, exists := os.LookupEnv(envLumenNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
