package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lumen/internal/config"
	"github.com/ayoisaiah/lumen/internal/logger"
	"github.com/ayoisaiah/lumen/internal/pathutil"
	"github.com/ayoisaiah/lumen/internal/static"
	"github.com/ayoisaiah/lumen/internal/ui"
	"github.com/ayoisaiah/lumen/store"
	"github.com/ayoisaiah/lumen/store/boltdb"
	"github.com/ayoisaiah/lumen/store/sqlite"
)

// env holds the resources shared by every command.
type env struct {
	cfg *config.Config
	db  store.DB
	log io.Closer
}

// load reads the configuration, starts logging and opens the store.
// interactive enables the first-run prompt.
func load(ctx *cli.Context, interactive bool) (*env, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if interactive {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	closer, err := logger.Init(logger.Config{
		Path:  pathutil.LogFilePath(),
		Level: cfg.Log.Level,
		Debug: cfg.Log.Debug,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("config loaded", "config", cfg.String())

	ui.DarkTheme = cfg.Display.DarkTheme

	if cfg.CLI.NoColor {
		disableStyling()
	}

	if err := static.Install(pathutil.DataDir()); err != nil {
		slog.Warn("installing static files failed", "error", err)
	}

	dbPath := pathutil.DBFilePath(cfg.Store.Driver)

	db, err := openStore(ctx.Context, cfg.Store.Driver, dbPath)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	slog.Debug("store opened", "driver", cfg.Store.Driver, "path", dbPath)

	return &env{
		cfg: cfg,
		db:  db,
		log: closer,
	}, nil
}

// openStore opens the database for the named driver.
func openStore(ctx context.Context, driver, path string) (store.DB, error) {
	switch driver {
	case config.DriverBolt:
		db, err := boltdb.Open(ctx, path)
		if err != nil {
			return nil, err
		}

		return db, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, err
		}

		return db, nil
	}

	return nil, store.ErrUnknownDriver.Fmt(driver)
}

func (e *env) Close() error {
	return errors.Join(e.db.Close(), e.log.Close())
}

// withEnv adapts a command that needs the store into a cli action.
func withEnv(fn func(ctx *cli.Context, e *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) (err error) {
		e, err := load(ctx, false)
		if err != nil {
			return err
		}

		defer func() {
			err = errors.Join(err, e.Close())
		}()

		return fn(ctx, e)
	}
}
