package app

import (
	"context"
	"log/slog"

	"github.com/ayoisaiah/lumen/internal/config"
	"github.com/ayoisaiah/lumen/internal/garden"
	"github.com/ayoisaiah/lumen/internal/pathutil"
	"github.com/ayoisaiah/lumen/internal/platform"
	"github.com/ayoisaiah/lumen/internal/session"
	"github.com/ayoisaiah/lumen/internal/static"
	"github.com/ayoisaiah/lumen/store"
)

const notificationSound = "default"

// sessionDeps builds the collaborators of the session machine from cfg.
// Services that are disabled or cannot start are replaced with no-ops so
// the timer keeps working without them.
func sessionDeps(
	ctx context.Context,
	cfg *config.Config,
	db store.DB,
) session.Deps {
	deps := session.Deps{
		Store:     db,
		Notifier:  platform.Nop{},
		Player:    platform.Nop{},
		FocusMode: platform.Nop{},
		Haptics:   platform.Nop{},
		Garden:    garden.New(db),
		Logger:    slog.Default(),
		Sounds: session.Sounds{
			Start:           cfg.Sound.Start,
			PhaseComplete:   cfg.Sound.PhaseComplete,
			SessionComplete: cfg.Sound.SessionComplete,
		},
		HapticIntensity: cfg.Haptics.Intensity,
	}

	if cfg.Notifications.Enabled {
		n := platform.NewDesktopNotifier(static.IconPath(pathutil.DataDir()))

		if err := n.RequestPermission(ctx); err != nil {
			slog.Warn("notifications unavailable", "error", err)
		} else {
			deps.Notifier = n
		}

		if cfg.Notifications.Sound {
			deps.NotifySound = notificationSound
		}
	}

	if cfg.Sound.Enabled {
		p, err := platform.NewSpeakerPlayer(cfg.Sound.Volume)
		if err != nil {
			slog.Warn("audio unavailable", "error", err)
		} else {
			deps.Player = p
		}
	}

	if cfg.FocusMode.Enabled {
		f := platform.NewCommandFocusMode(
			cfg.FocusMode.EnableCmd,
			cfg.FocusMode.DisableCmd,
		)

		if err := f.RequestAccess(ctx); err != nil {
			slog.Warn("focus mode unavailable", "error", err)
		} else {
			deps.FocusMode = f
		}
	}

	if cfg.Haptics.Enabled {
		deps.Haptics = platform.NewTerminalHaptics(0)
	}

	return deps
}
