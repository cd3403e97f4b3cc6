package session

import (
	"context"
	"fmt"

	"github.com/ayoisaiah/lumen/internal/garden"
	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/stats"
	"github.com/ayoisaiah/lumen/store"
)

// run calls fn and records its failure without interrupting the caller.
func (m *Machine) run(out *Outcome, effect Effect, fn func() error) {
	err := fn()
	if err == nil {
		return
	}

	m.deps.Logger.Warn(
		"side effect failed",
		"op", out.Op,
		"effect", effect,
		"error", err,
	)

	out.Failures = append(out.Failures, EffectError{
		Effect: effect,
		Err:    err,
	})
}

func (m *Machine) persist(ctx context.Context, out *Outcome) {
	sess := m.active

	m.run(out, EffectPersist, func() error {
		return m.deps.Store.UpdateSession(ctx, sess)
	})
}

func (m *Machine) notify(out *Outcome, title, body string) {
	m.run(out, EffectNotify, func() error {
		return m.deps.Notifier.Show(title, body, m.deps.NotifySound)
	})
}

func (m *Machine) play(out *Outcome, sound string) {
	if sound == "" {
		return
	}

	m.run(out, EffectSound, func() error {
		return m.deps.Player.Play(sound)
	})
}

func (m *Machine) pulse(out *Outcome) {
	m.run(out, EffectHaptic, func() error {
		return m.deps.Haptics.Pulse(m.deps.HapticIntensity)
	})
}

func (m *Machine) reward(ctx context.Context, out *Outcome) {
	if m.deps.Garden == nil {
		return
	}

	m.run(out, EffectGarden, func() error {
		p, err := m.deps.Garden.Reward(ctx)
		if err != nil {
			return err
		}

		m.deps.Logger.Info(
			"plant rewarded",
			"plant_id", p.ID,
			"type", p.PlantType,
		)

		return nil
	})
}

// remindThirsty sends one notification per plant that needs water.
func (m *Machine) remindThirsty(ctx context.Context, out *Outcome) {
	if m.deps.Garden == nil {
		return
	}

	var plants []*models.GardenPlant

	m.run(out, EffectGarden, func() error {
		var err error

		plants, err = m.deps.Garden.Thirsty(ctx)

		return err
	})

	for _, p := range plants {
		m.notify(out, "Plant Needs Water!", fmt.Sprintf(
			"Your %s is thirsty. Give it some water!",
			garden.DisplayName(p.PlantType),
		))
	}
}

// announceAchievements recomputes the statistics over the full history,
// including sess, and notifies every milestone reached.
func (m *Machine) announceAchievements(
	ctx context.Context,
	out *Outcome,
	sess *models.Session,
) {
	var history []*models.Session

	m.run(out, EffectStats, func() error {
		var err error

		history, err = m.deps.Store.ListSessions(ctx, store.SessionFilter{})

		return err
	})

	if history == nil {
		return
	}

	summary := stats.Compute(history, nil, m.deps.Now(), 0)

	for _, a := range stats.Achievements(summary, sess.Duration) {
		m.notify(out, a.Title, a.Body)
	}
}
