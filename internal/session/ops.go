package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/lumen/internal/models"
)

// Start begins a new session in the current phase. Starting after the
// final round resets to round 1.
func (m *Machine) Start(ctx context.Context) Outcome {
	out := Outcome{Op: OpStart}

	if m.running {
		return out
	}

	if m.round > m.preset.Rounds {
		m.reset()
	}

	now := m.deps.Now()

	sess := &models.Session{
		ID:         uuid.NewString(),
		StartedAt:  now,
		Phase:      m.phase,
		PresetName: m.preset.Name,
		Rounds:     m.round,
	}

	if m.task != nil {
		id := m.task.ID
		sess.TaskID = &id
	}

	m.active = sess
	m.startedAt = now
	m.running = true
	m.paused = false
	out.Applied = true

	m.run(&out, EffectPersist, func() error {
		return m.deps.Store.CreateSession(ctx, sess)
	})

	m.run(&out, EffectFocusMode, func() error {
		return m.deps.FocusMode.Enable(ctx)
	})

	m.notify(&out, "Focus session started", fmt.Sprintf(
		"Round %d of %d: %s",
		m.round,
		m.preset.Rounds,
		m.phase,
	))

	m.play(&out, m.deps.Sounds.Start)
	m.remindThirsty(ctx, &out)
	m.pulse(&out)

	m.deps.Logger.Info(
		"session started",
		"session_id", sess.ID,
		"preset", m.preset.Name,
		"round", m.round,
		"phase", m.phase,
	)

	return out
}

// Pause freezes the countdown.
func (m *Machine) Pause(ctx context.Context) Outcome {
	out := Outcome{Op: OpPause}

	if !m.running || m.paused {
		return out
	}

	m.paused = true
	m.active.Phase = models.Paused
	out.Applied = true

	m.persist(ctx, &out)

	m.deps.Logger.Debug("session paused", "remaining", m.remaining)

	return out
}

// Resume continues a paused countdown.
func (m *Machine) Resume(ctx context.Context) Outcome {
	out := Outcome{Op: OpResume}

	if !m.running || !m.paused {
		return out
	}

	m.paused = false
	m.active.Phase = m.phase
	out.Applied = true

	m.persist(ctx, &out)

	m.deps.Logger.Debug("session resumed", "remaining", m.remaining)

	return out
}

// Stop abandons the running session. The round is kept and the current
// phase restarts from its full length.
func (m *Machine) Stop(ctx context.Context) Outcome {
	out := Outcome{Op: OpStop}

	if !m.running {
		return out
	}

	sess := m.active

	sess.Finish(m.deps.Now(), false)
	sess.Phase = m.phase

	m.running = false
	m.paused = false
	m.active = nil
	m.remaining = m.preset.Duration(m.phase)
	out.Applied = true

	m.run(&out, EffectPersist, func() error {
		return m.deps.Store.UpdateSession(ctx, sess)
	})

	m.run(&out, EffectSound, m.deps.Player.Stop)

	m.run(&out, EffectFocusMode, func() error {
		return m.deps.FocusMode.Disable(ctx)
	})

	m.deps.Logger.Info(
		"session stopped",
		"session_id", sess.ID,
		"duration", sess.Duration,
	)

	return out
}

// Tick counts down one second and moves to the next phase when the current
// one runs out.
func (m *Machine) Tick(ctx context.Context) Outcome {
	out := Outcome{Op: OpTick}

	if !m.running || m.paused {
		return out
	}

	out.Applied = true
	m.remaining -= Tick

	if m.remaining <= 0 {
		m.advance(ctx, &out, true)
	}

	return out
}

// Skip ends the current phase early. Skipping never earns rewards, even
// when it finishes the last round.
func (m *Machine) Skip(ctx context.Context) Outcome {
	out := Outcome{Op: OpSkip}

	if !m.running {
		return out
	}

	out.Applied = true

	m.advance(ctx, &out, false)

	return out
}

// AddTime extends the current phase by d.
func (m *Machine) AddTime(d time.Duration) Outcome {
	out := Outcome{Op: OpAddTime}

	if !m.running || d <= 0 {
		return out
	}

	m.remaining += d
	out.Applied = true

	return out
}

// advance moves to the next phase. A long break follows every fourth work
// phase; other work phases are followed by a short break.
func (m *Machine) advance(ctx context.Context, out *Outcome, natural bool) {
	from := m.phase

	if m.phase == models.Work {
		m.phase = models.ShortBreak
		if m.round%longBreakEvery == 0 {
			m.phase = models.LongBreak
		}
	} else {
		m.phase = models.Work
		m.round++
	}

	m.remaining = m.preset.Duration(m.phase)

	out.Transition = &Transition{
		From:  from,
		To:    m.phase,
		Round: m.round,
	}

	m.deps.Logger.Debug(
		"phase changed",
		"from", from,
		"to", m.phase,
		"round", m.round,
		"skipped", !natural,
	)

	if m.round > m.preset.Rounds {
		m.complete(ctx, out, from, natural)
		return
	}

	if !m.paused {
		m.active.Phase = m.phase
	}

	m.active.Rounds = m.round

	m.persist(ctx, out)

	if !natural {
		return
	}

	m.notify(out, "Phase Complete", fmt.Sprintf(
		"Your %s phase is complete!",
		strings.ToLower(from.String()),
	))

	m.play(out, m.deps.Sounds.PhaseComplete)
	m.pulse(out)
}

// complete finishes the session after its last round. Rewards and
// announcements are only given when the session ran out naturally.
func (m *Machine) complete(
	ctx context.Context,
	out *Outcome,
	last models.Phase,
	natural bool,
) {
	sess := m.active

	sess.Finish(m.deps.Now(), true)
	sess.Phase = last
	sess.Rounds = m.preset.Rounds

	m.running = false
	m.paused = false
	m.active = nil
	m.phase = models.Work
	m.remaining = m.preset.Work
	out.Completed = true

	m.run(out, EffectPersist, func() error {
		return m.deps.Store.UpdateSession(ctx, sess)
	})

	if natural {
		m.reward(ctx, out)
		m.announceAchievements(ctx, out, sess)

		m.notify(out, "Session Complete!", fmt.Sprintf(
			"You finished %d rounds of %s.",
			m.preset.Rounds,
			m.preset.Name,
		))

		m.play(out, m.deps.Sounds.SessionComplete)
		m.pulse(out)
	}

	m.run(out, EffectFocusMode, func() error {
		return m.deps.FocusMode.Disable(ctx)
	})

	m.deps.Logger.Info(
		"session completed",
		"session_id", sess.ID,
		"duration", sess.Duration,
		"rewarded", natural,
	)
}
