// Package session drives a single focus session through its work and break
// phases. The Machine is advanced by its caller one tick per second and is
// not safe for concurrent use.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/ayoisaiah/lumen/internal/logger"
	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/platform"
	"github.com/ayoisaiah/lumen/store"
)

// longBreakEvery is fixed and does not follow the preset's round count.
const longBreakEvery = 4

const defaultIntensity = 0.5

// Tick is the interval between calls to Machine.Tick.
const Tick = time.Second

// Rewarder grows the garden when sessions complete.
type Rewarder interface {
	Reward(ctx context.Context) (*models.GardenPlant, error)
	Thirsty(ctx context.Context) ([]*models.GardenPlant, error)
}

// Sounds names the cues played on lifecycle events. An empty name plays
// nothing.
type Sounds struct {
	Start           string
	PhaseComplete   string
	SessionComplete string
}

// Deps are the collaborators the machine calls on lifecycle events. Nil
// fields are replaced with no-op implementations.
type Deps struct {
	Store     store.SessionStore
	Notifier  platform.Notifier
	Player    platform.Player
	FocusMode platform.FocusMode
	Haptics   platform.Haptics
	Garden    Rewarder
	Logger    *slog.Logger
	Now       func() time.Time
	Sounds    Sounds

	// NotifySound is passed to the notifier with every notification.
	NotifySound string
	// HapticIntensity is in [0, 1]. Zero selects defaultIntensity.
	HapticIntensity float64
}

// State is a read-only snapshot of the machine.
type State struct {
	Task        *models.Task
	Phase       models.Phase
	PresetName  string
	SessionID   string
	StartedAt   time.Time
	Remaining   time.Duration
	PhaseLength time.Duration
	Round       int
	TotalRounds int
	Running     bool
	Paused      bool
}

// Finished reports whether the last run went through every round.
func (s State) Finished() bool {
	return s.Round > s.TotalRounds
}

// Machine is the focus session state machine.
type Machine struct {
	deps      Deps
	preset    *models.Preset
	task      *models.Task
	active    *models.Session
	startedAt time.Time
	phase     models.Phase
	remaining time.Duration
	round     int
	running   bool
	paused    bool
}

// New returns a stopped machine at round 1 of the work phase.
func New(preset *models.Preset, deps Deps) (*Machine, error) {
	if preset == nil {
		return nil, errNoPreset
	}

	if err := preset.Validate(); err != nil {
		return nil, err
	}

	if deps.Store == nil {
		return nil, errNoStore
	}

	if deps.Notifier == nil {
		deps.Notifier = platform.Nop{}
	}

	if deps.Player == nil {
		deps.Player = platform.Nop{}
	}

	if deps.FocusMode == nil {
		deps.FocusMode = platform.Nop{}
	}

	if deps.Haptics == nil {
		deps.Haptics = platform.Nop{}
	}

	if deps.Logger == nil {
		deps.Logger = logger.Discard()
	}

	if deps.Now == nil {
		deps.Now = time.Now
	}

	if deps.HapticIntensity <= 0 {
		deps.HapticIntensity = defaultIntensity
	}

	m := &Machine{
		deps:   deps,
		preset: preset,
	}

	m.reset()

	return m, nil
}

// reset returns to round 1 of the work phase.
func (m *Machine) reset() {
	m.phase = models.Work
	m.round = 1
	m.remaining = m.preset.Work
}

// State returns a snapshot of the machine.
func (m *Machine) State() State {
	s := State{
		Task:        m.task,
		Phase:       m.phase,
		PresetName:  m.preset.Name,
		StartedAt:   m.startedAt,
		Remaining:   m.remaining,
		PhaseLength: m.preset.Duration(m.phase),
		Round:       m.round,
		TotalRounds: m.preset.Rounds,
		Running:     m.running,
		Paused:      m.paused,
	}

	if m.active != nil {
		s.SessionID = m.active.ID
	}

	return s
}

// Preset returns the active preset.
func (m *Machine) Preset() *models.Preset {
	return m.preset
}

// SetPreset switches to p and resets to round 1. Only allowed while
// stopped.
func (m *Machine) SetPreset(p *models.Preset) error {
	if m.running {
		return errRunning.Fmt("change the preset")
	}

	if p == nil {
		return errNoPreset
	}

	if err := p.Validate(); err != nil {
		return err
	}

	m.preset = p
	m.reset()

	return nil
}

// SelectTask attaches t, or nothing when t is nil, to subsequent runs. Only
// allowed while stopped.
func (m *Machine) SelectTask(t *models.Task) error {
	if m.running {
		return errRunning.Fmt("change the task")
	}

	m.task = t
	m.reset()

	return nil
}
