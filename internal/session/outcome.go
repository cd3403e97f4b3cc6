package session

import (
	"fmt"

	"github.com/ayoisaiah/lumen/internal/models"
)

// Op names a machine operation.
type Op string

const (
	OpStart   Op = "start"
	OpPause   Op = "pause"
	OpResume  Op = "resume"
	OpStop    Op = "stop"
	OpSkip    Op = "skip"
	OpTick    Op = "tick"
	OpAddTime Op = "add_time"
)

// Effect names a side effect triggered by an operation.
type Effect string

const (
	EffectPersist   Effect = "persist"
	EffectNotify    Effect = "notify"
	EffectSound     Effect = "sound"
	EffectFocusMode Effect = "focus_mode"
	EffectHaptic    Effect = "haptic"
	EffectGarden    Effect = "garden"
	EffectStats     Effect = "stats"
)

// EffectError records a side effect that failed. The state change that
// triggered it is kept.
type EffectError struct {
	Effect Effect
	Err    error
}

func (e EffectError) Error() string {
	return fmt.Sprintf("%s: %v", e.Effect, e.Err)
}

func (e EffectError) Unwrap() error {
	return e.Err
}

// Transition describes a phase change.
type Transition struct {
	From  models.Phase
	To    models.Phase
	Round int
}

// Outcome reports what an operation did. An operation that is not valid in
// the current state is ignored and reported with Applied set to false.
type Outcome struct {
	Transition *Transition
	Op         Op
	Failures   []EffectError
	Applied    bool
	Completed  bool
}

// Degraded reports whether any side effect failed.
func (o Outcome) Degraded() bool {
	return len(o.Failures) > 0
}
