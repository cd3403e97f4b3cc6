package platform

import (
	"time"

	"github.com/gen2brain/beeep"
)

// TerminalHaptics approximates haptic feedback with a short system beep.
type TerminalHaptics struct {
	// Threshold is the minimum intensity that produces a beep.
	Threshold float64

	beep func(freq float64, duration int) error
}

// NewTerminalHaptics returns haptics that beep for pulses at or above
// threshold.
func NewTerminalHaptics(threshold float64) *TerminalHaptics {
	return &TerminalHaptics{
		Threshold: threshold,
		beep:      beeep.Beep,
	}
}

const maxPulse = 200 * time.Millisecond

// Pulse beeps for a length proportional to intensity.
func (h *TerminalHaptics) Pulse(intensity float64) error {
	intensity = min(max(intensity, 0), 1)

	if intensity == 0 || intensity < h.Threshold {
		return nil
	}

	d := time.Duration(float64(maxPulse) * intensity)

	return h.beep(beeep.DefaultFreq, int(d.Milliseconds()))
}
