package stats

import (
	"fmt"
	"time"
)

// Achievement is a milestone announced when a session completes.
type Achievement struct {
	Title string
	Body  string
}

const deepWorkThreshold = 25 * time.Minute

var (
	FirstFocus = Achievement{
		Title: "First Focus!",
		Body:  "Congratulations on your first focus session!",
	}

	DeepWork = Achievement{
		Title: "Deep Work!",
		Body:  "You've completed a deep focus session!",
	}

	StreakMaster = Achievement{
		Title: "Streak Master!",
	}
)

const streakMasterDays = 3

// Achievements returns the milestones reached by a session of the given
// duration that just completed, given the summary computed after it was
// recorded.
func Achievements(s Summary, duration time.Duration) []Achievement {
	var earned []Achievement

	if s.Completed == 1 {
		earned = append(earned, FirstFocus)
	}

	if duration > deepWorkThreshold {
		earned = append(earned, DeepWork)
	}

	if s.CurrentStreak >= streakMasterDays {
		a := StreakMaster
		a.Body = fmt.Sprintf(
			"You've been focusing for %d days in a row!",
			s.CurrentStreak,
		)
		earned = append(earned, a)
	}

	return earned
}
