// Package stats aggregates session history into summaries, streaks and
// achievements.
package stats

import (
	"slices"
	"time"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/timeutil"
)

// DefaultTopN is the number of tasks reported when no limit is given.
const DefaultTopN = 5

// TaskCount is a task ranked by how many sessions reference it.
type TaskCount struct {
	TaskID   string        `json:"task_id"`
	Title    string        `json:"title"`
	Sessions int           `json:"sessions"`
	Focus    time.Duration `json:"focus"`
}

// Summary is the statistics view over a session history.
type Summary struct {
	TopTasks      []TaskCount      `json:"top_tasks"`
	Weekdays      [7]time.Duration `json:"weekdays"`
	Total         int              `json:"total"`
	Completed     int              `json:"completed"`
	FocusTime     time.Duration    `json:"focus_time"`
	AverageFocus  time.Duration    `json:"average_focus"`
	CurrentStreak int              `json:"current_streak"`
	LongestStreak int              `json:"longest_streak"`
}

// Compute recomputes the summary from the full history. now anchors the
// current streak; topN <= 0 selects DefaultTopN.
func Compute(
	sessions []*models.Session,
	tasks []*models.Task,
	now time.Time,
	topN int,
) Summary {
	var s Summary

	s.Total = len(sessions)

	for _, sess := range sessions {
		if !sess.Completed {
			continue
		}

		s.Completed++
		s.FocusTime += sess.Duration
		s.Weekdays[sess.StartedAt.In(now.Location()).Weekday()] += sess.Duration
	}

	if s.Completed > 0 {
		s.AverageFocus = s.FocusTime / time.Duration(s.Completed)
	}

	days := completedDays(sessions, now.Location())

	s.CurrentStreak = currentStreak(days, now)
	s.LongestStreak = longestStreak(days)
	s.TopTasks = topTasks(sessions, tasks, topN)

	return s
}

// completedDays returns the distinct calendar days, in loc, that contain
// at least one completed session, sorted ascending.
func completedDays(sessions []*models.Session, loc *time.Location) []time.Time {
	seen := make(map[time.Time]bool)

	var days []time.Time

	for _, sess := range sessions {
		if !sess.Completed {
			continue
		}

		day := timeutil.RoundToStart(sess.StartedAt.In(loc))

		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	slices.SortFunc(days, time.Time.Compare)

	return days
}

// currentStreak counts consecutive days ending today. A day without a
// completed session ends the streak, so an idle today yields zero.
func currentStreak(days []time.Time, now time.Time) int {
	streak := 0
	want := 0

	for i := len(days) - 1; i >= 0; i-- {
		diff := timeutil.DaysBetween(days[i], now)

		if diff < want {
			// day in the future relative to now
			continue
		}

		if diff != want {
			break
		}

		streak++
		want++
	}

	return streak
}

// longestStreak finds the longest run of consecutive calendar days anywhere
// in the sorted history.
func longestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1

	for i := 1; i < len(days); i++ {
		if timeutil.DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}

		longest = max(longest, run)
	}

	return longest
}

// topTasks ranks tasks by session count, descending. Ties keep the order
// in which tasks were supplied.
func topTasks(
	sessions []*models.Session,
	tasks []*models.Task,
	topN int,
) []TaskCount {
	if topN <= 0 {
		topN = DefaultTopN
	}

	counts := make(map[string]*TaskCount, len(tasks))
	ranked := make([]TaskCount, 0, len(tasks))

	for _, t := range tasks {
		counts[t.ID] = &TaskCount{TaskID: t.ID, Title: t.Title}
	}

	for _, sess := range sessions {
		if sess.TaskID == nil {
			continue
		}

		if c, ok := counts[*sess.TaskID]; ok {
			c.Sessions++

			if sess.Completed {
				c.Focus += sess.Duration
			}
		}
	}

	for _, t := range tasks {
		ranked = append(ranked, *counts[t.ID])
	}

	slices.SortStableFunc(ranked, func(a, b TaskCount) int {
		return b.Sessions - a.Sessions
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked
}
