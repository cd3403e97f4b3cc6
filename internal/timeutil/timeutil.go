// Package timeutil provides helpers for calendar arithmetic, database keys
// and human date parsing.
package timeutil

import (
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const keyLayout = "2006-01-02T15:04:05.000000000Z"

// Round rounds a time value in seconds, minutes, or hours to the nearest
// integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RoundToEnd resets the given time to the last instant of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		int(time.Second-time.Nanosecond),
		t.Location(),
	)
}

// DaysBetween returns the number of calendar days from a to b in the
// location of b. DST shifts do not affect the result.
func DaysBetween(a, b time.Time) int {
	a = a.In(b.Location())

	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	return int(ub.Sub(ua).Hours() / 24)
}

// ToKey converts a time value to a fixed-width key that sorts
// chronologically as bytes.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}

// FromStr parses a human readable date such as "2 days ago" or
// "2024-03-01 14:00" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errParseDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}

// EndFromStr parses an upper bound like FromStr. A value that resolves to
// midnight, such as a bare date, covers the whole of that day.
func EndFromStr(s string, now time.Time) (time.Time, error) {
	t, err := FromStr(s, now)
	if err != nil {
		return t, err
	}

	if t.Equal(RoundToStart(t)) {
		return RoundToEnd(t), nil
	}

	return t, nil
}
