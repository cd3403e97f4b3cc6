package timeutil

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)

	cases := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2024, 3, 1, 0, 1, 0, 0, loc),
			b:    time.Date(2024, 3, 1, 23, 59, 0, 0, loc),
			want: 0,
		},
		{
			name: "across midnight",
			a:    time.Date(2024, 3, 1, 23, 59, 0, 0, loc),
			b:    time.Date(2024, 3, 2, 0, 1, 0, 0, loc),
			want: 1,
		},
		{
			name: "across leap day",
			a:    time.Date(2024, 2, 28, 12, 0, 0, 0, loc),
			b:    time.Date(2024, 3, 1, 12, 0, 0, 0, loc),
			want: 2,
		},
		{
			name: "backwards",
			a:    time.Date(2024, 3, 5, 12, 0, 0, 0, loc),
			b:    time.Date(2024, 3, 1, 12, 0, 0, 0, loc),
			want: -4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysBetween(tc.a, tc.b))
		})
	}
}

func TestToKeySortsChronologically(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 5, 0, time.UTC)
	later := base.Add(500 * time.Millisecond)

	if bytes.Compare(ToKey(base), ToKey(later)) >= 0 {
		t.Errorf("expected %s to sort before %s", ToKey(base), ToKey(later))
	}

	zone := time.FixedZone("X", -5*3600)
	assert.Equal(t, ToKey(base), ToKey(base.In(zone)))
}

func TestRoundToStartAndEnd(t *testing.T) {
	ts := time.Date(2024, 3, 1, 15, 4, 5, 6, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), RoundToStart(ts))
	assert.Equal(t, time.Date(2024, 3, 1, 23, 59, 59, 999999999, time.UTC), RoundToEnd(ts))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("2024-03-01", now)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())

	_, err = FromStr("definitely not a date", now)
	assert.ErrorIs(t, err, errParseDate)
}

func TestEndFromStr(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	got, err := EndFromStr("2024-03-01", now)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, RoundToEnd(got), got)
	assert.Equal(t, 1, got.Day())
	assert.True(t, got.After(time.Date(2024, 3, 1, 23, 59, 0, 0, got.Location())))

	got, err = EndFromStr("2024-03-01 14:00", now)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 0, got.Minute())

	_, err = EndFromStr("definitely not a date", now)
	assert.ErrorIs(t, err, errParseDate)
}
