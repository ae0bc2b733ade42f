package recurrence

import (
	"testing"
	"time"

	"coffee-shop-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func formatAll(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = FormatDate(d)
	}
	return out
}

func TestCandidates_Daily(t *testing.T) {
	t.Run("interval 1 covers every day", func(t *testing.T) {
		got := Candidates(Request{
			Type:         models.RecurrenceDaily,
			Anchor:       date(t, "2024-01-01"),
			Start:        date(t, "2024-01-01"),
			End:          date(t, "2024-01-05"),
			IntervalDays: 1,
		})
		assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}, formatAll(got))
	})

	t.Run("steps from start not anchor", func(t *testing.T) {
		got := Candidates(Request{
			Type:         models.RecurrenceDaily,
			Anchor:       date(t, "2023-12-30"),
			Start:        date(t, "2024-01-02"),
			End:          date(t, "2024-01-10"),
			IntervalDays: 3,
		})
		assert.Equal(t, []string{"2024-01-02", "2024-01-05", "2024-01-08"}, formatAll(got))
	})

	t.Run("never exceeds end and crosses month boundary", func(t *testing.T) {
		start := date(t, "2024-02-20")
		end := date(t, "2024-03-10")
		got := Candidates(Request{Type: models.RecurrenceDaily, Start: start, End: end, IntervalDays: 4})
		require.NotEmpty(t, got)
		assert.Equal(t, start, got[0])
		for i, d := range got {
			assert.False(t, d.After(end))
			if i > 0 {
				assert.Equal(t, 4*24*time.Hour, d.Sub(got[i-1]))
			}
		}
		assert.Equal(t, "2024-03-09", FormatDate(got[len(got)-1]))
	})

	t.Run("non positive interval treated as 1", func(t *testing.T) {
		got := Candidates(Request{Type: models.RecurrenceDaily, Start: date(t, "2024-01-01"), End: date(t, "2024-01-03")})
		assert.Len(t, got, 3)
	})

	t.Run("start after end is empty", func(t *testing.T) {
		got := Candidates(Request{Type: models.RecurrenceDaily, Start: date(t, "2024-01-03"), End: date(t, "2024-01-01"), IntervalDays: 1})
		assert.Empty(t, got)
	})
}

func TestCandidates_Weekly(t *testing.T) {
	t.Run("every monday in january 2024", func(t *testing.T) {
		got := Candidates(Request{
			Type:         models.RecurrenceWeekly,
			Anchor:       date(t, "2024-01-01"),
			Start:        date(t, "2024-01-01"),
			End:          date(t, "2024-01-31"),
			Weekdays:     []time.Weekday{time.Monday},
			WeekInterval: 1,
		})
		assert.Equal(t, []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29"}, formatAll(got))
	})

	t.Run("every second week aligns to anchor parity", func(t *testing.T) {
		got := Candidates(Request{
			Type:         models.RecurrenceWeekly,
			Anchor:       date(t, "2024-01-01"),
			Start:        date(t, "2024-01-01"),
			End:          date(t, "2024-01-31"),
			Weekdays:     []time.Weekday{time.Monday},
			WeekInterval: 2,
		})
		assert.Equal(t, []string{"2024-01-01", "2024-01-15", "2024-01-29"}, formatAll(got))
	})

	t.Run("anchor after range uses absolute distance", func(t *testing.T) {
		got := Candidates(Request{
			Type:         models.RecurrenceWeekly,
			Anchor:       date(t, "2024-02-12"),
			Start:        date(t, "2024-01-01"),
			End:          date(t, "2024-01-31"),
			Weekdays:     []time.Weekday{time.Monday},
			WeekInterval: 2,
		})
		assert.Equal(t, []string{"2024-01-01", "2024-01-15", "2024-01-29"}, formatAll(got))
	})

	t.Run("weekdays and interval hold for every result", func(t *testing.T) {
		anchor := date(t, "2024-03-06")
		days := []time.Weekday{time.Tuesday, time.Saturday}
		got := Candidates(Request{
			Type:         models.RecurrenceWeekly,
			Anchor:       anchor,
			Start:        date(t, "2024-01-01"),
			End:          date(t, "2024-12-31"),
			Weekdays:     days,
			WeekInterval: 3,
		})
		require.NotEmpty(t, got)
		for _, d := range got {
			assert.Contains(t, days, d.Weekday())
			assert.Zero(t, abs(WeeksBetween(anchor, d))%3)
		}
	})

	t.Run("no weekdays is empty", func(t *testing.T) {
		got := Candidates(Request{Type: models.RecurrenceWeekly, Start: date(t, "2024-01-01"), End: date(t, "2024-01-31")})
		assert.Empty(t, got)
	})
}

func TestCandidates_UnknownType(t *testing.T) {
	got := Candidates(Request{Type: "MONTHLY", Start: date(t, "2024-01-01"), End: date(t, "2024-01-31"), IntervalDays: 1})
	assert.Empty(t, got)
}

func TestWeeksBetween(t *testing.T) {
	a := date(t, "2024-01-01")
	assert.Equal(t, 0, WeeksBetween(a, date(t, "2024-01-07")))
	assert.Equal(t, 1, WeeksBetween(a, date(t, "2024-01-08")))
	assert.Equal(t, -1, WeeksBetween(a, date(t, "2023-12-25")))
	assert.Equal(t, 0, WeeksBetween(a, date(t, "2023-12-26")))
}

func TestWeeksBetween_CenturiesApart(t *testing.T) {
	anchor := date(t, "1700-01-04")
	assert.Equal(t, 16905, WeeksBetween(anchor, date(t, "2024-01-01")))
	assert.Equal(t, 16906, WeeksBetween(anchor, date(t, "2024-01-08")))
	assert.Equal(t, -16905, WeeksBetween(date(t, "2024-01-01"), anchor))
	assert.Equal(t, 118335, DaysBetween(anchor, date(t, "2024-01-01")))
}

func TestCandidates_WeeklyWithDistantAnchor(t *testing.T) {
	got := Candidates(Request{
		Type:         models.RecurrenceWeekly,
		Anchor:       date(t, "1700-01-04"),
		Start:        date(t, "2024-01-01"),
		End:          date(t, "2024-01-31"),
		Weekdays:     []time.Weekday{time.Monday},
		WeekInterval: 2,
	})
	assert.Equal(t, []string{"2024-01-08", "2024-01-22"}, formatAll(got))
}

func TestParseWeekday(t *testing.T) {
	for _, tok := range []string{"MON", "mon", "Monday", " MONDAY "} {
		wd, err := ParseWeekday(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, time.Monday, wd)
	}

	_, err := ParseWeekday("funday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestParseWeekdays(t *testing.T) {
	got, err := ParseWeekdays([]string{"FRI", "mon", "MONDAY"})
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, got)
	assert.Equal(t, "FRIDAY", WeekdayName(got[1]))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("2024/02/29")
	assert.Error(t, err)
	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	instant := time.Date(2024, 1, 9, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-10", FormatDate(DateOf(instant, loc)))
	assert.Equal(t, "2024-01-09", FormatDate(DateOf(instant, nil)))
}

func TestParseType(t *testing.T) {
	typ, ok := ParseType(" weekly ")
	assert.True(t, ok)
	assert.Equal(t, models.RecurrenceWeekly, typ)

	_, ok = ParseType("hourly")
	assert.False(t, ok)
}
