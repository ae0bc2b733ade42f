// Package recurrence expands recurrence rules into candidate calendar dates.
//
// All dates handled here are civil dates: time.Time values at 00:00 UTC. Use DateOf
// to convert an instant into the civil date of a given time zone.
package recurrence

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"coffee-shop-backend/internal/database/models"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ErrInvalidWeekday indicates a weekday token could not be recognized.
var ErrInvalidWeekday = errors.New("recurrence: invalid weekday")

// Request describes one expansion.
type Request struct {
	Type         models.RecurrenceType
	Anchor       time.Time
	Start        time.Time
	End          time.Time
	IntervalDays int
	Weekdays     []time.Weekday
	WeekInterval int
}

// Candidates returns the ordered dates in [Start, End] selected by the request.
// DAILY steps from Start (never from Anchor). WEEKLY keeps days whose weekday is requested
// and whose distance in weeks from Anchor is a multiple of WeekInterval.
// Unknown types yield no candidates.
func Candidates(req Request) []time.Time {
	start := civil(req.Start)
	end := civil(req.End)
	if start.After(end) {
		return nil
	}

	switch req.Type {
	case models.RecurrenceDaily:
		return daily(start, end, req.IntervalDays)
	case models.RecurrenceWeekly:
		return weekly(civil(req.Anchor), start, end, req.Weekdays, req.WeekInterval)
	default:
		return nil
	}
}

func daily(start, end time.Time, interval int) []time.Time {
	if interval < 1 {
		interval = 1
	}
	dates := make([]time.Time, 0, DaysBetween(start, end)/interval+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, interval) {
		dates = append(dates, d)
	}
	return dates
}

func weekly(anchor, start, end time.Time, weekdays []time.Weekday, interval int) []time.Time {
	if interval < 1 {
		interval = 1
	}
	set := make(map[time.Weekday]struct{}, len(weekdays))
	for _, wd := range weekdays {
		set[wd] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if _, ok := set[d.Weekday()]; !ok {
			continue
		}
		if abs(WeeksBetween(anchor, d))%interval != 0 {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// WeeksBetween returns the whole weeks from a to b, truncated toward zero.
// The result is negative when b is before a.
func WeeksBetween(a, b time.Time) int {
	return DaysBetween(a, b) / 7
}

// DaysBetween returns the calendar days from a to b, negative when b is before a.
// It works on Unix seconds since time.Duration cannot span more than ~292 years.
func DaysBetween(a, b time.Time) int {
	return int((civil(b).Unix() - civil(a).Unix()) / secondsPerDay)
}

// ParseDate parses a YYYY-MM-DD string into a civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders a civil date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOf returns the civil date of instant t as observed in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var weekdayTokens = map[string]time.Weekday{
	"SUN": time.Sunday, "SUNDAY": time.Sunday,
	"MON": time.Monday, "MONDAY": time.Monday,
	"TUE": time.Tuesday, "TUESDAY": time.Tuesday,
	"WED": time.Wednesday, "WEDNESDAY": time.Wednesday,
	"THU": time.Thursday, "THURSDAY": time.Thursday,
	"FRI": time.Friday, "FRIDAY": time.Friday,
	"SAT": time.Saturday, "SATURDAY": time.Saturday,
}

// ParseWeekday accepts short (MON) and long (MONDAY) names in any case.
func ParseWeekday(token string) (time.Weekday, error) {
	wd, ok := weekdayTokens[strings.ToUpper(strings.TrimSpace(token))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, token)
	}
	return wd, nil
}

// ParseWeekdays parses and de-duplicates a list of weekday tokens, returned in week order.
func ParseWeekdays(tokens []string) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]struct{}, len(tokens))
	out := make([]time.Weekday, 0, len(tokens))
	for _, tok := range tokens {
		wd, err := ParseWeekday(tok)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[wd]; dup {
			continue
		}
		seen[wd] = struct{}{}
		out = append(out, wd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// WeekdayName returns the stored form of a weekday (MONDAY..SUNDAY).
func WeekdayName(wd time.Weekday) string {
	return strings.ToUpper(wd.String())
}

// ParseType normalizes a recurrence type; ok is false for unknown types.
func ParseType(s string) (models.RecurrenceType, bool) {
	t := models.ParseRecurrenceType(s)
	return t, t.IsValid()
}

const secondsPerDay = 24 * 60 * 60

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
