// Package weekdate holds the pure date arithmetic shared by the meal
// services: week keys are the Monday of an ISO week, formatted YYYY-MM-DD.
package weekdate

import (
	"errors"
	"fmt"
	"time"
)

const WeekKeyLayout = "2006-01-02"

var ErrNotMonday = errors.New("week key is not a Monday")

// WeekStart returns the Monday of t's week at midnight, dropping the clock.
func WeekStart(t time.Time) time.Time {
	day := DateOnly(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseWeekKey parses a YYYY-MM-DD week identifier and rejects dates that do
// not fall on a Monday.
func ParseWeekKey(value string) (time.Time, error) {
	parsed, err := time.Parse(WeekKeyLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse week key %q: %w", value, err)
	}
	if parsed.Weekday() != time.Monday {
		return time.Time{}, ErrNotMonday
	}
	return parsed, nil
}

func FormatWeekKey(week time.Time) string {
	return week.Format(WeekKeyLayout)
}

// IsFutureWeek reports whether the week has not started yet. A week in the
// future is never locked, whatever its settings say. Week keys are parsed in
// UTC while today carries the office zone, so the comparison is by calendar
// date, never by instant.
func IsFutureWeek(week time.Time, today time.Time) bool {
	if SameDate(week, today) {
		return false
	}
	return FormatWeekKey(today) < FormatWeekKey(week)
}

// SameDate compares two timestamps by calendar date only, ignoring clock and
// location offsets that sqlite round-trips may introduce.
func SameDate(a time.Time, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
