package weekdate

import (
	"testing"
	"time"
)

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(WeekKeyLayout, value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return parsed
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		day  string
		want string
	}{
		{name: "monday stays", day: "2026-08-24", want: "2026-08-24"},
		{name: "wednesday rolls back", day: "2026-08-26", want: "2026-08-24"},
		{name: "sunday rolls back six days", day: "2026-08-30", want: "2026-08-24"},
		{name: "saturday across month boundary", day: "2026-08-01", want: "2026-07-27"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := WeekStart(mustDay(t, testCase.day))
			if FormatWeekKey(got) != testCase.want {
				t.Fatalf("expected week start %s, got %s", testCase.want, FormatWeekKey(got))
			}
		})
	}
}

func TestWeekStartDropsClock(t *testing.T) {
	stamp := time.Date(2026, 8, 26, 17, 45, 12, 0, time.UTC)
	got := WeekStart(stamp)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Fatalf("expected midnight, got %v", got)
	}
}

func TestParseWeekKeyRejectsNonMonday(t *testing.T) {
	if _, err := ParseWeekKey("2026-08-26"); err != ErrNotMonday {
		t.Fatalf("expected ErrNotMonday, got %v", err)
	}
	if _, err := ParseWeekKey("not-a-date"); err == nil {
		t.Fatal("expected parse error for malformed key")
	}
	week, err := ParseWeekKey("2026-08-24")
	if err != nil {
		t.Fatalf("expected Monday key to parse, got %v", err)
	}
	if week.Weekday() != time.Monday {
		t.Fatalf("expected Monday, got %v", week.Weekday())
	}
}

func TestIsFutureWeek(t *testing.T) {
	week := mustDay(t, "2026-08-24")

	tests := []struct {
		name  string
		today string
		want  bool
	}{
		{name: "day before week start", today: "2026-08-23", want: true},
		{name: "exactly week start", today: "2026-08-24", want: false},
		{name: "mid week", today: "2026-08-26", want: false},
		{name: "long after", today: "2026-09-10", want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := IsFutureWeek(week, mustDay(t, testCase.today)); got != testCase.want {
				t.Fatalf("expected IsFutureWeek=%v for today %s", testCase.want, testCase.today)
			}
		})
	}
}

// Week keys always carry UTC, but today comes in the office zone. The check
// must compare calendar dates, not instants, or east-of-UTC offices see the
// week-start Monday as future for the whole day.
func TestIsFutureWeekIgnoresLocationOffsets(t *testing.T) {
	week := mustDay(t, "2026-09-07")

	tests := []struct {
		name  string
		today time.Time
		want  bool
	}{
		{name: "east office midnight on week start", today: time.Date(2026, 9, 7, 0, 0, 0, 0, time.FixedZone("EET", 2*60*60)), want: false},
		{name: "east office evening before week start", today: time.Date(2026, 9, 6, 23, 30, 0, 0, time.FixedZone("EET", 2*60*60)), want: true},
		{name: "west office midnight on week start", today: time.Date(2026, 9, 7, 0, 0, 0, 0, time.FixedZone("EST", -5*60*60)), want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := IsFutureWeek(week, testCase.today); got != testCase.want {
				t.Fatalf("expected IsFutureWeek=%v for today %s", testCase.want, testCase.today)
			}
		})
	}
}
