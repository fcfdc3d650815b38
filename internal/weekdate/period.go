package weekdate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// UploadPeriod is the weekday span declared by an uploaded filename, e.g.
// "Comenzi 13-17.07.2026.xlsx" or "meniu 13-17 iulie 2026.xlsx". Month and
// year are optional; when absent the week start is inferred from today.
type UploadPeriod struct {
	StartDay int
	EndDay   int
	Month    time.Month
	Year     int
	HasMonth bool
}

var ErrNoPeriodToken = errors.New("filename has no period token")

var numericPeriodPattern = regexp.MustCompile(`(\d{1,2})\s*-\s*(\d{1,2})\.(\d{1,2})\.(\d{4})`)
var dayRangePattern = regexp.MustCompile(`(\d{1,2})\s*-\s*(\d{1,2})`)
var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

// monthTokens maps lowercase month-name prefixes, English and Romanian, to
// calendar months. Longer tokens are matched first so "iunie" wins over "iun".
var monthTokens = []struct {
	Token string
	Month time.Month
}{
	{"ianuarie", time.January}, {"january", time.January},
	{"februarie", time.February}, {"february", time.February},
	{"martie", time.March}, {"march", time.March},
	{"aprilie", time.April}, {"april", time.April},
	{"iunie", time.June}, {"june", time.June},
	{"iulie", time.July}, {"july", time.July},
	{"august", time.August},
	{"septembrie", time.September}, {"september", time.September},
	{"octombrie", time.October}, {"october", time.October},
	{"noiembrie", time.November}, {"november", time.November},
	{"decembrie", time.December}, {"december", time.December},
	{"ian", time.January}, {"jan", time.January},
	{"feb", time.February},
	{"mar", time.March},
	{"apr", time.April},
	{"mai", time.May}, {"may", time.May},
	{"iun", time.June}, {"jun", time.June},
	{"iul", time.July}, {"jul", time.July},
	{"aug", time.August},
	{"sept", time.September}, {"sep", time.September},
	{"oct", time.October},
	{"noi", time.November}, {"nov", time.November},
	{"dec", time.December},
}

// ParseUploadPeriod extracts the day-range token and any month/year hint from
// an uploaded filename. The numeric DD-DD.MM.YYYY form wins over a bare day
// range with a month name nearby.
func ParseUploadPeriod(fileName string) (UploadPeriod, error) {
	name := strings.ToLower(strings.TrimSpace(fileName))

	if matches := numericPeriodPattern.FindStringSubmatch(name); len(matches) == 5 {
		startDay, _ := strconv.Atoi(matches[1])
		endDay, _ := strconv.Atoi(matches[2])
		monthNumber, _ := strconv.Atoi(matches[3])
		year, _ := strconv.Atoi(matches[4])
		if validDayRange(startDay, endDay) && monthNumber >= 1 && monthNumber <= 12 {
			return UploadPeriod{
				StartDay: startDay,
				EndDay:   endDay,
				Month:    time.Month(monthNumber),
				Year:     year,
				HasMonth: true,
			}, nil
		}
	}

	matches := dayRangePattern.FindStringSubmatch(name)
	if len(matches) != 3 {
		return UploadPeriod{}, ErrNoPeriodToken
	}
	startDay, _ := strconv.Atoi(matches[1])
	endDay, _ := strconv.Atoi(matches[2])
	if !validDayRange(startDay, endDay) {
		return UploadPeriod{}, ErrNoPeriodToken
	}

	period := UploadPeriod{StartDay: startDay, EndDay: endDay}
	if month, found := findMonthToken(name); found {
		period.Month = month
		period.HasMonth = true
		if yearToken := yearPattern.FindString(name); yearToken != "" {
			period.Year, _ = strconv.Atoi(yearToken)
		}
	}
	return period, nil
}

// WeekStartFrom resolves the period to a concrete start date. Without a month
// token it guesses the next occurrence of the start day from today, rolling to
// the next month if that day already passed. The guess assumes uploads are for
// an upcoming week; backdated files land on the wrong month on purpose.
func (period UploadPeriod) WeekStartFrom(today time.Time) time.Time {
	today = DateOnly(today)

	if period.HasMonth {
		year := period.Year
		if year == 0 {
			year = today.Year()
		}
		return time.Date(year, period.Month, period.StartDay, 0, 0, 0, 0, today.Location())
	}

	candidate := time.Date(today.Year(), today.Month(), period.StartDay, 0, 0, 0, 0, today.Location())
	if candidate.Before(today) {
		candidate = candidate.AddDate(0, 1, 0)
	}
	return candidate
}

// Overlaps reports whether two periods share any day of the month. Month and
// year are deliberately ignored, so the duplicate guard built on this rejects
// a recurring day range no matter how much time has passed.
func (period UploadPeriod) Overlaps(other UploadPeriod) bool {
	return period.StartDay <= other.EndDay && other.StartDay <= period.EndDay
}

func validDayRange(startDay int, endDay int) bool {
	return startDay >= 1 && startDay <= 31 && endDay >= startDay && endDay <= 31
}

func findMonthToken(name string) (time.Month, bool) {
	for _, entry := range monthTokens {
		if strings.Contains(name, entry.Token) {
			return entry.Month, true
		}
	}
	return 0, false
}
