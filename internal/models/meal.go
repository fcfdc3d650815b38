package models

import "time"

const (
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
)

// Weekdays lists the orderable days of a work week, Monday first.
var Weekdays = []string{DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday}

func IsWeekday(day string) bool {
	for _, known := range Weekdays {
		if day == known {
			return true
		}
	}
	return false
}

// MealOption holds one menu category for a week, one text blob per weekday.
type MealOption struct {
	ID        uint      `gorm:"primaryKey"`
	Week      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_option_week_category"`
	Category  string    `gorm:"not null;uniqueIndex:uidx_option_week_category"`
	Monday    string
	Tuesday   string
	Wednesday string
	Thursday  string
	Friday    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (option *MealOption) Day(day string) string {
	return dayValue(day, option.Monday, option.Tuesday, option.Wednesday, option.Thursday, option.Friday)
}

func (option *MealOption) SetDay(day string, value string) {
	setDayValue(day, value, &option.Monday, &option.Tuesday, &option.Wednesday, &option.Thursday, &option.Friday)
}

// MealSelection is one employee's choices for a week, one free-text cell per
// weekday. IsLocked is the user-initiated self-lock, independent of the
// admin week lock in WeekSettings.
type MealSelection struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_selection_user_week"`
	Week      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_selection_user_week"`
	Monday    string
	Tuesday   string
	Wednesday string
	Thursday  string
	Friday    string
	IsLocked  bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (selection *MealSelection) Day(day string) string {
	return dayValue(day, selection.Monday, selection.Tuesday, selection.Wednesday, selection.Thursday, selection.Friday)
}

func (selection *MealSelection) SetDay(day string, value string) {
	setDayValue(day, value, &selection.Monday, &selection.Tuesday, &selection.Wednesday, &selection.Thursday, &selection.Friday)
}

// ImportedMeal mirrors MealSelection for spreadsheet rows whose employee name
// matched no account; it is keyed by the raw name instead of a user id.
type ImportedMeal struct {
	ID           uint      `gorm:"primaryKey"`
	EmployeeName string    `gorm:"not null;uniqueIndex:uidx_imported_name_week"`
	Week         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_imported_name_week"`
	Monday       string
	Tuesday      string
	Wednesday    string
	Thursday     string
	Friday       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (imported *ImportedMeal) Day(day string) string {
	return dayValue(day, imported.Monday, imported.Tuesday, imported.Wednesday, imported.Thursday, imported.Friday)
}

func (imported *ImportedMeal) SetDay(day string, value string) {
	setDayValue(day, value, &imported.Monday, &imported.Tuesday, &imported.Wednesday, &imported.Thursday, &imported.Friday)
}

func dayValue(day string, monday string, tuesday string, wednesday string, thursday string, friday string) string {
	switch day {
	case DayMonday:
		return monday
	case DayTuesday:
		return tuesday
	case DayWednesday:
		return wednesday
	case DayThursday:
		return thursday
	case DayFriday:
		return friday
	default:
		return ""
	}
}

func setDayValue(day string, value string, monday *string, tuesday *string, wednesday *string, thursday *string, friday *string) {
	switch day {
	case DayMonday:
		*monday = value
	case DayTuesday:
		*tuesday = value
	case DayWednesday:
		*wednesday = value
	case DayThursday:
		*thursday = value
	case DayFriday:
		*friday = value
	}
}
