package services

import (
	"sort"
	"strings"
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"github.com/smoldovan/lunchroom/internal/weekdate"
)

type StatsSelectionReader interface {
	ListByWeek(week time.Time) ([]models.MealSelection, error)
}

type StatsImportedReader interface {
	ListByWeek(week time.Time) ([]models.ImportedMeal, error)
}

type StatsUserReader interface {
	ListAll() ([]models.User, error)
}

// EmployeeWeekRow is one employee's five day cells for a week, from either
// selection source. Name is the display form used in reports.
type EmployeeWeekRow struct {
	Name string
	Days map[string]string
}

// WeekStats carries the two aggregates side by side. Day totals count
// employees who ordered anything that day; item counts count individual
// labels. The units differ on purpose and must not be merged.
type WeekStats struct {
	Week                    string         `json:"week"`
	DayTotals               map[string]int `json:"dayTotals"`
	ItemCounts              map[string]int `json:"itemCounts"`
	EmployeesWithSelections int            `json:"employeesWithSelections"`
}

type StatsService struct {
	selections StatsSelectionReader
	imported   StatsImportedReader
	users      StatsUserReader
}

func NewStatsService(selections StatsSelectionReader, imported StatsImportedReader, users StatsUserReader) *StatsService {
	return &StatsService{
		selections: selections,
		imported:   imported,
		users:      users,
	}
}

// CollectWeekRows merges registered selections and imported rows into one
// name-keyed list for aggregation and export.
func (service *StatsService) CollectWeekRows(week time.Time) ([]EmployeeWeekRow, error) {
	selections, err := service.selections.ListByWeek(week)
	if err != nil {
		return nil, err
	}
	imported, err := service.imported.ListByWeek(week)
	if err != nil {
		return nil, err
	}
	users, err := service.users.ListAll()
	if err != nil {
		return nil, err
	}

	namesByUserID := make(map[uint]string, len(users))
	for _, user := range users {
		name := strings.TrimSpace(user.EmployeeName)
		if name == "" {
			name = NameFromEmail(user.Email)
		}
		namesByUserID[user.ID] = name
	}

	rows := make([]EmployeeWeekRow, 0, len(selections)+len(imported))
	for _, selection := range selections {
		rows = append(rows, EmployeeWeekRow{
			Name: namesByUserID[selection.UserID],
			Days: dayMap(selection.Day),
		})
	}
	for _, importedMeal := range imported {
		rows = append(rows, EmployeeWeekRow{
			Name: importedMeal.EmployeeName,
			Days: dayMap(importedMeal.Day),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (service *StatsService) BuildWeekStats(week time.Time) (WeekStats, error) {
	rows, err := service.CollectWeekRows(week)
	if err != nil {
		return WeekStats{}, err
	}
	stats := AggregateWeekRows(rows)
	stats.Week = weekdate.FormatWeekKey(week)
	return stats, nil
}

// AggregateWeekRows computes both aggregates in one pass. An employee counts
// once per day when the cell is non-empty after trimming, however many items
// it lists; every individual item label bumps its own counter. Employee
// coverage is a set union over names so someone present in both sources is
// counted once.
func AggregateWeekRows(rows []EmployeeWeekRow) WeekStats {
	stats := WeekStats{
		DayTotals:  make(map[string]int, len(models.Weekdays)),
		ItemCounts: make(map[string]int),
	}
	for _, day := range models.Weekdays {
		stats.DayTotals[day] = 0
	}

	employees := make(map[string]struct{})
	for _, row := range rows {
		ordered := false
		for _, day := range models.Weekdays {
			cell := strings.TrimSpace(row.Days[day])
			if cell == "" {
				continue
			}
			ordered = true
			stats.DayTotals[day]++
			for _, item := range SplitItems(cell) {
				stats.ItemCounts[item]++
			}
		}
		if ordered {
			employees[NormalizeName(row.Name)] = struct{}{}
		}
	}

	stats.EmployeesWithSelections = len(employees)
	return stats
}

// SplitItems breaks a day cell into its |-delimited item labels, trimming
// whitespace and dropping empties.
func SplitItems(cell string) []string {
	parts := strings.Split(cell, "|")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func dayMap(lookup func(day string) string) map[string]string {
	days := make(map[string]string, len(models.Weekdays))
	for _, day := range models.Weekdays {
		days[day] = lookup(day)
	}
	return days
}
