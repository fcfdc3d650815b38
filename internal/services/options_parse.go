package services

import (
	"strings"

	"github.com/smoldovan/lunchroom/internal/models"
)

// categoryKeywords is the closed set of menu category markers recognized in
// uploaded option sheets. Real-world sheets outside this set will not parse;
// the list is kept in sync with the caterer's format, not generalized.
var categoryKeywords = []string{"Meniu", "Special", "Salat", "Extra"}

// ParsedCategory is one menu category accumulated from an options sheet,
// with a newline-joined text blob per weekday.
type ParsedCategory struct {
	Name string
	Days map[string]string
}

// isCategoryHeader reports whether the five day cells mark a category header:
// all pairwise equal, non-empty, and containing a category keyword. A content
// row whose five cells happen to coincide will misfire; that is a known
// limitation of the format, kept as-is.
func isCategoryHeader(dayCells []string) bool {
	if len(dayCells) != len(models.Weekdays) {
		return false
	}

	first := strings.TrimSpace(dayCells[0])
	if first == "" {
		return false
	}
	for _, cell := range dayCells[1:] {
		if strings.TrimSpace(cell) != first {
			return false
		}
	}

	lowered := strings.ToLower(first)
	for _, keyword := range categoryKeywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// ParseOptionCategories walks a sheet grid and groups content rows under the
// most recent category header. Day cells live in columns 1..5; column 0 is a
// row label and ignored. Rows before the first header are dropped.
func ParseOptionCategories(rows [][]string) []ParsedCategory {
	categories := make([]ParsedCategory, 0)
	var current *ParsedCategory

	for _, row := range rows {
		dayCells := weekdayCells(row)

		if isCategoryHeader(dayCells) {
			categories = append(categories, ParsedCategory{
				Name: strings.TrimSpace(dayCells[0]),
				Days: make(map[string]string, len(models.Weekdays)),
			})
			current = &categories[len(categories)-1]
			continue
		}
		if current == nil {
			continue
		}

		for index, day := range models.Weekdays {
			cell := strings.TrimSpace(dayCells[index])
			if cell == "" {
				continue
			}
			if existing := current.Days[day]; existing != "" {
				current.Days[day] = existing + "\n" + cell
			} else {
				current.Days[day] = cell
			}
		}
	}

	return categories
}

// weekdayCells pads or trims a raw row to exactly the five weekday columns
// following the label column.
func weekdayCells(row []string) []string {
	cells := make([]string, len(models.Weekdays))
	for index := range cells {
		column := index + 1
		if column < len(row) {
			cells[index] = row[column]
		}
	}
	return cells
}
