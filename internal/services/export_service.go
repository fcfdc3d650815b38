package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"github.com/smoldovan/lunchroom/internal/spreadsheet"
	"github.com/smoldovan/lunchroom/internal/weekdate"
)

var exportDayHeaders = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// ExportService renders a week's combined selections and aggregates into a
// report sheet: a summary block, per-item counts, then one row per employee.
type ExportService struct {
	stats *StatsService
}

func NewExportService(stats *StatsService) *ExportService {
	return &ExportService{stats: stats}
}

func (service *ExportService) BuildWeekReport(week time.Time) (spreadsheet.Sheet, error) {
	rows, err := service.stats.CollectWeekRows(week)
	if err != nil {
		return spreadsheet.Sheet{}, err
	}
	stats := AggregateWeekRows(rows)
	stats.Week = weekdate.FormatWeekKey(week)
	return BuildWeekReportSheet(stats, rows), nil
}

func (service *ExportService) WriteWeekReport(week time.Time) ([]byte, error) {
	sheet, err := service.BuildWeekReport(week)
	if err != nil {
		return nil, err
	}
	return spreadsheet.Write(sheet)
}

// BuildWeekReportSheet lays out the report grid. Day totals and item counts
// stay in separate blocks; their units differ.
func BuildWeekReportSheet(stats WeekStats, rows []EmployeeWeekRow) spreadsheet.Sheet {
	grid := make([][]string, 0, len(rows)+len(stats.ItemCounts)+8)

	grid = append(grid, []string{"Week", stats.Week})
	grid = append(grid, []string{"Employees with selections", fmt.Sprintf("%d", stats.EmployeesWithSelections)})
	grid = append(grid, []string{})

	dayTotalsRow := []string{"Orders per day"}
	headerRow := []string{""}
	for index, day := range models.Weekdays {
		headerRow = append(headerRow, exportDayHeaders[index])
		dayTotalsRow = append(dayTotalsRow, fmt.Sprintf("%d", stats.DayTotals[day]))
	}
	grid = append(grid, headerRow)
	grid = append(grid, dayTotalsRow)
	grid = append(grid, []string{})

	grid = append(grid, []string{"Item", "Count"})
	for _, item := range sortedItems(stats.ItemCounts) {
		grid = append(grid, []string{item, fmt.Sprintf("%d", stats.ItemCounts[item])})
	}
	grid = append(grid, []string{})

	employeeHeader := append([]string{"Employee"}, exportDayHeaders...)
	grid = append(grid, employeeHeader)
	for _, row := range rows {
		line := []string{row.Name}
		for _, day := range models.Weekdays {
			line = append(line, row.Days[day])
		}
		grid = append(grid, line)
	}

	return spreadsheet.Sheet{
		Name: "Orders " + strings.ReplaceAll(stats.Week, "-", "."),
		Rows: grid,
	}
}

// sortedItems orders item labels by descending count, ties alphabetically.
func sortedItems(counts map[string]int) []string {
	items := make([]string, 0, len(counts))
	for item := range counts {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if counts[items[i]] == counts[items[j]] {
			return items[i] < items[j]
		}
		return counts[items[i]] > counts[items[j]]
	})
	return items
}
