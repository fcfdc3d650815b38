package services

import (
	"testing"
)

func TestBuildWeekReportSheetLayout(t *testing.T) {
	rows := []EmployeeWeekRow{
		{Name: "Alexandru Popescu", Days: map[string]string{"monday": "Meniu 1 | Salata"}},
		{Name: "Ioana Marin", Days: map[string]string{"monday": "Meniu 1"}},
	}
	stats := AggregateWeekRows(rows)
	stats.Week = "2026-09-07"

	sheet := BuildWeekReportSheet(stats, rows)
	if sheet.Name != "Orders 2026.09.07" {
		t.Fatalf("unexpected sheet name %q", sheet.Name)
	}

	if sheet.Rows[0][0] != "Week" || sheet.Rows[0][1] != "2026-09-07" {
		t.Fatalf("unexpected summary row %v", sheet.Rows[0])
	}
	if sheet.Rows[1][1] != "2" {
		t.Fatalf("expected 2 employees in summary, got %v", sheet.Rows[1])
	}

	// Day totals block: header row then counts, Monday first.
	if sheet.Rows[3][1] != "Monday" {
		t.Fatalf("expected Monday header, got %v", sheet.Rows[3])
	}
	if sheet.Rows[4][0] != "Orders per day" || sheet.Rows[4][1] != "2" {
		t.Fatalf("expected monday total 2, got %v", sheet.Rows[4])
	}

	// Item block: Meniu 1 (2) sorts before Salata (1).
	if sheet.Rows[6][0] != "Item" {
		t.Fatalf("expected item header, got %v", sheet.Rows[6])
	}
	if sheet.Rows[7][0] != "Meniu 1" || sheet.Rows[7][1] != "2" {
		t.Fatalf("expected Meniu 1 count 2 first, got %v", sheet.Rows[7])
	}
	if sheet.Rows[8][0] != "Salata" || sheet.Rows[8][1] != "1" {
		t.Fatalf("expected Salata count 1, got %v", sheet.Rows[8])
	}

	// Per-employee block follows.
	employeeHeader := sheet.Rows[10]
	if employeeHeader[0] != "Employee" || employeeHeader[1] != "Monday" {
		t.Fatalf("unexpected employee header %v", employeeHeader)
	}
	if sheet.Rows[11][0] != "Alexandru Popescu" || sheet.Rows[11][1] != "Meniu 1 | Salata" {
		t.Fatalf("unexpected employee row %v", sheet.Rows[11])
	}
}

func TestBuildWeekReportViaService(t *testing.T) {
	week := mustWeek(t, "2026-09-07")
	stats := NewStatsService(
		&stubStatsSelectionReader{},
		&stubStatsImportedReader{},
		&stubStatsUserReader{},
	)
	service := NewExportService(stats)

	sheet, err := service.BuildWeekReport(week)
	if err != nil {
		t.Fatalf("build report failed: %v", err)
	}
	if len(sheet.Rows) == 0 {
		t.Fatal("expected non-empty sheet even with no data")
	}
}
