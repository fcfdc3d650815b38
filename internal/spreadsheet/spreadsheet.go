// Package spreadsheet isolates the xlsx file format behind a rows-in,
// rows-out contract so the import and export services never touch cell
// coordinates or sheet internals.
package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is the writable model: a name and a dense 2-D grid of cell text.
type Sheet struct {
	Name string
	Rows [][]string
}

// Parse reads the first sheet of an xlsx file into a 2-D grid of cell text.
func Parse(fileBytes []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheetName, err)
	}
	return rows, nil
}

// Write renders a sheet model to xlsx bytes.
func Write(sheet Sheet) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := file.SetSheetName("Sheet1", name); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	for rowIndex, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, rowIndex+1)
		if err != nil {
			return nil, fmt.Errorf("row %d coordinates: %w", rowIndex+1, err)
		}
		cells := make([]any, len(row))
		for columnIndex, value := range row {
			cells[columnIndex] = value
		}
		if err := file.SetSheetRow(name, cell, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", rowIndex+1, err)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize spreadsheet: %w", err)
	}
	return buffer.Bytes(), nil
}
