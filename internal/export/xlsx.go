// Package export writes tables to .xlsx workbooks, on disk or in memory, and reads them back.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	// MaxSheetNameLength is the spreadsheet limit on sheet names, in characters.
	MaxSheetNameLength = 31
	// DefaultSheetName replaces blank sheet names.
	DefaultSheetName = "Sheet"
	// DefaultSingleSheetName is used by SaveSingle when no name is given.
	DefaultSingleSheetName = "Sheet1"

	firstSheet = "Sheet1" // created by excelize.NewFile
)

var (
	ErrNoSheets       = errors.New("no sheets to write")
	ErrDuplicateSheet = errors.New("duplicate sheet name")
)

// ExportError reports a failed spreadsheet operation. It is never retried.
type ExportError struct {
	Op    string
	Sheet string
	Err   error
}

func (e *ExportError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("export %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("export %s (sheet %q): %v", e.Op, e.Sheet, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// Table is a header row plus data rows. Cells may be strings, numbers, bools or decimals.
type Table struct {
	Headers []string
	Rows    [][]any
}

// Sheet is a named table.
type Sheet struct {
	Name  string
	Table Table
}

// SheetName applies the naming rules: blank becomes DefaultSheetName and long names
// are cut to MaxSheetNameLength characters.
func SheetName(name string) string {
	if name == "" {
		return DefaultSheetName
	}
	if utf8.RuneCountInString(name) <= MaxSheetNameLength {
		return name
	}
	return string([]rune(name)[:MaxSheetNameLength])
}

// SaveSingle writes one table to path and returns the path.
func SaveSingle(path string, table Table, sheetName string) (string, error) {
	if sheetName == "" {
		sheetName = DefaultSingleSheetName
	}
	return SaveSheets(path, []Sheet{{Name: sheetName, Table: table}})
}

// SaveSheets writes each table to its own sheet, in order, and returns the path.
func SaveSheets(path string, sheets []Sheet) (string, error) {
	f, err := build(sheets)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return "", &ExportError{Op: "save " + path, Err: err}
	}
	return path, nil
}

// Write streams the workbook to w.
func Write(w io.Writer, sheets []Sheet) error {
	f, err := build(sheets)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return &ExportError{Op: "write", Err: err}
	}
	return nil
}

// Bytes returns the workbook as an in-memory buffer without touching disk.
func Bytes(sheets []Sheet) ([]byte, error) {
	f, err := build(sheets)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &ExportError{Op: "write", Err: err}
	}
	return buf.Bytes(), nil
}

// ReadFile reads every sheet of the workbook at path.
func ReadFile(path string) ([]Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ExportError{Op: "open " + path, Err: err}
	}
	defer file.Close()
	return ReadSheets(file)
}

// ReadSheets reads every sheet in workbook order. The first row becomes the headers;
// cells come back as their raw (unformatted) string values.
func ReadSheets(r io.Reader) ([]Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ExportError{Op: "open", Err: err}
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, &ExportError{Op: "read", Sheet: name, Err: err}
		}
		sheet := Sheet{Name: name}
		for i, row := range rows {
			if i == 0 {
				sheet.Table.Headers = row
				continue
			}
			cells := make([]any, len(row))
			for j, v := range row {
				cells[j] = v
			}
			sheet.Table.Rows = append(sheet.Table.Rows, cells)
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func build(sheets []Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, &ExportError{Op: "build", Err: ErrNoSheets}
	}

	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, &ExportError{Op: "style", Err: err}
	}

	// sheet names are unique case-insensitively
	seen := make(map[string]bool, len(sheets))
	for i, s := range sheets {
		name := SheetName(s.Name)
		key := strings.ToLower(name)
		if seen[key] {
			f.Close()
			return nil, &ExportError{Op: "add sheet", Sheet: name, Err: ErrDuplicateSheet}
		}
		seen[key] = true

		if i == 0 {
			err = f.SetSheetName(firstSheet, name)
		} else {
			_, err = f.NewSheet(name)
		}
		if err != nil {
			f.Close()
			return nil, &ExportError{Op: "add sheet", Sheet: name, Err: err}
		}

		if err := writeTable(f, name, s.Table, headerStyle); err != nil {
			f.Close()
			return nil, &ExportError{Op: "write table", Sheet: name, Err: err}
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeTable(f *excelize.File, sheet string, table Table, headerStyle int) error {
	if len(table.Headers) > 0 {
		headers := make([]any, len(table.Headers))
		for i, h := range table.Headers {
			headers[i] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
			return err
		}
		if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
			return err
		}
		lastCol, err := excelize.ColumnNumberToName(len(table.Headers))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "A", lastCol, 16); err != nil {
			return err
		}
	}

	for r, row := range table.Rows {
		cells := make([]any, len(row))
		for c, v := range row {
			cells[c] = cellValue(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}

// cellValue stores decimals as numbers so the sheet stays computable.
func cellValue(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case *decimal.Decimal:
		if x == nil {
			return nil
		}
		return x.InexactFloat64()
	default:
		return v
	}
}
