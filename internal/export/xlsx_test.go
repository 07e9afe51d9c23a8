package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleResult(t *testing.T) *domain.ProjectionResult {
	t.Helper()
	result, err := calculation.ProjectWealth(domain.ProjectionInput{
		InitialCapital:       decimal.NewFromInt(100000),
		PeriodicContribution: decimal.NewFromInt(10000),
		AnnualReturnRate:     decimal.NewFromInt(12),
		HorizonPeriods:       240,
	})
	require.NoError(t, err)
	return result
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Sheet", SheetName(""))
	assert.Equal(t, "Summary", SheetName("Summary"))
	long := strings.Repeat("x", 40)
	assert.Equal(t, strings.Repeat("x", 31), SheetName(long))
	assert.Equal(t, strings.Repeat("é", 31), SheetName(strings.Repeat("é", 35)))
}

func TestProjectionRoundTrip(t *testing.T) {
	result := exampleResult(t)

	data, err := Bytes([]Sheet{{Name: "Projection", Table: ProjectionTable(result, time.Time{})}})
	require.NoError(t, err)

	sheets, err := ReadSheets(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	sheet := sheets[0]
	assert.Equal(t, "Projection", sheet.Name)
	assert.Equal(t, "Wealth", sheet.Table.Headers[2])
	require.Len(t, sheet.Table.Rows, 240)

	for i, row := range sheet.Table.Rows {
		wealth, err := decimal.NewFromString(row[2].(string))
		require.NoError(t, err)
		invested, err := decimal.NewFromString(row[3].(string))
		require.NoError(t, err)

		assert.Equal(t, result.Points[i].Wealth.InexactFloat64(), wealth.InexactFloat64(), "period %d", i+1)
		assert.Equal(t, result.Points[i].CashInvested.InexactFloat64(), invested.InexactFloat64(), "period %d", i+1)
	}
	last := sheet.Table.Rows[239]
	assert.Equal(t, "2500000", last[3])
	assert.Equal(t, "20", last[1])
}

func TestSaveSheets_PreservesOrderAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.xlsx")
	sheets := []Sheet{
		{Name: "Summary", Table: Table{Headers: []string{"a"}, Rows: [][]any{{1}}}},
		{Name: "A very long scenario name that keeps going", Table: Table{Headers: []string{"b"}, Rows: [][]any{{"x"}}}},
		{Name: "", Table: Table{Headers: []string{"c"}}},
	}

	got, err := SaveSheets(path, sheets)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	read, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, read, 3)
	assert.Equal(t, "Summary", read[0].Name)
	assert.Equal(t, "A very long scenario name that ", read[1].Name)
	assert.Len(t, read[1].Name, 31)
	assert.Equal(t, "Sheet", read[2].Name)
	assert.Equal(t, []any{"x"}, read[1].Table.Rows[0])
}

func TestSaveSingle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.xlsx")
	_, err := SaveSingle(path, Table{Headers: []string{"Year", "Projected Wealth"}, Rows: [][]any{{1, decimal.RequireFromString("16200.5")}}}, "")
	require.NoError(t, err)

	read, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, read, 1)
	assert.Equal(t, DefaultSingleSheetName, read[0].Name)
	assert.Equal(t, []any{"1", "16200.5"}, read[0].Table.Rows[0])
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []Sheet{{Name: "S", Table: Table{Headers: []string{"h"}}}}))
	assert.NotZero(t, buf.Len())

	sheets, err := ReadSheets(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"h"}, sheets[0].Table.Headers)
}

func TestExportErrors(t *testing.T) {
	_, err := Bytes(nil)
	var exportErr *ExportError
	require.True(t, errors.As(err, &exportErr))
	assert.ErrorIs(t, err, ErrNoSheets)

	long := strings.Repeat("y", 31)
	_, err = Bytes([]Sheet{{Name: long + "1"}, {Name: long + "2"}})
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, long, exportErr.Sheet)
	assert.ErrorIs(t, err, ErrDuplicateSheet)

	_, err = Bytes([]Sheet{
		{Name: "Projection", Table: Table{Headers: []string{"A"}, Rows: [][]any{{1}, {2}}}},
		{Name: "projection", Table: Table{Headers: []string{"B"}, Rows: [][]any{{9}}}},
	})
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, "projection", exportErr.Sheet)
	assert.ErrorIs(t, err, ErrDuplicateSheet)

	_, err = Bytes([]Sheet{{Name: "bad/name"}})
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, "add sheet", exportErr.Op)

	_, err = SaveSheets(filepath.Join(t.TempDir(), "missing", "dir", "plan.xlsx"), []Sheet{{Name: "S"}})
	require.True(t, errors.As(err, &exportErr))

	_, err = ReadFile(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.True(t, errors.As(err, &exportErr))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadSheets(strings.NewReader("not a workbook"))
	require.True(t, errors.As(err, &exportErr))
}
