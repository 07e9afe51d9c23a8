package output

import (
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/internal/export"
)

// XLSXFormatter renders the comparison as a workbook: Summary, one sheet per scenario, Expenses.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

func (x XLSXFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return export.Bytes(export.ComparisonSheets(results))
}
