package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/finplan/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Periods", "PeriodsPerYear", "InitialWealth", "TotalInvested", "FinalWealth", "Profit", "ProfitPercent", "LoanPayment"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		if sc.Result == nil {
			continue
		}
		r := sc.Result
		row := []string{
			sc.Name,
			intToString(len(r.Points)),
			intToString(r.PeriodsPerYear),
			decimalToString(r.InitialWealth),
			decimalToString(r.TotalInvested),
			decimalToString(r.FinalWealth),
			decimalToString(r.Profit),
			decimalToString(r.ProfitPercent()),
			decimalToString(r.LoanPayment),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
