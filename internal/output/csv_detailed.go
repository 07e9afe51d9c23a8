package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
)

// CSVDetailedExporter writes one row per scenario period.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Period", "Year", "Date", "Wealth", "CashInvested", "Income", "Expense", "LoanPayment", "LoanBalance", "NetCashFlow", "Buckets"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		ppy := sc.Result.PeriodsPerYear
		for _, p := range sc.Result.Points {
			date := ""
			if !results.StartDate.IsZero() {
				date = dateutil.PeriodEndDate(results.StartDate, p.Period, ppy).Format("2006-01-02")
			}
			row := []string{
				sc.Name,
				intToString(p.Period),
				intToString(dateutil.YearOfPeriod(p.Period, ppy)),
				date,
				decimalToString(p.Wealth),
				decimalToString(p.CashInvested),
				decimalToString(p.Income),
				decimalToString(p.Expense),
				decimalToString(p.LoanPayment),
				decimalToString(p.LoanBalance),
				decimalToString(p.NetCashFlow),
				bucketsToString(p.Buckets),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func bucketsToString(buckets []domain.BucketBalance) string {
	var b bytes.Buffer
	for i, bal := range buckets {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(bal.Name)
		b.WriteByte('=')
		b.WriteString(decimalToString(bal.Balance))
	}
	return b.String()
}
