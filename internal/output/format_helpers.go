package output

import (
	"strconv"

	"github.com/rpgo/finplan/internal/domain"
	pkgdecimal "github.com/rpgo/finplan/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal in the given ISO 4217 currency (USD when blank or unknown).
func FormatCurrency(amount decimal.Decimal, code string) string {
	if code == "" {
		code = domain.DefaultCurrency
	}
	return pkgdecimal.NewMoneyFromDecimal(amount).Format(code)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatShare formats a 0..1 fraction as a percentage.
func FormatShare(share decimal.Decimal) string { return FormatPercentage(share.Mul(decimalHundred)) }

// FormatPeriod formats a possibly fractional period with up to 2 decimals.
func FormatPeriod(period decimal.Decimal) string { return period.Round(2).String() }

func intToString(v int) string { return strconv.Itoa(v) }

func decimalToString(d decimal.Decimal) string { return d.StringFixed(2) }
