// Package currency formats rupee amounts for display. All money in the system is
// INR; the exchange client only feeds the optional USD conversion helpers here.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount with the Indian digit grouping and two decimals,
// e.g. 1234567.89 -> "₹12,34,567.89".
func FormatINR(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("₹%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// ConvertUSDToINR applies an INR-per-USD rate to a dollar amount.
func ConvertUSDToINR(usd, rate decimal.Decimal) decimal.Decimal {
	return usd.Mul(rate)
}
