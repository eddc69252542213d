package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formats a decimal as USD currency with 2 decimals and
// thousands separators. Display only; amounts pass through float64.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + usPrinter.Sprint(number.Decimal(amount.Round(2).InexactFloat64(), number.Scale(2)))
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
