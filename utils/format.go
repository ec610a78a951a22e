package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders an amount the way the front office expects:
// rupee symbol, Indian digit grouping, always two decimals. Negative
// amounts keep their sign, e.g. "₹-5,000.00".
func FormatCurrency(amount float64) string {
	return inrPrinter.Sprintf("₹%v",
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
