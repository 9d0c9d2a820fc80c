// Package render turns loan schedules into things a terminal can show:
// grouped money amounts, bordered tables, and line charts.
package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Amount formats a money value with thousands separators and exactly two
// decimals: 1234.5 -> "1,234.56"-style output.
func Amount(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Percent formats a decimal rate as a percentage: 0.05 -> "5.00%".
func Percent(rate float64) string {
	return printer.Sprintf("%v%%", number.Decimal(rate*100,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
