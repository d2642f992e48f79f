// Package money formats integer minor-unit amounts for display.
// All arithmetic elsewhere stays in cents; division by 100 happens only here.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Make("en-MU"))

var symbols = map[string]string{
	"MUR": "Rs",
}

// Format renders cents as a whole-unit amount with locale grouping and a
// currency prefix, e.g. Format(150000, "MUR") == "Rs 1,500".
func Format(cents int64, currency string) string {
	sym, ok := symbols[currency]
	if !ok {
		sym = currency
	}
	return printer.Sprintf("%s %d", sym, cents/100)
}
