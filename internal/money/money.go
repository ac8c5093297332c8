// Package money formats whole rouble amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Russian)

// Format renders amount with Russian digit grouping and the rouble sign, e.g. "210 000 ₽".
func Format(amount int64) string {
	return printer.Sprintf("%d ₽", amount)
}
