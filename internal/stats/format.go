package stats

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Dollars formats v as "$1,234.56".
func Dollars(v float64) string {
	return printer.Sprintf("$%.2f", v)
}
