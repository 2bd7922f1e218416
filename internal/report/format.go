package report

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders whole dollars with grouped thousands, e.g. $12,345.
func FormatCurrency(v float64) string {
	if v < 0 {
		return "-$" + printer.Sprintf("%.0f", -v)
	}
	return "$" + printer.Sprintf("%.0f", v)
}

// FormatUplift renders a signed percentage with one decimal, e.g. +12.3%.
func FormatUplift(v float64) string {
	if v >= 0 {
		return "+" + printer.Sprintf("%.1f%%", v)
	}
	return printer.Sprintf("%.1f%%", v)
}

// FormatRate renders a plain percentage parameter, e.g. 15.0%.
func FormatRate(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}

// ArchiveName derives the bundle file name from the brand: "RapidTest.ai" becomes
// "RapidTest_Forecast_Deck.zip".
func ArchiveName(brand string) string {
	if i := strings.IndexByte(brand, '.'); i > 0 {
		brand = brand[:i]
	}
	var b strings.Builder
	for _, r := range brand {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		name = "SaaS"
	}
	return name + "_Forecast_Deck.zip"
}
