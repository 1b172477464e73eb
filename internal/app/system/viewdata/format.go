package viewdata

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Hours renders an hour figure rounded to the nearest whole hour with
// thousands separators, e.g. 2235.4 -> "2,235".
func Hours(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// OneDecimal renders v with one decimal place and thousands separators.
func OneDecimal(v float64) string {
	return printer.Sprintf("%.1f", v)
}

// Percent renders a percentage rounded to a whole number, e.g. "33%".
func Percent(v float64) string {
	return printer.Sprintf("%d%%", int64(math.Round(v)))
}

// OptionalHours renders a record's hours, or an em dash when absent.
func OptionalHours(h *float64) string {
	if h == nil {
		return "—"
	}
	return Hours(*h)
}
