package render

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatDuration renders minutes the way the views show them: "25 min",
// "1 hour", "4 hours", "3.5 hours".
func FormatDuration(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%d min", mins)
	}
	if mins == 60 {
		return "1 hour"
	}
	if mins%60 == 0 {
		return fmt.Sprintf("%d hours", mins/60)
	}
	hours := strconv.FormatFloat(float64(mins)/60, 'f', 1, 64)
	return hours + " hours"
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent renders a whole percentage, e.g. "87%".
func FormatPercent(p int) string {
	return strconv.Itoa(p) + "%"
}

// FormatDecimal renders a float without trailing zeros.
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
