// Package format holds presentation helpers shared by the HTTP layer and
// any UI consuming this service.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// InvalidDate is the sentinel returned when a timestamp cannot be parsed.
const InvalidDate = "Invalid Date"

// ShortenAddress abbreviates a hex address for display: first startChars,
// an ellipsis, then the last endChars. Addresses short enough to show in
// full are returned unchanged. Non-positive startChars defaults to 4 and
// non-positive endChars defaults to startChars.
func ShortenAddress(address string, startChars, endChars int) string {
	if startChars <= 0 {
		startChars = 4
	}
	if endChars <= 0 {
		endChars = startChars
	}
	if len(address) <= startChars+endChars {
		return address
	}
	return address[:startChars] + "..." + address[len(address)-endChars:]
}

// CalculateDuration renders the span between two RFC 3339 timestamps as a
// pluralized count of seconds, minutes or hours, switching to the larger
// unit once the smaller one reaches 60.
func CalculateDuration(startISO, endISO string) string {
	start, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return InvalidDate
	}
	end, err := time.Parse(time.RFC3339, endISO)
	if err != nil {
		return InvalidDate
	}

	seconds := int64(end.Sub(start).Seconds())
	if seconds < 60 {
		return pluralize(seconds, "second")
	}
	minutes := seconds / 60
	if minutes < 60 {
		return pluralize(minutes, "minute")
	}
	return pluralize(minutes/60, "hour")
}

func pluralize(count int64, unit string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", count, unit)
}

// FormatCurrency renders a value as a locale-aware currency string.
// Defaults: NGN in the en-NG locale. Rounding is left entirely to the
// formatting library.
func FormatCurrency(value float64, code, locale string) string {
	if code == "" {
		code = "NGN"
	}
	if locale == "" {
		locale = "en-NG"
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.MustParseISO("NGN")
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(value)))
}
