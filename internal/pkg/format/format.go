// Package format renders dates, money, distances and relative times for display.
//
// Locales are BCP 47 tags ("en-US", "de-DE"); unparsable locales fall back to
// DefaultLocale. None of the functions fail: malformed input yields a neutral string.
package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when a locale cannot be parsed.
var DefaultLocale = language.AmericanEnglish

const metersPerKilometer = 1000

var currencySymbols = map[currency.Unit]string{
	currency.MustParseISO("USD"): "$",
	currency.MustParseISO("EUR"): "€",
	currency.MustParseISO("GBP"): "£",
	currency.MustParseISO("JPY"): "¥",
	currency.MustParseISO("INR"): "₹",
	currency.MustParseISO("RUB"): "₽",
	currency.MustParseISO("KZT"): "₸",
}

// ParseLocale parses a BCP 47 tag, falling back to DefaultLocale.
func ParseLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		return DefaultLocale
	}
	return tag
}

// Date formats the calendar date of t for locale.
//
//	Date(t, "en-US") // "October 16, 2026"
//	Date(t, "en-GB") // "16 October 2026"
//	Date(t, "de-DE") // "16.10.2026"
func Date(t time.Time, locale string) string {
	return t.Format(dateLayout(ParseLocale(locale)))
}

func dateLayout(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		if region, _ := tag.Region(); region.String() == "US" {
			return "January 2, 2006"
		}
		return "2 January 2006"
	case "de", "ru", "kk", "tr", "pl", "uk", "fi", "nb", "da", "cs":
		return "02.01.2006"
	case "fr", "es", "it", "pt", "el", "vi":
		return "02/01/2006"
	case "ja", "zh", "ko", "hu":
		return "2006/01/02"
	default:
		return "2006-01-02"
	}
}

// Currency formats amount in the ISO 4217 currency code with the digit grouping and
// decimal separator of locale and the currency's standard precision.
// English locales put the symbol first ("$1,234.50"), others after ("1.234,50 €").
// An unknown currency code yields "".
func Currency(amount float64, code, locale string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return ""
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	tag := ParseLocale(locale)
	scale, _ := currency.Standard.Rounding(unit)

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := message.NewPrinter(tag).Sprint(number.Decimal(amount, number.Scale(scale)))

	symbol, ok := currencySymbols[unit]
	if !ok {
		symbol = unit.String()
	}

	if base, _ := tag.Base(); base.String() == "en" {
		if ok {
			return sign + symbol + digits
		}
		return sign + symbol + " " + digits
	}
	return sign + digits + " " + symbol
}

// Distance formats meters, switching to kilometers with one decimal from 1000 m.
//
//	Distance(850)  // "850 m"
//	Distance(1234) // "1.2 km"
func Distance(meters float64) string {
	if math.IsNaN(meters) || meters < 0 {
		meters = 0
	}
	if meters < metersPerKilometer {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/metersPerKilometer)
}

type interval struct {
	unit   string
	length time.Duration
}

var intervals = []interval{
	{unit: "year", length: 365 * 24 * time.Hour},
	{unit: "month", length: 30 * 24 * time.Hour},
	{unit: "day", length: 24 * time.Hour},
	{unit: "hour", length: time.Hour},
	{unit: "minute", length: time.Minute},
}

// TimeAgo describes how long before now t happened, in the largest whole unit
// ("3 days ago", "1 hour ago"). Less than a minute, or a future t, is "just now".
func TimeAgo(t, now time.Time) string {
	elapsed := now.Sub(t)
	for _, iv := range intervals {
		n := int64(elapsed / iv.length)
		if n < 1 {
			continue
		}
		unit := iv.unit
		if n > 1 {
			unit += "s"
		}
		return fmt.Sprintf("%d %s ago", n, unit)
	}
	return "just now"
}

// Minutes renders a duration in whole minutes ("25 min").
func Minutes(minutes int) string {
	return fmt.Sprintf("%d min", max(minutes, 0))
}
