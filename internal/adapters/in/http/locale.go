package http

import (
	"golang.org/x/text/language"
)

// RequestLocale picks the preferred tag of an Accept-Language header, or fallback
// when the header is empty or malformed.
//
//	RequestLocale("de-DE,de;q=0.9,en;q=0.8", "en-US") // "de-DE"
//	RequestLocale("*", "en-US")                      // "en-US"
func RequestLocale(acceptLanguage, fallback string) string {
	if acceptLanguage == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 || tags[0] == language.Und {
		return fallback
	}
	return tags[0].String()
}
