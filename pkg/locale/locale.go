// Package locale infers the language a guest should be addressed in.
// Confirmations go out by phone, so the number's country prefix is
// the only locale signal the booking flow has.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

type Country struct {
	Code          string   // ISO 3166-1 alpha-2 country code
	Name          string   // Human-readable country name
	PhonePrefixes []string // Phone prefixes, with and without "+"
	Language      language.Tag
}

var Countries = map[string]Country{
	"VN": {
		Code:          "VN",
		Name:          "Vietnam",
		PhonePrefixes: []string{"+84", "84"},
		Language:      language.Vietnamese,
	},
	"US": {
		Code:          "US",
		Name:          "United States",
		PhonePrefixes: []string{"+1", "1"},
		Language:      language.AmericanEnglish,
	},
}

// DefaultLanguage is used when the phone prefix matches no known
// country. English reaches the widest set of travelling guests.
var DefaultLanguage = language.English

func InferCountryFromPhone(phone string) *Country {
	normalized := strings.TrimSpace(phone)

	for _, country := range Countries {
		for _, prefix := range country.PhonePrefixes {
			if strings.HasPrefix(normalized, prefix) {
				c := country
				return &c
			}
		}
	}

	return nil
}

// InferLanguageFromPhone picks the confirmation language for a guest.
func InferLanguageFromPhone(phone string) language.Tag {
	if country := InferCountryFromPhone(phone); country != nil {
		return country.Language
	}
	return DefaultLanguage
}
