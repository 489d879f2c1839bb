// Package sanitizer normalizes guest-supplied contact fields before
// validation. All functions are idempotent and never return errors;
// input that cannot be normalized comes back empty so the validator
// reports it on the right field.
package sanitizer

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// Guests type numbers however their keypad suggests: local 0-prefixed
// mobile numbers, +84 international form, or foreign numbers for
// travelling guests. Regions are tried in order.
var supportedRegions = []string{
	"VN",
	"US",
}

// NormalizePhone converts a phone number to E.164. Local Vietnamese
// numbers like "0912 345 678" become "+84912345678". Unparseable
// input returns "".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err != nil {
			continue
		}
		if !phonenumbers.IsValidNumber(parsed) {
			continue
		}
		return phonenumbers.Format(parsed, phonenumbers.E164)
	}
	return ""
}

// CollapseWhitespace trims the string and folds interior whitespace
// runs into single spaces, preserving letter case and diacritics.
// Guest names like "Trần  Văn  An" keep their accents.
func CollapseWhitespace(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeName prepares a guest name for storage and display.
func NormalizeName(name string) string {
	return CollapseWhitespace(name)
}

// NormalizeNotes prepares free-form booking notes.
func NormalizeNotes(notes string) string {
	return CollapseWhitespace(notes)
}
