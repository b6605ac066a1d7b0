// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"regexp"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "FR"

// cleanRe strips every character except digits and '+'.
var cleanRe = regexp.MustCompile(`[^\d+]`)

// National number shapes accepted for canonicalization, tried in order.
// The first match wins; each captures the 9 significant digits.
var nationalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^0033(\d{9})$`),
	regexp.MustCompile(`^\+33(\d{9})$`),
	regexp.MustCompile(`^33(\d{9})$`),
	regexp.MustCompile(`^0(\d{9})$`),
	regexp.MustCompile(`^(\d{9})$`),
}

var canonicalRe = regexp.MustCompile(`^0\d{9}$`)

// Normalize canonicalizes a raw phone number into the 10-digit national
// form with a leading zero. The second return value is false when the
// input does not resolve to a French number; malformed numbers are common
// in exports and must not abort processing.
func Normalize(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	cleaned := cleanRe.ReplaceAllString(raw, "")

	for _, pattern := range nationalPatterns {
		match := pattern.FindStringSubmatch(cleaned)
		if match == nil {
			continue
		}
		result := "0" + match[1]
		if canonicalRe.MatchString(result) {
			return result, true
		}
		return "", false
	}

	return "", false
}

// FormatInternational renders a canonical national number in international
// display form (e.g. "+33 6 69 29 06 06") for human-facing messages.
// If parsing fails, it returns the input unchanged.
func FormatInternational(canonical string) string {
	number, err := phonenumbers.Parse(canonical, defaultRegion)
	if err != nil {
		return canonical
	}

	if !phonenumbers.IsValidNumber(number) {
		return canonical
	}

	return phonenumbers.Format(number, phonenumbers.INTERNATIONAL)
}
