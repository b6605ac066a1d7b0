package directory

import (
	"regexp"
	"strings"
	"time"

	"callscreen_backend/internal/bank"
	"callscreen_backend/platform/phone"
)

// Export field order: telephone|nom|date_naissance|email|adresse|ville (cp)|iban|swift
const minFieldCount = 7

// cityRe matches "<ville> (<code postal>)".
var cityRe = regexp.MustCompile(`^(.+?)\s*\((\d{5})\)`)

// skipReason says why a line produced no record. The load contract only
// surfaces the aggregate count, but the skip policy stays testable.
type skipReason int

const (
	lineParsed skipReason = iota
	skipBlank
	skipFieldCount
	skipPhone
)

// ParseLine parses one pipe-delimited export line into a client record.
// The second return value is false for blank lines, lines with fewer than
// seven fields, and lines whose phone number cannot be canonicalized: a
// record without a lookup key is useless, and a bad line must never abort
// the batch.
func ParseLine(line string) (ClientRecord, bool) {
	record, reason := parseLine(line, time.Now())
	return record, reason == lineParsed
}

func parseLine(line string, now time.Time) (ClientRecord, skipReason) {
	if strings.TrimSpace(line) == "" {
		return ClientRecord{}, skipBlank
	}

	parts := strings.Split(line, "|")
	if len(parts) < minFieldCount {
		return ClientRecord{}, skipFieldCount
	}

	canonical, ok := phone.Normalize(strings.TrimSpace(parts[0]))
	if !ok {
		return ClientRecord{}, skipPhone
	}

	lastName, firstName := splitFullName(strings.TrimSpace(parts[1]))
	city, postalCode := splitCity(strings.TrimSpace(parts[5]))

	iban := strings.TrimSpace(parts[6])
	bankLabel := Placeholder
	if iban != "" {
		bankLabel = bank.Classify(iban)
	}

	swift := ""
	if len(parts) > 7 {
		swift = strings.TrimSpace(parts[7])
	}

	uploadedAt := now
	return ClientRecord{
		LastName:   lastName,
		FirstName:  firstName,
		BirthDate:  strings.TrimSpace(parts[2]),
		BirthPlace: Placeholder,
		Gender:     Placeholder,
		Profession: Placeholder,
		Company:    Placeholder,
		Email:      strings.TrimSpace(parts[3]),
		Address:    strings.TrimSpace(parts[4]),
		City:       city,
		PostalCode: postalCode,
		Phone:      canonical,
		IBAN:       iban,
		SWIFT:      swift,
		Bank:       bankLabel,
		Status:     StatusProspect,
		UploadedAt: &uploadedAt,
	}, lineParsed
}

// splitFullName splits on the first space: first token is the last name,
// the remainder the first name. A single token yields an empty first name.
func splitFullName(full string) (lastName, firstName string) {
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return full, ""
}

// splitCity extracts the postal code from a "ville (75001)" field. When the
// pattern does not match, the whole field is the city and the code is empty.
func splitCity(field string) (city, postalCode string) {
	if match := cityRe.FindStringSubmatch(field); match != nil {
		return strings.TrimSpace(match[1]), match[2]
	}
	return field, ""
}
