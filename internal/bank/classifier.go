// Package bank classifies the issuing institution of a French IBAN from
// its 5-digit branch code, using a compiled-in code table. Classification
// is a pure lookup: every input, however malformed, resolves to a defined
// label so that partial banking data never blocks record creation.
package bank

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// LabelForeign is returned for IBANs outside the French registry.
	LabelForeign = "Banque étrangère"
	// LabelInvalid is returned for IBANs too short to carry a branch code.
	LabelInvalid = "IBAN invalide"

	countryPrefix = "FR"

	// Branch code sits right after the country code and check digits.
	branchCodeStart = 4
	branchCodeEnd   = 9
	minIBANLength   = 14
)

// bankNames is the authoritative branch-code table, built once from the
// two source tables. The Crédit Agricole entry wins on shared codes.
var bankNames = mergeTables()

func mergeTables() map[string]string {
	merged := make(map[string]string, len(generalBankCodes)+len(creditAgricoleCodes))
	for code, name := range generalBankCodes {
		merged[code] = name
	}
	for code, name := range creditAgricoleCodes {
		merged[code] = name
	}
	return merged
}

// CleanIBAN canonicalizes an IBAN: spaces and hyphens removed, uppercased.
func CleanIBAN(iban string) string {
	replacer := strings.NewReplacer(" ", "", "-", "")
	return strings.ToUpper(replacer.Replace(iban))
}

// Classify maps a raw IBAN to a human-readable institution label.
// Unknown branch codes yield "Banque française (<code>)" so the code stays
// visible to operators; foreign and malformed input get fixed labels.
func Classify(rawIBAN string) string {
	cleaned := CleanIBAN(rawIBAN)
	if cleaned == "" {
		return LabelInvalid
	}
	if !strings.HasPrefix(cleaned, countryPrefix) {
		return LabelForeign
	}
	if len(cleaned) < minIBANLength {
		return LabelInvalid
	}

	code := cleaned[branchCodeStart:branchCodeEnd]
	if name, ok := bankNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Banque française (%s)", code)
}

// BranchCode extracts the 5-digit branch code of a cleaned French IBAN.
// The second return value is false when no code can be extracted.
func BranchCode(rawIBAN string) (string, bool) {
	cleaned := CleanIBAN(rawIBAN)
	if !strings.HasPrefix(cleaned, countryPrefix) || len(cleaned) < minIBANLength {
		return "", false
	}
	return cleaned[branchCodeStart:branchCodeEnd], true
}

// Known reports whether the IBAN resolves to an institution in the table.
func Known(rawIBAN string) bool {
	code, ok := BranchCode(rawIBAN)
	if !ok {
		return false
	}
	_, found := bankNames[code]
	return found
}

// IsCreditAgricole reports whether the branch code belongs to a caisse
// régionale of the Crédit Agricole group.
func IsCreditAgricole(code string) bool {
	_, ok := creditAgricoleCodes[code]
	return ok
}

// TableSize returns the number of branch codes in the merged table.
func TableSize() int {
	return len(bankNames)
}

// CreditAgricoleCount returns the number of Crédit Agricole caisses in the table.
func CreditAgricoleCount() int {
	return len(creditAgricoleCodes)
}

// GeneralCount returns the number of non-Crédit Agricole entries in the table.
func GeneralCount() int {
	return len(generalBankCodes)
}

// Table returns a copy of the merged code table, for read-only surfaces.
func Table() map[string]string {
	table := make(map[string]string, len(bankNames))
	for code, name := range bankNames {
		table[code] = name
	}
	return table
}

// GeneralNames returns the sorted institution names of the general table.
func GeneralNames() []string {
	return sortedValues(generalBankCodes)
}

// CreditAgricoleNames returns the sorted caisse names of the Crédit Agricole table.
func CreditAgricoleNames() []string {
	return sortedValues(creditAgricoleCodes)
}

func sortedValues(table map[string]string) []string {
	values := make([]string, 0, len(table))
	for _, name := range table {
		values = append(values, name)
	}
	sort.Strings(values)
	return values
}
