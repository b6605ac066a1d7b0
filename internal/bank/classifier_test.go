package bank

import (
	"strings"
	"testing"
)

func TestClassifyKnownCodes(t *testing.T) {
	cases := []struct {
		iban string
		want string
	}{
		{"FR7630003000110000000000000", "Société Générale"},
		{"FR7620041000010000000000000", "La Banque Postale"},
		{"FR7618706000000000000000000", "Crédit Agricole Île-de-France"},
		// Lowercase, spaced and hyphenated forms canonicalize first.
		{"fr76 3000 4000 0100 0000 0000 000", "BNP Paribas"},
		{"FR76-1090-7000-0000-0000-0000-000", "BNP Paribas"},
	}

	for _, tc := range cases {
		if got := Classify(tc.iban); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.iban, got, tc.want)
		}
	}
}

func TestClassifySharedCodesResolveToFrozenNames(t *testing.T) {
	// Codes historically claimed by several institutions must resolve to
	// one fixed name each.
	cases := map[string]string{
		"30002": "Crédit Agricole",
		"11315": "Crédit Agricole",
		"18206": "Crédit Agricole Nord-Est",
		"12548": "Boursorama",
		"17515": "Qonto",
		"18315": "Société Marseillaise de Crédit",
		"15589": "Banque Palatine",
		"16958": "Revolut",
	}

	for code, want := range cases {
		iban := "FR76" + code + "0001100000000000000"
		if got := Classify(iban); got != want {
			t.Fatalf("Classify(code %s) = %q, want %q", code, got, want)
		}
	}
}

func TestClassifyUnknownCodeEmbedsCode(t *testing.T) {
	got := Classify("FR7612345000110000000000000")
	if !strings.Contains(got, "12345") {
		t.Fatalf("expected label to contain the branch code, got %q", got)
	}
	if got != "Banque française (12345)" {
		t.Fatalf("unexpected fallback label %q", got)
	}
}

func TestClassifyForeign(t *testing.T) {
	if got := Classify("DE89370400440532013000"); got != LabelForeign {
		t.Fatalf("expected %q for a German IBAN, got %q", LabelForeign, got)
	}
	if got := Classify("GB29NWBK60161331926819"); got != LabelForeign {
		t.Fatalf("expected %q for a UK IBAN, got %q", LabelForeign, got)
	}
}

func TestClassifyInvalid(t *testing.T) {
	for _, iban := range []string{"", "FR1", "FR761234567"} {
		if got := Classify(iban); got != LabelInvalid {
			t.Fatalf("Classify(%q) = %q, want %q", iban, got, LabelInvalid)
		}
	}
}

func TestBranchCode(t *testing.T) {
	code, ok := BranchCode("FR7613906000110000000000000")
	if !ok || code != "13906" {
		t.Fatalf("expected branch code 13906, got %q (ok=%v)", code, ok)
	}

	if _, ok := BranchCode("DE89370400440532013000"); ok {
		t.Fatal("expected no branch code for a foreign IBAN")
	}
}

func TestTableCounts(t *testing.T) {
	if TableSize() != 106 {
		t.Fatalf("expected 106 merged codes, got %d", TableSize())
	}
	if CreditAgricoleCount() != 46 {
		t.Fatalf("expected 46 Crédit Agricole caisses, got %d", CreditAgricoleCount())
	}
	if GeneralCount() != 66 {
		t.Fatalf("expected 66 general entries, got %d", GeneralCount())
	}
	if !IsCreditAgricole("13906") {
		t.Fatal("expected 13906 to belong to Crédit Agricole")
	}
	if IsCreditAgricole("30003") {
		t.Fatal("expected 30003 not to belong to Crédit Agricole")
	}
}

func TestTableReturnsCopy(t *testing.T) {
	table := Table()
	table["30003"] = "mutated"
	if Classify("FR7630003000110000000000000") != "Société Générale" {
		t.Fatal("mutating the returned table must not affect classification")
	}
}
