package phone

import "testing"

func TestNormalizeEquivalentForms(t *testing.T) {
	forms := []string{
		"0033669290606",
		"+33669290606",
		"33669290606",
		"0669290606",
		"669290606",
	}

	for _, form := range forms {
		got, ok := Normalize(form)
		if !ok {
			t.Fatalf("expected %q to normalize", form)
		}
		if got != "0669290606" {
			t.Fatalf("expected %q to normalize to 0669290606, got %q", form, got)
		}
	}
}

func TestNormalizeAlreadyCanonical(t *testing.T) {
	inputs := []string{"0669290606", "0185093039", "0000000000", "0999999999"}
	for _, input := range inputs {
		got, ok := Normalize(input)
		if !ok || got != input {
			t.Fatalf("expected %q to be a fixed point, got %q (ok=%v)", input, got, ok)
		}
	}
}

func TestNormalizeStripsFormatting(t *testing.T) {
	got, ok := Normalize("06 69 29 06 06")
	if !ok || got != "0669290606" {
		t.Fatalf("expected spaced number to normalize, got %q (ok=%v)", got, ok)
	}

	got, ok = Normalize("+33 (0)6-69-29-06-06")
	if ok {
		// A stray "(0)" leaves 11 digits after the prefix; no shape matches.
		t.Fatalf("expected +33 (0)… to be rejected, got %q", got)
	}

	got, ok = Normalize("06.69.29.06.06")
	if !ok || got != "0669290606" {
		t.Fatalf("expected dotted number to normalize, got %q (ok=%v)", got, ok)
	}
}

func TestNormalizeRejects(t *testing.T) {
	rejected := []string{
		"",
		"123",
		"06692906",      // too short
		"066929060612",  // too long
		"abc",
		"+49669290606",  // foreign prefix
		"6692906+06",    // '+' in the middle survives cleaning
	}

	for _, input := range rejected {
		if got, ok := Normalize(input); ok {
			t.Fatalf("expected %q to be rejected, got %q", input, got)
		}
	}
}

func TestFormatInternationalFallsBackOnGarbage(t *testing.T) {
	if got := FormatInternational("not-a-number"); got != "not-a-number" {
		t.Fatalf("expected passthrough for unparseable input, got %q", got)
	}
}
