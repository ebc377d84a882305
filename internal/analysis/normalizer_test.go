package analysis

import (
	"regexp"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  hello world  ", "hello world"},
		{"strips urls", "check https://example.com/post", "check"},
		{"strips mentions", "@alice hello", "hello"},
		{"strips hashtags", "#btc pumping", "pumping"},
		{"keeps cash tags", "$BTC looking strong", "$BTC looking strong"},
		{"empty input", "", ""},
		{"only noise", "@a #b https://c.io", ""},
	}

	for _, tc := range cases {
		got := Normalize(tc.in)
		if got != tc.want {
			t.Errorf("%s: Normalize(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"🚀 $BTC to the moon https://t.co/xyz @whale #crypto",
		"plain text with no noise",
		"  #a @b http://c.de  ",
		"",
		"$ETH dump incoming, bears in control",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestExtractSymbols(t *testing.T) {
	got := ExtractSymbols("$BTC and $ETH, then $BTC again")
	want := []string{"$BTC", "$ETH"}

	if len(got) != len(want) {
		t.Fatalf("Expected %d symbols, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected symbol %s at position %d, got %s", want[i], i, got[i])
		}
	}
}

func TestExtractSymbolsRejectsInvalid(t *testing.T) {
	cases := []string{
		"$btc lowercase",
		"$A too short",
		"no tags at all",
		"price is $42",
	}

	for _, in := range cases {
		if got := ExtractSymbols(in); len(got) != 0 {
			t.Errorf("ExtractSymbols(%q) = %v, want none", in, got)
		}
	}
}

func TestExtractSymbolsWellFormed(t *testing.T) {
	pattern := regexp.MustCompile(`^\$[A-Z]{2,6}$`)
	inputs := []string{
		"$BTC $ETH $DOGE mixed with #tags and @users",
		"$LONGNAME gets truncated by the pattern",
		"$AB $ABCDEF boundary lengths",
	}

	for _, in := range inputs {
		seen := map[string]bool{}
		for _, sym := range ExtractSymbols(in) {
			if !pattern.MatchString(sym) {
				t.Errorf("Symbol %q from %q does not match expected pattern", sym, in)
			}
			if seen[sym] {
				t.Errorf("Duplicate symbol %q from %q", sym, in)
			}
			seen[sym] = true
		}
	}
}

func TestExtractSymbolsFromOriginalText(t *testing.T) {
	// Extraction runs on the raw text, before any stripping
	in := "#news $BTC update from @analyst https://example.com/$FAKE"
	got := ExtractSymbols(in)

	if len(got) != 2 || got[0] != "$BTC" || got[1] != "$FAKE" {
		t.Errorf("Expected [$BTC $FAKE], got %v", got)
	}
}
