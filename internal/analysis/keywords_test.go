package analysis

import "testing"

func TestKeywordScore(t *testing.T) {
	cases := []struct {
		name         string
		text         string
		wantBullish  int
		wantBearish  int
	}{
		{"bullish only", "to the moon, time to buy", 2, 0},
		{"bearish only", "dump it before the crash", 0, 2},
		{"mixed", "bulls buy the dip, bears sell the rally", 3, 2},
		{"phrase entry", "diamond hands all the way", 1, 0},
		{"no keywords", "nothing to see here", 0, 0},
	}

	for _, tc := range cases {
		bullish, bearish := KeywordScore(tc.text)
		if bullish != tc.wantBullish || bearish != tc.wantBearish {
			t.Errorf("%s: KeywordScore(%q) = (%d, %d), want (%d, %d)",
				tc.name, tc.text, bullish, bearish, tc.wantBullish, tc.wantBearish)
		}
	}
}

func TestKeywordScoreCountsEntryOnce(t *testing.T) {
	// Repeated occurrences of the same vocabulary entry count once
	bullish, bearish := KeywordScore("buy buy buy")
	if bullish != 1 {
		t.Errorf("Expected bullish count 1 for repeated word, got %d", bullish)
	}
	if bearish != 0 {
		t.Errorf("Expected bearish count 0, got %d", bearish)
	}
}

func TestKeywordScoreSubstringContainment(t *testing.T) {
	// Containment check, not token match: "bears" contains "bear",
	// "upward" contains "up"
	bullish, bearish := KeywordScore("bears pushing the price upward")
	if bullish != 1 {
		t.Errorf("Expected bullish count 1 (up), got %d", bullish)
	}
	if bearish != 1 {
		t.Errorf("Expected bearish count 1 (bear), got %d", bearish)
	}
}
