package analysis

import "strings"

// Trading vocabularies. Each entry counts at most once per text,
// matched by substring containment on the lowercased text.
var bullishWords = []string{
	"moon", "pump", "bull", "buy", "long", "up", "rise", "surge",
	"breakout", "rally", "bullish", "calls", "strength", "momentum",
	"hodl", "diamond hands", "ath", "rocket",
}

var bearishWords = []string{
	"dump", "bear", "sell", "short", "down", "fall", "crash",
	"drop", "bearish", "puts", "weakness", "correction",
	"rekt", "paper hands", "fud", "panic",
}

// Reduced vocabularies for the keyword-only fallback classification.
var fallbackBullishWords = []string{"moon", "pump", "bull", "buy", "long", "up"}
var fallbackBearishWords = []string{"dump", "bear", "sell", "short", "down", "crash"}

// KeywordScore counts bullish and bearish vocabulary hits in the
// lowercased text.
func KeywordScore(loweredText string) (bullish, bearish int) {
	return countHits(loweredText, bullishWords), countHits(loweredText, bearishWords)
}

func countHits(loweredText string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(loweredText, word) {
			count++
		}
	}
	return count
}
