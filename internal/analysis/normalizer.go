package analysis

import (
	"regexp"
	"strings"
)

var (
	urlPattern     = regexp.MustCompile(`https?://\S+`)
	mentionPattern = regexp.MustCompile(`@\S+`)
	hashtagPattern = regexp.MustCompile(`#\S+`)
	symbolPattern  = regexp.MustCompile(`\$[A-Z]{2,6}`)
)

// Normalize strips URLs, @mentions and #hashtags from raw post text and
// trims surrounding whitespace. Idempotent, no side effects.
func Normalize(text string) string {
	clean := urlPattern.ReplaceAllString(text, "")
	clean = mentionPattern.ReplaceAllString(clean, "")
	clean = hashtagPattern.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

// ExtractSymbols returns the distinct cash tags ($ followed by 2-6
// uppercase letters) found in the original, pre-normalization text, in
// first-seen order. Cash tags use $, which none of the strip rules touch.
func ExtractSymbols(text string) []string {
	matches := symbolPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	symbols := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		symbols = append(symbols, m)
	}
	return symbols
}
