package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/interfaces"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/logger"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/trace"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

// Classifier turns raw post text into a trading signal by combining
// model sentiment with keyword scoring.
type Classifier struct {
	sentiment interfaces.SentimentClassifier
}

// NewClassifier creates a classifier backed by the given sentiment source
func NewClassifier(sentiment interfaces.SentimentClassifier) *Classifier {
	return &Classifier{sentiment: sentiment}
}

// Analyze runs the full analysis for one post: normalization, symbol
// extraction, sentiment inference and weighted classification. If the
// sentiment call itself errors out, the keyword-only fallback
// classification is used instead, so Analyze never fails.
func (c *Classifier) Analyze(ctx context.Context, text string) types.Signal {
	ctx, span := trace.StartSpan(ctx, "analyze-post")
	defer span.End()

	cleanText := Normalize(text)
	symbols := ExtractSymbols(text)

	sentiment, err := c.sentiment.Classify(ctx, cleanText)
	if err != nil {
		logger.ErrorWithErr(ctx, "Sentiment analysis failed, using keyword fallback", err)
		return FallbackClassify(text)
	}

	return ClassifySignal(cleanText, sentiment, symbols)
}

// ClassifySignal combines model sentiment and keyword counts into a
// ternary signal. Pure function of its three inputs.
//
// Sentiment carries a weight of 40, each net keyword hit a weight of 15.
// The cash-tag bonus is applied after the confidence clamp, matching
// the original scoring, so confidence can exceed 100 when symbols are
// present.
func ClassifySignal(cleanText string, sentiment types.SentimentResult, symbols []string) types.Signal {
	loweredText := strings.ToLower(cleanText)
	bullishCount, bearishCount := KeywordScore(loweredText)

	sentimentWeight := sentiment.Polarity * 40
	keywordWeight := float64(bullishCount-bearishCount) * 15
	finalScore := sentimentWeight + keywordWeight

	var signalType types.SignalType
	var confidence float64
	var reasoning string

	switch {
	case finalScore > 20:
		signalType = types.SignalBuy
		confidence = math.Min(95, 65+math.Abs(finalScore))
		reasoning = fmt.Sprintf("sentiment %.2f + %d bullish keywords", sentiment.Polarity, bullishCount)
	case finalScore < -20:
		signalType = types.SignalSell
		confidence = math.Min(95, 65+math.Abs(finalScore))
		reasoning = fmt.Sprintf("sentiment %.2f + %d bearish keywords", sentiment.Polarity, bearishCount)
	default:
		signalType = types.SignalNeutral
		confidence = math.Max(30, 50-math.Abs(finalScore))
		reasoning = fmt.Sprintf("neutral sentiment (%.2f)", sentiment.Polarity)
	}

	if len(symbols) > 0 {
		confidence += 15
		reasoning += " [" + strings.Join(symbols, ", ") + "]"
	}

	return types.Signal{
		Type:           signalType,
		Confidence:     int(math.Round(confidence)),
		Symbols:        symbols,
		Reasoning:      reasoning,
		SentimentScore: sentiment.Polarity,
	}
}

// FallbackClassify is the keyword-only classification used when the
// analysis step fails outright. It scores against the reduced
// vocabularies and reports a fixed zero sentiment score.
func FallbackClassify(text string) types.Signal {
	loweredText := strings.ToLower(text)
	symbols := ExtractSymbols(text)

	bullishCount := countHits(loweredText, fallbackBullishWords)
	bearishCount := countHits(loweredText, fallbackBearishWords)

	signalType := types.SignalNeutral
	confidence := 40

	if bullishCount > bearishCount {
		signalType = types.SignalBuy
		confidence = 50 + bullishCount*10
	} else if bearishCount > bullishCount {
		signalType = types.SignalSell
		confidence = 50 + bearishCount*10
	}
	if confidence > 75 {
		confidence = 75
	}

	return types.Signal{
		Type:           signalType,
		Confidence:     confidence,
		Symbols:        symbols,
		Reasoning:      fmt.Sprintf("fallback: %d bullish / %d bearish", bullishCount, bearishCount),
		SentimentScore: 0,
		Fallback:       true,
	}
}
