package sentimentobs

import (
	"context"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/interfaces"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/logger"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/trace"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

// observableClassifier wraps a SentimentClassifier with observability
type observableClassifier struct {
	classifier interfaces.SentimentClassifier
}

// Compile-time interface check
var _ interfaces.SentimentClassifier = (*observableClassifier)(nil)

// Wrap wraps a sentiment classifier with observability middleware
func Wrap(classifier interfaces.SentimentClassifier) interfaces.SentimentClassifier {
	return &observableClassifier{classifier: classifier}
}

func (oc *observableClassifier) Classify(ctx context.Context, cleanText string) (types.SentimentResult, error) {
	ctx, span := trace.StartSpan(ctx, "sentiment.Classify")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Requesting sentiment classification", "text_len", len(cleanText))

	result, err := oc.classifier.Classify(ctx, cleanText)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Sentiment classification failed", err)
		return types.SentimentResult{}, err
	}

	logger.InfoSkip(ctx, 1, "Sentiment classified",
		"label", result.Label,
		"polarity", result.Polarity,
		"model_confidence", result.ModelConfidence,
		"fallback", result.Fallback,
	)
	return result, nil
}
