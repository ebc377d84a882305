package interfaces

import (
	"context"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

type SentimentClassifier interface {
	Classify(ctx context.Context, cleanText string) (types.SentimentResult, error)
}
