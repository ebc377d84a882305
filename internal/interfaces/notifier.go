package interfaces

import (
	"context"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

type Notifier interface {
	SendSignal(ctx context.Context, signal types.Signal, sourceText string)
	SendStatus(ctx context.Context, message string)
}
