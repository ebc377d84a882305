package interfaces

import (
	"context"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

type Feed interface {
	LatestPosts(ctx context.Context) ([]types.Post, error)
}
