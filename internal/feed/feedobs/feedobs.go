package feedobs

import (
	"context"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/interfaces"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/logger"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/trace"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

// observableFeed wraps a Feed with observability (logging & tracing)
type observableFeed struct {
	feed interfaces.Feed
}

// Compile-time interface check
var _ interfaces.Feed = (*observableFeed)(nil)

// Wrap wraps a feed with observability middleware
func Wrap(feed interfaces.Feed) interfaces.Feed {
	return &observableFeed{feed: feed}
}

func (of *observableFeed) LatestPosts(ctx context.Context) ([]types.Post, error) {
	ctx, span := trace.StartSpan(ctx, "feed.LatestPosts")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching latest posts")

	posts, err := of.feed.LatestPosts(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch latest posts", err)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Latest posts fetched", "count", len(posts))
	return posts, nil
}
