package feed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/api"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/store"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/trace"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

const twitterBaseURL = "https://api.twitter.com"

// TwitterFeed fetches the latest original posts of one account through
// the v2 API, excluding reposts and replies.
type TwitterFeed struct {
	client   *api.Client
	account  string
	pageSize int
	userID   string // resolved once, cached for the process lifetime
}

// NewTwitterFeed creates a feed client for the configured account. The
// bearer token is read from the environment.
func NewTwitterFeed(cfg *store.Config) *TwitterFeed {
	return newTwitterFeed(twitterBaseURL, os.Getenv(store.EnvTwitterBearerToken), cfg.TargetAccount, cfg.PageSize)
}

func newTwitterFeed(baseURL, bearerToken, account string, pageSize int) *TwitterFeed {
	return &TwitterFeed{
		client: api.NewClient(
			api.WithBaseURL(baseURL),
			api.WithBearerToken(bearerToken),
			api.WithTimeout(15*time.Second),
			api.WithLogging(true),
		),
		account:  account,
		pageSize: pageSize,
	}
}

// LatestPosts returns the most recent posts of the target account,
// most-recent-first. Errors are returned to the orchestrator, which
// ends the cycle early.
func (f *TwitterFeed) LatestPosts(ctx context.Context) ([]types.Post, error) {
	ctx, span := trace.StartSpan(ctx, "twitter-api-call")
	defer span.End()

	if f.userID == "" {
		id, err := f.resolveUserID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user id for @%s: %w", f.account, err)
		}
		f.userID = id
	}

	url := fmt.Sprintf("/2/users/%s/tweets?max_results=%d&exclude=retweets,replies&tweet.fields=created_at",
		f.userID, f.pageSize)

	resp, err := f.client.GET(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeline: %w", err)
	}

	var r struct {
		Data []struct {
			ID        string    `json:"id"`
			Text      string    `json:"text"`
			CreatedAt time.Time `json:"created_at"`
		} `json:"data"`
	}
	if err := resp.ParseJSON(&r); err != nil {
		return nil, err
	}

	posts := make([]types.Post, 0, len(r.Data))
	for _, tw := range r.Data {
		posts = append(posts, types.Post{
			ID:        tw.ID,
			Text:      tw.Text,
			CreatedAt: tw.CreatedAt,
		})
	}
	return posts, nil
}

// resolveUserID looks up the account's numeric id by handle
func (f *TwitterFeed) resolveUserID(ctx context.Context) (string, error) {
	resp, err := f.client.GET(ctx, "/2/users/by/username/"+f.account)
	if err != nil {
		return "", err
	}

	var r struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := resp.ParseJSON(&r); err != nil {
		return "", err
	}
	if r.Data.ID == "" {
		return "", fmt.Errorf("no user found for handle %q", f.account)
	}
	return r.Data.ID, nil
}
