package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/analysis"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/bot"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/bot/botobs"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/feed"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/feed/feedobs"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/health"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/interfaces"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/logger"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/notify"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/sentiment"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/sentiment/sentimentobs"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/store"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/trace"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/tracker"
)

// initializeSystem loads the environment and initializes logger and tracer
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// reportCredentials logs which upstream credentials are missing.
// Missing credentials degrade the pipeline but do not abort startup.
func reportCredentials(ctx context.Context) {
	missing := store.MissingCredentials()
	if len(missing) == 0 {
		logger.Info(ctx, "All upstream credentials present")
		return
	}
	for _, key := range missing {
		logger.Warn(ctx, "Missing upstream credential", "env", key)
	}
}

// initializeFeed returns the feed source with observability. The API
// client is used when a bearer token is present; otherwise the mirror
// scraper is the fallback, if one is configured.
func initializeFeed(ctx context.Context, cfg *store.Config) interfaces.Feed {
	var fd interfaces.Feed

	if os.Getenv(store.EnvTwitterBearerToken) != "" {
		fd = feed.NewTwitterFeed(cfg)
	} else if cfg.Feed.FallbackMirror != "" {
		logger.Warn(ctx, "No API bearer token, falling back to mirror scraping",
			"mirror", cfg.Feed.FallbackMirror)
		fd = feed.NewMirrorFeed(cfg.Feed.FallbackMirror, cfg.TargetAccount, cfg.PageSize)
	} else {
		logger.Warn(ctx, "No API bearer token and no fallback mirror configured - feed fetches will fail")
		fd = feed.NewTwitterFeed(cfg)
	}

	return feedobs.Wrap(fd)
}

// initializeClassifier wires the sentiment source into the signal classifier
func initializeClassifier(cfg *store.Config) *analysis.Classifier {
	sc := sentimentobs.Wrap(sentiment.NewHuggingFaceClassifier(cfg))
	return analysis.NewClassifier(sc)
}

// initializeNotifier returns the notification channel client
func initializeNotifier(cfg *store.Config) interfaces.Notifier {
	return notify.NewTelegramNotifier(cfg)
}

// initializePipeline assembles the poll pipeline with observability
func initializePipeline(cfg *store.Config, fd interfaces.Feed, classifier *analysis.Classifier,
	notifier interfaces.Notifier, trk *tracker.Tracker, stats *health.Stats) interfaces.Pipeline {
	return botobs.Wrap(bot.New(cfg, fd, classifier, notifier, trk, stats))
}
