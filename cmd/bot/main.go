package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/health"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/logger"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/trace"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/tracker"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	must(initializeSystem())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := loadConfig(ctx)
	must(err)

	reportCredentials(ctx)

	trk := tracker.New(cfg.MaxTrackedPosts)
	stats := health.NewStats()

	fd := initializeFeed(ctx, cfg)
	classifier := initializeClassifier(cfg)
	notifier := initializeNotifier(cfg)
	pipe := initializePipeline(cfg, fd, classifier, notifier, trk, stats)

	healthSrv := health.NewServer(cfg.Health.Addr, stats, trk)
	healthSrv.Start(ctx)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	tick := time.NewTicker(time.Duration(cfg.PollSeconds) * time.Second)
	defer tick.Stop()

	logger.Info(ctx, "Bot started", "account", cfg.TargetAccount,
		"poll_seconds", cfg.PollSeconds, "confidence_threshold", cfg.ConfidenceThreshold)
	notifier.SendStatus(ctx, fmt.Sprintf("🤖 Bot started, watching @%s every %ds", cfg.TargetAccount, cfg.PollSeconds))

	for {
		select {
		case <-tick.C:
			if _, err := pipe.RunCycle(ctx); err != nil {
				logger.ErrorWithErr(ctx, "Cycle error", err)
			}
		case <-sigc:
			logger.Info(ctx, "Shutting down...")
			notifier.SendStatus(ctx, "🛑 Bot shutting down")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := healthSrv.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "Health endpoint shutdown failed", "error", err)
			}
			if err := trace.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "Tracer shutdown failed", "error", err)
			}
			shutdownCancel()
			return
		case <-ctx.Done():
			return
		}
	}
}
