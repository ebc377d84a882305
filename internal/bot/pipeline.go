package bot

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/analysis"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/health"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/interfaces"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/logger"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/store"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/trace"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/tracker"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

// Pipeline drives one poll cycle: fetch, dedup, classify, dispatch.
// Posts are processed sequentially in feed order.
type Pipeline struct {
	cfg        *store.Config
	feed       interfaces.Feed
	classifier *analysis.Classifier
	notifier   interfaces.Notifier
	tracker    *tracker.Tracker
	stats      *health.Stats
	running    atomic.Bool
}

// New creates the pipeline with its collaborators
func New(cfg *store.Config, feed interfaces.Feed, classifier *analysis.Classifier,
	notifier interfaces.Notifier, trk *tracker.Tracker, stats *health.Stats) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		feed:       feed,
		classifier: classifier,
		notifier:   notifier,
		tracker:    trk,
		stats:      stats,
	}
}

// RunCycle executes one poll cycle. Cycles never overlap: a tick that
// fires while a cycle is in progress is skipped with a warning rather
// than queued, to avoid unbounded backlog under slow upstreams. A feed
// failure ends the cycle early with zero posts processed; it is logged,
// never returned as fatal. Returns nil when the tick was skipped.
func (p *Pipeline) RunCycle(ctx context.Context) (*types.CycleResult, error) {
	if !p.running.CompareAndSwap(false, true) {
		logger.Warn(ctx, "Previous cycle still running, skipping tick")
		return nil, nil
	}
	defer p.running.Store(false)

	ctx, span := trace.StartSpan(ctx, "poll-cycle")
	defer span.End()

	result := &types.CycleResult{CycleID: uuid.NewString()}
	defer p.stats.MarkCycle()

	posts, err := p.feed.LatestPosts(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Feed fetch failed, ending cycle early", err, "cycle_id", result.CycleID)
		return result, nil
	}
	result.Fetched = len(posts)

	fresh := p.tracker.FilterNew(posts)
	result.NewPosts = len(fresh)

	if len(fresh) == 0 {
		logger.Debug(ctx, "No new posts this cycle", "cycle_id", result.CycleID, "fetched", result.Fetched)
		return result, nil
	}

	for _, post := range fresh {
		signal := p.classifier.Analyze(ctx, post.Text)

		if signal.Confidence < p.cfg.ConfidenceThreshold {
			result.BelowGate++
			logger.Debug(ctx, "Signal below confidence gate, dropped",
				"cycle_id", result.CycleID,
				"post_id", post.ID,
				"signal_type", signal.Type,
				"confidence", signal.Confidence,
				"threshold", p.cfg.ConfidenceThreshold)
			continue
		}

		logger.Signal(ctx, string(signal.Type), signal.Confidence, signal.Symbols, signal.Reasoning,
			"cycle_id", result.CycleID, "post_id", post.ID)
		p.notifier.SendSignal(ctx, signal, post.Text)
		result.SignalsSent++
	}

	p.stats.AddSignals(result.SignalsSent)
	return result, nil
}
