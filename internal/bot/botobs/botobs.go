package botobs

import (
	"context"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/interfaces"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/logger"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/trace"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

// observablePipeline wraps a Pipeline with observability (logging & tracing)
type observablePipeline struct {
	pipeline interfaces.Pipeline
}

// Compile-time interface check
var _ interfaces.Pipeline = (*observablePipeline)(nil)

// Wrap wraps a pipeline with observability middleware
func Wrap(pipeline interfaces.Pipeline) interfaces.Pipeline {
	return &observablePipeline{pipeline: pipeline}
}

func (op *observablePipeline) RunCycle(ctx context.Context) (*types.CycleResult, error) {
	ctx, span := trace.StartSpan(ctx, "pipeline.RunCycle")
	defer span.End()

	result, err := op.pipeline.RunCycle(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Poll cycle failed", err)
		return nil, err
	}
	if result == nil {
		// Tick skipped because the previous cycle was still running
		return nil, nil
	}

	logger.InfoSkip(ctx, 1, "Poll cycle completed",
		"cycle_id", result.CycleID,
		"fetched", result.Fetched,
		"new_posts", result.NewPosts,
		"signals_sent", result.SignalsSent,
		"below_gate", result.BelowGate,
	)
	return result, nil
}
