package interfaces

import (
	"context"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

type Pipeline interface {
	RunCycle(ctx context.Context) (*types.CycleResult, error)
}
