package storage

import (
	"context"

	"farmscope/internal/model"
)

// TickSink is a sink for pool descriptors and performance time-series ticks.
type TickSink interface {
	UpsertPools(ctx context.Context, pools []model.PoolRecord) error
	InsertPerformanceTicks(ctx context.Context, ticks []model.PerformanceTick) error
}
