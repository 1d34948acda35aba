// Package tracker orchestrates statistics sweeps: enumerate farms, compute
// their statistics concurrently, persist one pool record and one performance
// tick per farm.
package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"farmscope/internal/farm"
	"farmscope/internal/model"
	"farmscope/internal/storage"
)

// RunConfig holds runtime settings for the tracker.
type RunConfig struct {
	Concurrency int
	Interval    time.Duration
}

// Runner sweeps all served farms and writes the results to a sink.
type Runner struct {
	cfg     RunConfig
	engines []farm.Engine
	sink    storage.TickSink
	logger  *zap.Logger
	now     func() time.Time
}

// NewRunner builds a Runner sweeping the given engines.
func NewRunner(cfg RunConfig, engines []farm.Engine, sink storage.TickSink, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	return &Runner{
		cfg:     cfg,
		engines: engines,
		sink:    sink,
		logger:  logger.Named("tracker"),
		now:     time.Now,
	}
}

// Sweep computes statistics for every farm once and persists the successes.
// A failed farm is logged and omitted; siblings are unaffected.
func (r *Runner) Sweep(ctx context.Context) error {
	if r.sink == nil {
		return fmt.Errorf("tick sink is nil")
	}
	if len(r.engines) == 0 {
		return fmt.Errorf("at least one engine is required")
	}

	var mu sync.Mutex
	var stats []*model.FarmStatistics

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for _, engine := range r.engines {
		for _, f := range engine.Farms() {
			engine, f := engine, f
			g.Go(func() error {
				st, err := engine.FarmStatistics(gctx, f.Name)
				if err != nil {
					r.logger.Warn("farm statistics", zap.String("farm", f.Name), zap.Error(err))
					return nil
				}
				mu.Lock()
				stats = append(stats, st)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(stats) == 0 {
		r.logger.Warn("sweep produced no statistics")
		return nil
	}

	pools := make([]model.PoolRecord, 0, len(stats))
	ticks := make([]model.PerformanceTick, 0, len(stats))
	ts := r.now().Unix()
	for _, st := range stats {
		pools = append(pools, model.PoolRecord{
			Name:          st.Farm.Name,
			PoolID:        st.Farm.PoolID,
			PoolAuthority: st.Farm.PoolAuthority,
			PoolToken:     st.Farm.LP,
			Reward:        st.Farm.Reward,
			RewardB:       st.Farm.RewardB,
		})
		ticks = append(ticks, model.PerformanceTick{
			PoolID:              st.Farm.PoolID,
			APR:                 st.APR,
			LiquidityUSD:        st.LiquidityUSD,
			LiquidityPerLPToken: st.LiquidityPerLPToken,
			Timestamp:           ts,
		})
	}

	if err := r.sink.UpsertPools(ctx, pools); err != nil {
		return fmt.Errorf("upsert pools: %w", err)
	}
	if err := r.sink.InsertPerformanceTicks(ctx, ticks); err != nil {
		return fmt.Errorf("insert ticks: %w", err)
	}

	r.logger.Info("sweep complete", zap.Int("farms", len(stats)))
	return nil
}

// Run sweeps on the configured interval until ctx is done. Interval zero
// means a single sweep.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.Sweep(ctx); err != nil {
		return err
	}
	if r.cfg.Interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.Sweep(ctx); err != nil {
				r.logger.Error("sweep failed", zap.Error(err))
			}
		}
	}
}
