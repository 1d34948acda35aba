package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmscope/internal/model"
)

// Store provides Postgres persistence for pool descriptors and ticks.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertPools inserts or updates pool descriptors keyed by pool id.
func (s *Store) UpsertPools(ctx context.Context, pools []model.PoolRecord) error {
	if len(pools) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, pool := range pools {
		var rewardBSymbol, rewardBMint *string
		if pool.RewardB != nil {
			rewardBSymbol = &pool.RewardB.Symbol
			rewardBMint = &pool.RewardB.MintAddress
		}
		batch.Queue(`
			INSERT INTO pools (
				pool_id, name, pool_authority, pool_token_symbol, pool_token_mint,
				reward_symbol, reward_mint, reward_b_symbol, reward_b_mint,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
			ON CONFLICT (pool_id)
			DO UPDATE SET
				name = EXCLUDED.name,
				pool_authority = EXCLUDED.pool_authority,
				pool_token_symbol = EXCLUDED.pool_token_symbol,
				pool_token_mint = EXCLUDED.pool_token_mint,
				reward_symbol = EXCLUDED.reward_symbol,
				reward_mint = EXCLUDED.reward_mint,
				reward_b_symbol = EXCLUDED.reward_b_symbol,
				reward_b_mint = EXCLUDED.reward_b_mint,
				updated_at = now()
		`,
			pool.PoolID,
			pool.Name,
			pool.PoolAuthority,
			pool.PoolToken.Symbol,
			pool.PoolToken.MintAddress,
			pool.Reward.Symbol,
			pool.Reward.MintAddress,
			rewardBSymbol,
			rewardBMint,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range pools {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// InsertPerformanceTicks appends APR/liquidity ticks, one row per
// (pool_id, timestamp).
func (s *Store) InsertPerformanceTicks(ctx context.Context, ticks []model.PerformanceTick) error {
	if len(ticks) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, tick := range ticks {
		batch.Queue(`
			INSERT INTO performance_ticks (
				pool_id, apr, liquidity_usd, liquidity_per_lp_token, ts, created_at
			) VALUES ($1, $2, $3, $4, to_timestamp($5), now())
			ON CONFLICT (pool_id, ts) DO NOTHING
		`,
			tick.PoolID,
			tick.APR,
			tick.LiquidityUSD,
			tick.LiquidityPerLPToken,
			tick.Timestamp,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range ticks {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
