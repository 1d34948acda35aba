package model

import cosmath "cosmossdk.io/math"

// FarmStatistics is one statistics snapshot for a farm: annualized percentage
// rate, USD liquidity, the USD value of a single LP token, and the raw
// reward-per-share accumulators read from the staking-pool account. Built
// once per request, immutable afterwards.
type FarmStatistics struct {
	Farm Farm

	APR                 float64
	LiquidityUSD        float64
	LiquidityPerLPToken float64

	RewardPerShare  cosmath.Int
	RewardPerShareB cosmath.Int
}
