package model

// PoolRecord is the persisted descriptor of a tracked staking pool.
type PoolRecord struct {
	Name          string `json:"name"`
	PoolID        string `json:"pool_id"`
	PoolAuthority string `json:"pool_authority"`
	PoolToken     Token  `json:"pool_token"`
	Reward        Token  `json:"reward"`
	RewardB       *Token `json:"reward_b,omitempty"`
}

// PerformanceTick is one APR/liquidity time-series point, appended per
// statistics sweep.
type PerformanceTick struct {
	PoolID              string  `json:"pool_id"`
	APR                 float64 `json:"apr"`
	LiquidityUSD        float64 `json:"liquidity_usd"`
	LiquidityPerLPToken float64 `json:"liquidity_per_lp_token"`
	Timestamp           int64   `json:"timestamp"`
}
