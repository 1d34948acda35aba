package model

// StakeAccount is a wallet's decoded staking account for one pool: the LP
// deposit and the reward-debt snapshots taken at the last deposit or claim.
type StakeAccount struct {
	Address        string
	PoolID         string
	DepositBalance Amount
	RewardDebt     Amount
	RewardDebtB    Amount
}

// StakePosition is the USD view of a StakeAccount against the farm's current
// statistics. Recomputed fresh on every request.
type StakePosition struct {
	FarmName string
	PoolID   string

	LPTokens     float64
	LPValueUSD   float64

	PendingReward     Amount
	PendingRewardUSD  float64
	PendingRewardB    *Amount
	PendingRewardBUSD *float64

	TotalPositionUSD float64

	StakeAccountAddress string
}
