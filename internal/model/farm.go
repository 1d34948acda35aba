package model

// Farm is the static descriptor of a staking pool. Fusion farms distribute a
// second reward token and carry RewardB. IsStake marks staking-only wrappers
// with no own liquidity pool; they are excluded from statistics enumeration.
type Farm struct {
	Name    string
	LP      Token
	Reward  Token
	RewardB *Token

	IsStake bool
	Fusion  bool
	DualYield bool
	Version int

	ProgramID     string
	PoolID        string
	PoolAuthority string

	PoolLPTokenAccount      string
	PoolRewardTokenAccount  string
	PoolRewardTokenAccountB string
}

// HasDualReward reports whether the farm pays out on two reward tracks.
func (f Farm) HasDualReward() bool {
	return f.RewardB != nil
}
