package model

// SwapFees holds the v4 AMM swap fee ratio.
type SwapFees struct {
	SwapFeeNumerator   uint64
	SwapFeeDenominator uint64
}

// LiquidityPool is the static descriptor of a Raydium AMM pool: the token
// pair, the LP token, and every account address needed to hydrate balances.
// Registry entries are immutable; lookups return copies.
type LiquidityPool struct {
	Name    string
	Coin    Token
	PC      Token
	LP      Token
	Version int

	ProgramID    string
	AmmID        string
	AmmAuthority string
	AmmOpenOrders string
	AmmTargetOrders string

	PoolCoinTokenAccount string
	PoolPCTokenAccount   string
	PoolWithdrawQueue    string
	PoolTempLPTokenAccount string

	SerumProgramID        string
	SerumMarket           string
	SerumCoinVaultAccount string
	SerumPCVaultAccount   string
	SerumVaultSigner      string
}

// HydratedPool is a LiquidityPool plus live balances, produced per resolve
// call and owned by the caller. Never cached.
type HydratedPool struct {
	Pool LiquidityPool

	CoinBalance  Amount
	PCBalance    Amount
	LPTotalSupply Amount
	Fees         *SwapFees
}
