// Package wallet computes per-wallet staking positions from on-chain stake
// accounts and current farm statistics.
package wallet

import (
	"fmt"

	cosmath "cosmossdk.io/math"

	"farmscope/internal/farm"
	"farmscope/internal/model"
)

var (
	divisorLegacy = cosmath.NewInt(1_000_000_000)
	divisorV5     = cosmath.NewIntFromUint64(1_000_000_000_000_000)
)

// rewardDivisor corrects for the accumulator's internal fixed-point scale,
// which differs by protocol version.
func rewardDivisor(version int) cosmath.Int {
	if version == 5 {
		return divisorV5
	}
	return divisorLegacy
}

// PendingReward applies reward-debt accounting for one track, entirely in
// integer arithmetic: deposit * accumulator / divisor - debt.
func PendingReward(depositRaw, perShareRaw, debtRaw cosmath.Int, version int, rewardDecimals uint8) model.Amount {
	raw := depositRaw.Mul(perShareRaw).Quo(rewardDivisor(version)).Sub(debtRaw)
	return model.NewAmountFromBigInt(raw.BigInt(), rewardDecimals)
}

// Calculator turns stake accounts into USD-valued positions.
type Calculator struct {
	prices farm.PriceSource
}

func NewCalculator(prices farm.PriceSource) *Calculator {
	return &Calculator{prices: prices}
}

// Position values a stake account against its farm's current statistics.
func (c *Calculator) Position(acct model.StakeAccount, f model.Farm, stats *model.FarmStatistics) (*model.StakePosition, error) {
	lpTokens := acct.DepositBalance.Float64()
	lpValueUSD := lpTokens * stats.LiquidityPerLPToken

	rewardPrice, ok := c.prices.PriceUSD(f.Reward.Symbol)
	if !ok {
		return nil, fmt.Errorf("no usd price for %s", f.Reward.Symbol)
	}
	pending := PendingReward(acct.DepositBalance.Raw, stats.RewardPerShare, acct.RewardDebt.Raw, f.Version, f.Reward.Decimals)
	pendingUSD := pending.Float64() * rewardPrice

	pos := &model.StakePosition{
		FarmName:            f.Name,
		PoolID:              acct.PoolID,
		LPTokens:            lpTokens,
		LPValueUSD:          lpValueUSD,
		PendingReward:       pending,
		PendingRewardUSD:    pendingUSD,
		TotalPositionUSD:    lpValueUSD + pendingUSD,
		StakeAccountAddress: acct.Address,
	}

	if f.HasDualReward() {
		priceB, ok := c.prices.PriceUSD(f.RewardB.Symbol)
		if !ok {
			return nil, fmt.Errorf("no usd price for %s", f.RewardB.Symbol)
		}
		pendingB := PendingReward(acct.DepositBalance.Raw, stats.RewardPerShareB, acct.RewardDebtB.Raw, f.Version, f.RewardB.Decimals)
		pendingBUSD := pendingB.Float64() * priceB
		pos.PendingRewardB = &pendingB
		pos.PendingRewardBUSD = &pendingBUSD
		pos.TotalPositionUSD += pendingBUSD
	}

	return pos, nil
}
