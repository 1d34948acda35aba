package farm

import (
	"context"

	cosmath "cosmossdk.io/math"
	"go.uber.org/zap"

	"farmscope/internal/model"
	"farmscope/internal/registry"
)

// LegacyEngine serves single-reward farms, every version outside 4 and 5.
type LegacyEngine struct {
	h *hydrator
}

func NewLegacyEngine(fetcher AccountFetcher, prices PriceSource, reg *registry.Registry, logger *zap.Logger) *LegacyEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LegacyEngine{h: newHydrator(fetcher, prices, reg, logger.Named("legacy"))}
}

func (e *LegacyEngine) serves(f model.Farm) bool {
	return !f.IsStake && f.Version != 4 && f.Version != 5
}

func (e *LegacyEngine) Farms() []model.Farm {
	return selectFarms(e.h.reg, e.serves)
}

func (e *LegacyEngine) FarmByName(name string) (model.Farm, bool) {
	return farmByName(e.h.reg, name, e.serves)
}

func (e *LegacyEngine) FarmByPoolID(poolID string) (model.Farm, bool) {
	return farmByPoolID(e.h.reg, poolID, e.serves)
}

// FarmStatistics computes the farm's single-track APR and liquidity snapshot.
func (e *LegacyEngine) FarmStatistics(ctx context.Context, name string) (*model.FarmStatistics, error) {
	f, ok := e.FarmByName(name)
	if !ok {
		return nil, ErrFarmNotFound
	}

	state, err := e.h.stakePoolState(ctx, f)
	if err != nil {
		return nil, err
	}
	v, err := e.h.valuePool(ctx, f)
	if err != nil {
		return nil, err
	}
	staked, err := e.h.stakedUSD(ctx, f, v)
	if err != nil {
		return nil, err
	}
	annual, err := e.h.annualRewardUSD(state.RewardPerBlock, f.Reward)
	if err != nil {
		return nil, err
	}

	return &model.FarmStatistics{
		Farm:                f,
		APR:                 annual / staked * 100,
		LiquidityUSD:        v.liquidityUSD,
		LiquidityPerLPToken: v.perLPToken,
		RewardPerShare:      cosmath.NewIntFromBigInt(state.RewardPerShare),
		RewardPerShareB:     cosmath.ZeroInt(),
	}, nil
}
