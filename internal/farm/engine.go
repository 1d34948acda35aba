// Package farm computes yield-farm statistics: USD liquidity, LP token
// valuation, and annualized percentage rates, read directly from on-chain
// account state.
package farm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"farmscope/internal/layout"
	"farmscope/internal/model"
	"farmscope/internal/registry"
)

// blocksPerYear assumes one block every half second.
const blocksPerYear = 2 * 60 * 60 * 24 * 365

var (
	// ErrFarmNotFound marks a farm name or pool id the engine does not serve.
	ErrFarmNotFound = errors.New("farm not found")

	// ErrZeroLiquidity marks a pool with zero LP supply or zero staked
	// liquidity. Statistics are unavailable rather than infinite.
	ErrZeroLiquidity = errors.New("zero liquidity")
)

// PriceSource serves the latest known USD price per token symbol.
type PriceSource interface {
	PriceUSD(symbol string) (float64, bool)
}

// Engine computes statistics for the subset of registry farms it serves.
type Engine interface {
	Farms() []model.Farm
	FarmByName(name string) (model.Farm, bool)
	FarmByPoolID(poolID string) (model.Farm, bool)
	FarmStatistics(ctx context.Context, name string) (*model.FarmStatistics, error)
}

// hydrator carries the fetch and valuation steps shared by both engines.
type hydrator struct {
	fetcher  AccountFetcher
	resolver *PoolResolver
	prices   PriceSource
	reg      *registry.Registry
	logger   *zap.Logger
}

func newHydrator(fetcher AccountFetcher, prices PriceSource, reg *registry.Registry, logger *zap.Logger) *hydrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reg == nil {
		reg = registry.Default()
	}
	return &hydrator{
		fetcher:  fetcher,
		resolver: NewPoolResolver(fetcher, logger),
		prices:   prices,
		reg:      reg,
		logger:   logger,
	}
}

// valuation is the USD view of the farm's underlying liquidity pool.
type valuation struct {
	liquidityUSD float64
	perLPToken   float64
}

// valuePool resolves the liquidity pool backing the farm's LP mint and prices
// its reserves.
func (h *hydrator) valuePool(ctx context.Context, f model.Farm) (*valuation, error) {
	pool, ok := h.reg.PoolByLPMint(f.LP.MintAddress)
	if !ok {
		return nil, fmt.Errorf("farm %s: no pool for lp mint %s", f.Name, f.LP.MintAddress)
	}

	hp, err := h.resolver.Resolve(ctx, pool)
	if err != nil {
		return nil, err
	}

	coinPrice, err := h.priceUSD(hp.Pool.Coin.Symbol)
	if err != nil {
		return nil, fmt.Errorf("farm %s: %w", f.Name, err)
	}
	pcPrice, err := h.priceUSD(hp.Pool.PC.Symbol)
	if err != nil {
		return nil, fmt.Errorf("farm %s: %w", f.Name, err)
	}

	if hp.LPTotalSupply.IsZero() {
		return nil, fmt.Errorf("farm %s lp mint %s: %w", f.Name, f.LP.MintAddress, ErrZeroLiquidity)
	}

	liquidityUSD := hp.CoinBalance.Float64()*coinPrice + hp.PCBalance.Float64()*pcPrice
	return &valuation{
		liquidityUSD: liquidityUSD,
		perLPToken:   liquidityUSD / hp.LPTotalSupply.Float64(),
	}, nil
}

// stakedUSD values the LP tokens deposited in the farm's vault.
func (h *hydrator) stakedUSD(ctx context.Context, f model.Farm, v *valuation) (float64, error) {
	data, err := h.fetchData(ctx, f.PoolLPTokenAccount)
	if err != nil {
		return 0, fmt.Errorf("farm %s lp vault: %w", f.Name, err)
	}
	vault, err := layout.DecodeTokenAccount(data)
	if err != nil {
		return 0, fmt.Errorf("farm %s lp vault: %w", f.Name, err)
	}

	staked := model.NewAmount(vault.Amount, f.LP.Decimals).Float64() * v.perLPToken
	if staked == 0 {
		return 0, fmt.Errorf("farm %s: %w", f.Name, ErrZeroLiquidity)
	}
	return staked, nil
}

// stakePoolState fetches and decodes the farm's staking-pool account.
func (h *hydrator) stakePoolState(ctx context.Context, f model.Farm) (*layout.StakePoolState, error) {
	data, err := h.fetchData(ctx, f.PoolID)
	if err != nil {
		return nil, fmt.Errorf("farm %s stake pool: %w", f.Name, err)
	}
	state, err := layout.DecodeStakePool(data, f.Version)
	if err != nil {
		return nil, fmt.Errorf("farm %s stake pool: %w", f.Name, err)
	}
	return state, nil
}

// annualRewardUSD projects a per-block emission over a year at current prices.
func (h *hydrator) annualRewardUSD(perBlockRaw uint64, reward model.Token) (float64, error) {
	price, err := h.priceUSD(reward.Symbol)
	if err != nil {
		return 0, err
	}
	perBlock := model.NewAmount(perBlockRaw, reward.Decimals)
	return perBlock.Float64() * blocksPerYear * price, nil
}

func (h *hydrator) priceUSD(symbol string) (float64, error) {
	price, ok := h.prices.PriceUSD(symbol)
	if !ok {
		return 0, fmt.Errorf("no usd price for %s", symbol)
	}
	return price, nil
}

func (h *hydrator) fetchData(ctx context.Context, address string) ([]byte, error) {
	key, err := parseAddress(address)
	if err != nil {
		return nil, err
	}
	return h.fetcher.FetchAccount(ctx, key)
}

func selectFarms(reg *registry.Registry, serves func(model.Farm) bool) []model.Farm {
	all := reg.Farms()
	out := make([]model.Farm, 0, len(all))
	for _, f := range all {
		if serves(f) {
			out = append(out, f)
		}
	}
	return out
}

func farmByName(reg *registry.Registry, name string, serves func(model.Farm) bool) (model.Farm, bool) {
	f, ok := reg.FarmByName(name)
	if !ok || !serves(f) {
		return model.Farm{}, false
	}
	return f, true
}

func farmByPoolID(reg *registry.Registry, poolID string, serves func(model.Farm) bool) (model.Farm, bool) {
	f, ok := reg.FarmByPoolID(poolID)
	if !ok || !serves(f) {
		return model.Farm{}, false
	}
	return f, true
}
