// Package registry holds the static catalogue of tokens, liquidity pools and
// farms the tracker knows about. The catalogue is process-wide, built once,
// and never mutated; lookups hand out value copies so callers can adjust
// their own copy freely.
package registry

import (
	"sync"

	"farmscope/internal/model"
)

// Registry is an immutable catalogue of descriptors.
type Registry struct {
	farms  []model.Farm
	pools  []model.LiquidityPool
	tokens []model.Token
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the built-in mainnet catalogue.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = &Registry{
			farms:  farms,
			pools:  liquidityPools,
			tokens: tokens,
		}
	})
	return defaultReg
}

// New builds a registry from explicit tables. Used by tests.
func New(farms []model.Farm, pools []model.LiquidityPool, tokens []model.Token) *Registry {
	return &Registry{farms: farms, pools: pools, tokens: tokens}
}

// FarmByName returns a copy of the named farm.
func (r *Registry) FarmByName(name string) (model.Farm, bool) {
	for i := range r.farms {
		if r.farms[i].Name == name {
			return cloneFarm(r.farms[i]), true
		}
	}
	return model.Farm{}, false
}

// FarmByPoolID returns a copy of the farm with the given staking pool id.
func (r *Registry) FarmByPoolID(poolID string) (model.Farm, bool) {
	for i := range r.farms {
		if r.farms[i].PoolID == poolID {
			return cloneFarm(r.farms[i]), true
		}
	}
	return model.Farm{}, false
}

// Farms returns copies of every registered farm.
func (r *Registry) Farms() []model.Farm {
	out := make([]model.Farm, 0, len(r.farms))
	for i := range r.farms {
		out = append(out, cloneFarm(r.farms[i]))
	}
	return out
}

// PoolByLPMint returns a copy of the liquidity pool whose LP token has the
// given mint address.
func (r *Registry) PoolByLPMint(mintAddress string) (model.LiquidityPool, bool) {
	for i := range r.pools {
		if r.pools[i].LP.MintAddress == mintAddress {
			return clonePool(r.pools[i]), true
		}
	}
	return model.LiquidityPool{}, false
}

// TokenByMint returns a copy of the token with the given mint address.
func (r *Registry) TokenByMint(mintAddress string) (model.Token, bool) {
	for i := range r.tokens {
		if r.tokens[i].MintAddress == mintAddress {
			return cloneToken(r.tokens[i]), true
		}
	}
	return model.Token{}, false
}

func cloneToken(t model.Token) model.Token {
	if t.TotalSupply != nil {
		supply := *t.TotalSupply
		t.TotalSupply = &supply
	}
	return t
}

func cloneFarm(f model.Farm) model.Farm {
	f.LP = cloneToken(f.LP)
	f.Reward = cloneToken(f.Reward)
	if f.RewardB != nil {
		rb := cloneToken(*f.RewardB)
		f.RewardB = &rb
	}
	return f
}

func clonePool(p model.LiquidityPool) model.LiquidityPool {
	p.Coin = cloneToken(p.Coin)
	p.PC = cloneToken(p.PC)
	p.LP = cloneToken(p.LP)
	return p
}
