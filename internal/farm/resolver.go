package farm

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"farmscope/internal/layout"
	"farmscope/internal/model"
	"farmscope/internal/registry"
)

// AccountFetcher reads raw account data from the ledger, singly or batched.
type AccountFetcher interface {
	FetchAccount(ctx context.Context, address solana.PublicKey) ([]byte, error)
	FetchMultipleAccounts(ctx context.Context, addresses []solana.PublicKey) ([][]byte, error)
}

// PoolResolver hydrates a liquidity pool descriptor with live balances. Each
// Resolve is a fresh read; results are owned by the caller and never cached.
type PoolResolver struct {
	fetcher AccountFetcher
	logger  *zap.Logger
}

func NewPoolResolver(fetcher AccountFetcher, logger *zap.Logger) *PoolResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PoolResolver{fetcher: fetcher, logger: logger.Named("resolver")}
}

// Resolve fetches the pool's five accounts in one batch, then decodes them
// in order: coin and quote vaults, AMM open orders, AMM state, LP mint,
// folding each into the pool's reserves. Any fetch or decode failure aborts
// the resolve with no partial result.
func (r *PoolResolver) Resolve(ctx context.Context, pool model.LiquidityPool) (*model.HydratedPool, error) {
	if r.fetcher == nil {
		return nil, fmt.Errorf("account fetcher is nil")
	}

	addresses := []string{
		pool.PoolCoinTokenAccount,
		pool.PoolPCTokenAccount,
		pool.AmmOpenOrders,
		pool.AmmID,
		pool.LP.MintAddress,
	}
	keys := make([]solana.PublicKey, len(addresses))
	for i, address := range addresses {
		key, err := parseAddress(address)
		if err != nil {
			return nil, fmt.Errorf("pool %s: %w", pool.Name, err)
		}
		keys[i] = key
	}

	datas, err := r.fetcher.FetchMultipleAccounts(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("pool %s accounts: %w", pool.Name, err)
	}

	coinVault, err := layout.DecodeTokenAccount(datas[0])
	if err != nil {
		return nil, fmt.Errorf("pool %s coin vault: %w", pool.Name, err)
	}
	pcVault, err := layout.DecodeTokenAccount(datas[1])
	if err != nil {
		return nil, fmt.Errorf("pool %s pc vault: %w", pool.Name, err)
	}

	coin := model.NewAmount(coinVault.Amount, pool.Coin.Decimals)
	pc := model.NewAmount(pcVault.Amount, pool.PC.Decimals)

	openOrders, err := layout.DecodeOpenOrders(datas[2], openOrdersVersion(pool))
	if err != nil {
		return nil, fmt.Errorf("pool %s open orders: %w", pool.Name, err)
	}
	coin = coin.AddRaw(openOrders.BaseTokenTotal)
	pc = pc.AddRaw(openOrders.QuoteTokenTotal)

	state, err := layout.DecodeAmmState(datas[3], layout.AmmVersion(pool.Version))
	if err != nil {
		return nil, fmt.Errorf("pool %s amm state: %w", pool.Name, err)
	}
	coin = coin.SubRaw(state.NeedTakePnlCoin)
	pc = pc.SubRaw(state.NeedTakePnlPc)

	var fees *model.SwapFees
	if state.Fees != nil {
		fees = &model.SwapFees{
			SwapFeeNumerator:   state.Fees.SwapFeeNumerator,
			SwapFeeDenominator: state.Fees.SwapFeeDenominator,
		}
	}

	mint, err := layout.DecodeMint(datas[4])
	if err != nil {
		return nil, fmt.Errorf("pool %s lp mint: %w", pool.Name, err)
	}

	return &model.HydratedPool{
		Pool:          pool,
		CoinBalance:   coin,
		PCBalance:     pc,
		LPTotalSupply: model.NewAmount(mint.Supply, mint.Decimals),
		Fees:          fees,
	}, nil
}

// openOrdersVersion picks the open-orders layout from the pool's order-book
// program, never from buffer contents.
func openOrdersVersion(pool model.LiquidityPool) layout.OpenOrdersVersion {
	if pool.SerumProgramID == registry.SerumProgramIDV3 {
		return layout.OpenOrdersV2
	}
	return layout.OpenOrdersLegacy
}

func parseAddress(address string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("parse address %s: %w", address, err)
	}
	return key, nil
}
