package wallet

import (
	"context"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"farmscope/internal/chain"
	"farmscope/internal/farm"
	"farmscope/internal/layout"
	"farmscope/internal/model"
	"farmscope/internal/registry"
)

// ProgramScanner enumerates program-owned accounts by owner and data size.
type ProgramScanner interface {
	FetchProgramAccounts(ctx context.Context, programID, owner solana.PublicKey, ownerOffset, dataSize uint64) ([]chain.KeyedAccount, error)
}

// Service enumerates a wallet's stake accounts across the staking programs
// and values each one. Stake accounts referencing pools no farm claims are
// silently dropped.
type Service struct {
	scanner ProgramScanner
	legacy  farm.Engine
	fusion  farm.Engine
	calc    *Calculator
	logger  *zap.Logger
}

func NewService(scanner ProgramScanner, legacy, fusion farm.Engine, prices farm.PriceSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		scanner: scanner,
		legacy:  legacy,
		fusion:  fusion,
		calc:    NewCalculator(prices),
		logger:  logger.Named("wallet"),
	}
}

// stakeProgram pairs a staking program with the user-account layout version
// its accounts decode at.
type stakeProgram struct {
	programID string
	version   int
}

var stakePrograms = []stakeProgram{
	{programID: registry.StakeProgramIDV4, version: 4},
	{programID: registry.StakeProgramIDV5, version: 5},
}

// Positions computes every stake position held by one wallet. Failures on a
// single account are logged and skipped; siblings are unaffected.
func (s *Service) Positions(ctx context.Context, wallet string) ([]model.StakePosition, error) {
	owner, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return nil, fmt.Errorf("parse wallet %s: %w", wallet, err)
	}

	statsCache := make(map[string]*model.FarmStatistics)
	var positions []model.StakePosition

	for _, prog := range stakePrograms {
		programID, err := solana.PublicKeyFromBase58(prog.programID)
		if err != nil {
			return nil, fmt.Errorf("parse program %s: %w", prog.programID, err)
		}
		accounts, err := s.scanner.FetchProgramAccounts(ctx, programID, owner, layout.StakerOwnerOffset, layout.UserStakeV4Span)
		if err != nil {
			return nil, fmt.Errorf("scan stake program %s: %w", prog.programID, err)
		}

		for _, acc := range accounts {
			pos := s.position(ctx, acc, prog.version, statsCache)
			if pos != nil {
				positions = append(positions, *pos)
			}
		}
	}

	return positions, nil
}

func (s *Service) position(ctx context.Context, acc chain.KeyedAccount, version int, statsCache map[string]*model.FarmStatistics) *model.StakePosition {
	stake, err := layout.DecodeUserStake(acc.Data, version)
	if err != nil {
		s.logger.Warn("decode user stake", zap.String("address", acc.Address.String()), zap.Error(err))
		return nil
	}

	poolID := stake.PoolID.String()
	f, engine, ok := s.farmFor(poolID)
	if !ok {
		// Unknown or delisted pool, not an error.
		return nil
	}

	stats, ok := statsCache[f.Name]
	if !ok {
		stats, err = engine.FarmStatistics(ctx, f.Name)
		if err != nil {
			s.logger.Warn("farm statistics", zap.String("farm", f.Name), zap.Error(err))
			return nil
		}
		statsCache[f.Name] = stats
	}

	rewardBDecimals := uint8(0)
	if f.RewardB != nil {
		rewardBDecimals = f.RewardB.Decimals
	}
	acct := model.StakeAccount{
		Address:        acc.Address.String(),
		PoolID:         poolID,
		DepositBalance: model.NewAmount(stake.DepositBalance, f.LP.Decimals),
		RewardDebt:     model.NewAmount(stake.RewardDebt, f.Reward.Decimals),
		RewardDebtB:    model.NewAmount(stake.RewardDebtB, rewardBDecimals),
	}

	pos, err := s.calc.Position(acct, f, stats)
	if err != nil {
		s.logger.Warn("value position", zap.String("address", acct.Address), zap.Error(err))
		return nil
	}
	return pos
}

func (s *Service) farmFor(poolID string) (model.Farm, farm.Engine, bool) {
	if f, ok := s.fusion.FarmByPoolID(poolID); ok {
		return f, s.fusion, true
	}
	if f, ok := s.legacy.FarmByPoolID(poolID); ok {
		return f, s.legacy, true
	}
	return model.Farm{}, nil, false
}

// PositionsForWallets fans wallets out concurrently. A failed wallet is
// logged and omitted from the result.
func (s *Service) PositionsForWallets(ctx context.Context, wallets []string, concurrency int) map[string][]model.StakePosition {
	if concurrency <= 0 {
		concurrency = 4
	}

	var mu sync.Mutex
	out := make(map[string][]model.StakePosition, len(wallets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, wallet := range wallets {
		wallet := wallet
		g.Go(func() error {
			positions, err := s.Positions(ctx, wallet)
			if err != nil {
				s.logger.Warn("wallet positions", zap.String("wallet", wallet), zap.Error(err))
				return nil
			}
			mu.Lock()
			out[wallet] = positions
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return out
}
