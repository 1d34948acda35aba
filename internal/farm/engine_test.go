package farm

import (
	"context"
	"errors"
	"math"
	"math/big"
	"testing"

	"farmscope/internal/model"
	"farmscope/internal/registry"
)

func approxEqual(t *testing.T, got, want float64, label string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
}

func testPrices() *fakePrices {
	return &fakePrices{prices: map[string]float64{
		"RAY":  2.0,
		"USDC": 1.0,
		"SRM":  1.0,
	}}
}

func TestLegacyEngineFarmStatistics(t *testing.T) {
	perShare := big.NewInt(123456789)
	reg := registry.New(
		[]model.Farm{fixtureFarm(3, false, nil)},
		[]model.LiquidityPool{fixturePool()},
		nil,
	)
	fetcher := &fakeFetcher{accounts: fixtureAccounts(buildStakePoolLegacy(perShare, 100))}
	engine := NewLegacyEngine(fetcher, testPrices(), reg, nil)

	stats, err := engine.FarmStatistics(context.Background(), "RAY-USDC")
	if err != nil {
		t.Fatalf("farm statistics: %v", err)
	}

	// 1000 RAY at $2 plus 2000 USDC at $1 over 2000 LP, 500 LP staked.
	approxEqual(t, stats.LiquidityUSD, 4000, "liquidity usd")
	approxEqual(t, stats.LiquidityPerLPToken, 2, "liquidity per lp token")

	annual := 100.0 / 1e6 * blocksPerYear * 2.0
	approxEqual(t, stats.APR, annual/1000*100, "apr")

	if stats.RewardPerShare.BigInt().Cmp(perShare) != 0 {
		t.Fatalf("reward per share = %s, want %s", stats.RewardPerShare, perShare)
	}
	if !stats.RewardPerShareB.IsZero() {
		t.Fatalf("reward per share b = %s, want 0", stats.RewardPerShareB)
	}
}

func TestFusionEngineAPRSumsBothTracks(t *testing.T) {
	perShare := big.NewInt(1000)
	perShareB := big.NewInt(2000)
	srm := model.Token{Symbol: "SRM", Name: "Serum", MintAddress: testKey(0x08).String(), Decimals: 6}
	reg := registry.New(
		[]model.Farm{fixtureFarm(4, true, &srm)},
		[]model.LiquidityPool{fixturePool()},
		nil,
	)
	fetcher := &fakeFetcher{accounts: fixtureAccounts(buildStakePoolV4(perShare, perShareB, 100, 100))}
	engine := NewFusionEngine(fetcher, testPrices(), reg, nil)

	stats, err := engine.FarmStatistics(context.Background(), "RAY-USDC")
	if err != nil {
		t.Fatalf("farm statistics: %v", err)
	}

	annualA := 100.0 / 1e6 * blocksPerYear * 2.0
	annualB := 100.0 / 1e6 * blocksPerYear * 1.0
	approxEqual(t, stats.APR, (annualA+annualB)/1000*100, "apr")

	if stats.RewardPerShareB.BigInt().Cmp(perShareB) != 0 {
		t.Fatalf("reward per share b = %s, want %s", stats.RewardPerShareB, perShareB)
	}
}

func TestEngineServesDisjointFarmSets(t *testing.T) {
	srm := model.Token{Symbol: "SRM", MintAddress: testKey(0x08).String(), Decimals: 6}
	stake := fixtureFarm(2, false, nil)
	stake.Name = "RAY"
	stake.IsStake = true
	stake.PoolID = testKey(0x50).String()
	legacy := fixtureFarm(3, false, nil)
	legacy.Name = "RAY-USDC"
	legacy.PoolID = testKey(0x51).String()
	fusionV4 := fixtureFarm(4, true, &srm)
	fusionV4.Name = "RAY-USDT"
	fusionV4.PoolID = testKey(0x52).String()
	fusionV5 := fixtureFarm(5, true, &srm)
	fusionV5.Name = "RAY-SRM"
	fusionV5.PoolID = testKey(0x53).String()
	reg := registry.New(
		[]model.Farm{stake, legacy, fusionV4, fusionV5},
		[]model.LiquidityPool{fixturePool()},
		nil,
	)

	legacyEngine := NewLegacyEngine(nil, testPrices(), reg, nil)
	fusionEngine := NewFusionEngine(nil, testPrices(), reg, nil)

	got := legacyEngine.Farms()
	if len(got) != 1 || got[0].Name != "RAY-USDC" {
		t.Fatalf("legacy farms = %v", got)
	}
	got = fusionEngine.Farms()
	if len(got) != 2 {
		t.Fatalf("fusion farms = %v", got)
	}

	if _, ok := legacyEngine.FarmByName("RAY"); ok {
		t.Fatalf("legacy engine served a stake farm")
	}
	if _, ok := fusionEngine.FarmByName("RAY-USDC"); ok {
		t.Fatalf("fusion engine served a legacy farm")
	}
	if _, ok := fusionEngine.FarmByPoolID(fusionV5.PoolID); !ok {
		t.Fatalf("fusion engine missed its own pool id")
	}
}

func TestFarmStatisticsUnknownFarm(t *testing.T) {
	reg := registry.New(nil, nil, nil)
	engine := NewLegacyEngine(nil, testPrices(), reg, nil)
	if _, err := engine.FarmStatistics(context.Background(), "nope"); !errors.Is(err, ErrFarmNotFound) {
		t.Fatalf("err = %v, want ErrFarmNotFound", err)
	}
}

func TestFarmStatisticsZeroLPSupply(t *testing.T) {
	reg := registry.New(
		[]model.Farm{fixtureFarm(3, false, nil)},
		[]model.LiquidityPool{fixturePool()},
		nil,
	)
	accounts := fixtureAccounts(buildStakePoolLegacy(big.NewInt(1), 100))
	accounts[addrLPMint] = buildMint(0, 6)
	engine := NewLegacyEngine(&fakeFetcher{accounts: accounts}, testPrices(), reg, nil)

	if _, err := engine.FarmStatistics(context.Background(), "RAY-USDC"); !errors.Is(err, ErrZeroLiquidity) {
		t.Fatalf("err = %v, want ErrZeroLiquidity", err)
	}
}

func TestFarmStatisticsMissingPrice(t *testing.T) {
	reg := registry.New(
		[]model.Farm{fixtureFarm(3, false, nil)},
		[]model.LiquidityPool{fixturePool()},
		nil,
	)
	prices := &fakePrices{prices: map[string]float64{"USDC": 1.0}}
	engine := NewLegacyEngine(&fakeFetcher{accounts: fixtureAccounts(buildStakePoolLegacy(big.NewInt(1), 100))}, prices, reg, nil)

	if _, err := engine.FarmStatistics(context.Background(), "RAY-USDC"); err == nil {
		t.Fatalf("expected error for missing price")
	}
}
