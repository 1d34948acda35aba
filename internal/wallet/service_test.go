package wallet

import (
	"context"
	"encoding/binary"
	"testing"

	cosmath "cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"

	"farmscope/internal/chain"
	"farmscope/internal/model"
)

func testKey(fill byte) solana.PublicKey {
	var k solana.PublicKey
	for i := range k {
		k[i] = fill
	}
	return k
}

func buildUserStake(poolID, owner solana.PublicKey, deposit, debt, debtB uint64) []byte {
	buf := make([]byte, 0, 96)
	u64 := func(v uint64) {
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], v)
		buf = append(buf, tmp[:]...)
	}
	u64(1)
	buf = append(buf, poolID[:]...)
	buf = append(buf, owner[:]...)
	u64(deposit)
	u64(debt)
	u64(debtB)
	return buf
}

// fakeScanner serves fixed scan results per program.
type fakeScanner struct {
	byProgram map[solana.PublicKey][]chain.KeyedAccount
}

func (s *fakeScanner) FetchProgramAccounts(_ context.Context, programID, _ solana.PublicKey, _, _ uint64) ([]chain.KeyedAccount, error) {
	return s.byProgram[programID], nil
}

// fakeEngine serves one farm and fixed statistics.
type fakeEngine struct {
	farm  model.Farm
	stats *model.FarmStatistics
}

func (e *fakeEngine) Farms() []model.Farm { return []model.Farm{e.farm} }

func (e *fakeEngine) FarmByName(name string) (model.Farm, bool) {
	if name == e.farm.Name {
		return e.farm, true
	}
	return model.Farm{}, false
}

func (e *fakeEngine) FarmByPoolID(poolID string) (model.Farm, bool) {
	if poolID == e.farm.PoolID {
		return e.farm, true
	}
	return model.Farm{}, false
}

func (e *fakeEngine) FarmStatistics(_ context.Context, name string) (*model.FarmStatistics, error) {
	if name != e.farm.Name {
		return nil, context.Canceled
	}
	return e.stats, nil
}

func stakeProgramKey(t *testing.T, id string) solana.PublicKey {
	t.Helper()
	k, err := solana.PublicKeyFromBase58(id)
	if err != nil {
		t.Fatalf("parse program id: %v", err)
	}
	return k
}

func TestServicePositions(t *testing.T) {
	owner := testKey(0x0a)
	poolID := testKey(0x0b)
	f := model.Farm{
		Name:    "RAY-USDT",
		LP:      model.Token{Symbol: "RAY-USDT", Decimals: 6},
		Reward:  model.Token{Symbol: "RAY", Decimals: 6},
		Version: 4,
		PoolID:  poolID.String(),
	}
	fusion := &fakeEngine{farm: f, stats: &model.FarmStatistics{
		Farm:                f,
		LiquidityPerLPToken: 2.0,
		RewardPerShare:      cosmath.NewInt(2_000_000_000),
		RewardPerShareB:     cosmath.ZeroInt(),
	}}
	legacy := &fakeEngine{farm: model.Farm{Name: "none", PoolID: "none"}}

	v4 := stakeProgramKey(t, stakePrograms[0].programID)
	scanner := &fakeScanner{byProgram: map[solana.PublicKey][]chain.KeyedAccount{
		v4: {
			{Address: testKey(0x0c), Data: buildUserStake(poolID, owner, 500_000_000, 0, 0)},
			// References a pool no engine serves; dropped without error.
			{Address: testKey(0x0d), Data: buildUserStake(testKey(0x0e), owner, 1, 0, 0)},
		},
	}}
	svc := NewService(scanner, legacy, fusion, &fakePrices{prices: map[string]float64{"RAY": 2.0}}, nil)

	positions, err := svc.Positions(context.Background(), owner.String())
	if err != nil {
		t.Fatalf("positions: %v", err)
	}
	if len(positions) != 1 {
		t.Fatalf("positions = %d, want 1", len(positions))
	}

	pos := positions[0]
	if pos.FarmName != "RAY-USDT" || pos.PoolID != poolID.String() {
		t.Fatalf("position farm = %s pool = %s", pos.FarmName, pos.PoolID)
	}
	if pos.LPValueUSD != 1000 || pos.PendingRewardUSD != 2000 {
		t.Fatalf("lp usd = %v, pending usd = %v; want 1000, 2000", pos.LPValueUSD, pos.PendingRewardUSD)
	}
	if pos.StakeAccountAddress != testKey(0x0c).String() {
		t.Fatalf("stake account = %s", pos.StakeAccountAddress)
	}
}

func TestServicePositionsForWallets(t *testing.T) {
	scanner := &fakeScanner{byProgram: map[solana.PublicKey][]chain.KeyedAccount{}}
	engine := &fakeEngine{farm: model.Farm{Name: "none", PoolID: "none"}}
	svc := NewService(scanner, engine, engine, &fakePrices{prices: map[string]float64{}}, nil)

	wallets := []string{testKey(0x01).String(), testKey(0x02).String()}
	out := svc.PositionsForWallets(context.Background(), wallets, 2)
	if len(out) != 2 {
		t.Fatalf("wallets = %d, want 2", len(out))
	}
	for _, w := range wallets {
		if _, ok := out[w]; !ok {
			t.Fatalf("missing wallet %s", w)
		}
	}
}
