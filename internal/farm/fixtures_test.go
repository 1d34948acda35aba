package farm

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"

	"farmscope/internal/layout"
	"farmscope/internal/model"
	"farmscope/internal/registry"
)

// buffer builds little-endian account fixtures field by field.
type buffer struct {
	data []byte
}

func (b *buffer) u8(v uint8) *buffer {
	b.data = append(b.data, v)
	return b
}

func (b *buffer) u64(v uint64) *buffer {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
	return b
}

func (b *buffer) u128(v *big.Int) *buffer {
	var tmp [16]byte
	raw := v.Bytes() // big-endian
	for i, by := range raw {
		tmp[len(raw)-1-i] = by
	}
	b.data = append(b.data, tmp[:]...)
	return b
}

func (b *buffer) pubkey(k solana.PublicKey) *buffer {
	b.data = append(b.data, k[:]...)
	return b
}

func (b *buffer) pad(n int) *buffer {
	b.data = append(b.data, make([]byte, n)...)
	return b
}

func testKey(fill byte) solana.PublicKey {
	var k solana.PublicKey
	for i := range k {
		k[i] = fill
	}
	return k
}

// fakeFetcher serves fixed account data by address.
type fakeFetcher struct {
	accounts map[solana.PublicKey][]byte
}

func (f *fakeFetcher) FetchAccount(_ context.Context, address solana.PublicKey) ([]byte, error) {
	data, ok := f.accounts[address]
	if !ok {
		return nil, fmt.Errorf("account %s not found", address)
	}
	return data, nil
}

func (f *fakeFetcher) FetchMultipleAccounts(ctx context.Context, addresses []solana.PublicKey) ([][]byte, error) {
	out := make([][]byte, len(addresses))
	for i, address := range addresses {
		data, err := f.FetchAccount(ctx, address)
		if err != nil {
			return nil, err
		}
		out[i] = data
	}
	return out, nil
}

// fakePrices serves a fixed symbol price table.
type fakePrices struct {
	prices map[string]float64
}

func (p *fakePrices) PriceUSD(symbol string) (float64, bool) {
	v, ok := p.prices[symbol]
	return v, ok
}

func buildTokenAccount(mint, owner solana.PublicKey, amount uint64) []byte {
	b := &buffer{}
	b.pubkey(mint).pubkey(owner).u64(amount).pad(layout.TokenAccountSpan - 72)
	return b.data
}

func buildMint(supply uint64, decimals uint8) []byte {
	b := &buffer{}
	b.pad(36).u64(supply).u8(decimals).pad(layout.MintSpan - 45)
	return b.data
}

func buildOpenOrdersV2(baseTotal, quoteTotal uint64) []byte {
	b := &buffer{}
	b.pad(5).u64(3) // head padding, account flags
	b.pubkey(testKey(0xaa)).pubkey(testKey(0xbb))
	b.u64(0).u64(baseTotal).u64(0).u64(quoteTotal)
	b.pad(layout.OpenOrdersV2Span - len(b.data))
	return b.data
}

func buildAmmV4(needTakePnlCoin, needTakePnlPc, swapFeeNum, swapFeeDen uint64) []byte {
	b := &buffer{}
	for i := 0; i < 16; i++ { // status .. systemDecimalsValue
		b.u64(uint64(i + 1))
	}
	b.u64(5).u64(1000).u64(25).u64(10000).u64(12).u64(100) // fee block head
	b.u64(swapFeeNum).u64(swapFeeDen)
	b.u64(needTakePnlCoin).u64(needTakePnlPc)
	b.pad(16).pad(32)
	b.u128(big.NewInt(0)).u128(big.NewInt(0)).pad(8)
	b.u128(big.NewInt(0)).u128(big.NewInt(0)).pad(8)
	for i := 0; i < 13; i++ {
		b.pubkey(testKey(byte(0x40 + i)))
	}
	return b.data
}

func buildStakePoolLegacy(perShare *big.Int, perBlock uint64) []byte {
	b := &buffer{}
	b.u64(1).u64(255)
	b.pubkey(testKey(0x21)).pubkey(testKey(0x22)).pubkey(testKey(0x23))
	b.pad(32).pad(16) // fee owner, feeY, feeX
	b.u64(777).u128(perShare).u64(4242).u64(perBlock)
	return b.data
}

func buildStakePoolV4(perShare, perShareB *big.Int, perBlock, perBlockB uint64) []byte {
	b := &buffer{}
	b.u64(1).u64(255)
	b.pubkey(testKey(0x21)).pubkey(testKey(0x22))
	b.u64(777).u128(perShare).u64(perBlock)
	b.u8(1).pubkey(testKey(0x24)).pad(7)
	b.u64(888).u128(perShareB).u64(perBlockB)
	b.u64(4242).pubkey(testKey(0x23))
	return b.data
}

// Fixture addresses shared across engine tests.
var (
	addrCoinVault = testKey(0x01)
	addrPCVault   = testKey(0x02)
	addrOpenOrder = testKey(0x03)
	addrAmm       = testKey(0x04)
	addrLPMint    = testKey(0x05)
	addrStakePool = testKey(0x10)
	addrLPVault   = testKey(0x11)
)

func fixtureTokens() (coin, pc, lp model.Token) {
	coin = model.Token{Symbol: "RAY", Name: "Raydium", MintAddress: testKey(0x06).String(), Decimals: 6}
	pc = model.Token{Symbol: "USDC", Name: "USD Coin", MintAddress: testKey(0x07).String(), Decimals: 6}
	lp = model.Token{Symbol: "RAY-USDC", Name: "RAY-USDC LP", MintAddress: addrLPMint.String(), Decimals: 6}
	return coin, pc, lp
}

func fixturePool() model.LiquidityPool {
	coin, pc, lp := fixtureTokens()
	return model.LiquidityPool{
		Name:                 "RAY-USDC",
		Coin:                 coin,
		PC:                   pc,
		LP:                   lp,
		Version:              4,
		AmmID:                addrAmm.String(),
		AmmOpenOrders:        addrOpenOrder.String(),
		PoolCoinTokenAccount: addrCoinVault.String(),
		PoolPCTokenAccount:   addrPCVault.String(),
		SerumProgramID:       registry.SerumProgramIDV3,
	}
}

func fixtureFarm(version int, fusion bool, rewardB *model.Token) model.Farm {
	coin, _, lp := fixtureTokens()
	return model.Farm{
		Name:               "RAY-USDC",
		LP:                 lp,
		Reward:             coin,
		RewardB:            rewardB,
		Fusion:             fusion,
		Version:            version,
		PoolID:             addrStakePool.String(),
		PoolLPTokenAccount: addrLPVault.String(),
	}
}

// fixtureAccounts wires the standard scenario: 1000 coin against 2000 quote
// in the vaults, 2000 LP outstanding, 500 LP staked in the farm vault.
func fixtureAccounts(stakePool []byte) map[solana.PublicKey][]byte {
	pool := fixturePool()
	coinMint, _ := solana.PublicKeyFromBase58(pool.Coin.MintAddress)
	pcMint, _ := solana.PublicKeyFromBase58(pool.PC.MintAddress)
	return map[solana.PublicKey][]byte{
		addrCoinVault: buildTokenAccount(coinMint, testKey(0x30), 1_000_000_000),
		addrPCVault:   buildTokenAccount(pcMint, testKey(0x30), 2_000_000_000),
		addrOpenOrder: buildOpenOrdersV2(0, 0),
		addrAmm:       buildAmmV4(0, 0, 25, 10000),
		addrLPMint:    buildMint(2_000_000_000, 6),
		addrLPVault:   buildTokenAccount(addrLPMint, testKey(0x31), 500_000_000),
		addrStakePool: stakePool,
	}
}
