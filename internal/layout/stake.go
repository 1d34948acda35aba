package layout

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
)

// Byte spans of the staking-pool state layouts.
const (
	StakePoolLegacySpan = 200
	StakePoolV4Span     = 224
)

// StakePoolState is the decoded staking-pool account. Legacy pools carry a
// single reward track; v4/v5 pools add the B track. The accumulators are
// u128 on the wire and stay arbitrary-precision here.
type StakePoolState struct {
	State uint64
	Nonce uint64

	PoolLPTokenAccount     solana.PublicKey
	PoolRewardTokenAccount solana.PublicKey
	Owner                  solana.PublicKey

	TotalReward    uint64
	RewardPerShare *big.Int
	RewardPerBlock uint64
	LastBlock      uint64

	// Second reward track, v4/v5 only.
	Option                  uint8
	PoolRewardTokenAccountB solana.PublicKey
	TotalRewardB            uint64
	RewardPerShareB         *big.Int
	RewardPerBlockB         uint64
}

// DecodeStakePool decodes a staking-pool account. Versions 4 and 5 share the
// extended layout; every other version uses the legacy one. Which divisor
// applies to the accumulator is a property of the version, not the layout,
// and lives with the position math.
func DecodeStakePool(data []byte, version int) (*StakePoolState, error) {
	if version == 4 || version == 5 {
		return decodeStakePoolV4(data, version)
	}
	return decodeStakePoolLegacy(data, version)
}

func decodeStakePoolLegacy(data []byte, version int) (*StakePoolState, error) {
	if len(data) != StakePoolLegacySpan {
		return nil, lengthError("stake pool", version, len(data), StakePoolLegacySpan)
	}
	r := &reader{data: data}

	s := &StakePoolState{}
	s.State = r.u64()
	s.Nonce = r.u64()
	s.PoolLPTokenAccount = r.pubkey()
	s.PoolRewardTokenAccount = r.pubkey()
	s.Owner = r.pubkey()
	r.skip(32) // feeOwner
	r.skip(16) // feeY, feeX
	s.TotalReward = r.u64()
	s.RewardPerShare = r.u128()
	s.LastBlock = r.u64()
	s.RewardPerBlock = r.u64()

	return s, nil
}

func decodeStakePoolV4(data []byte, version int) (*StakePoolState, error) {
	if len(data) != StakePoolV4Span {
		return nil, lengthError("stake pool", version, len(data), StakePoolV4Span)
	}
	r := &reader{data: data}

	s := &StakePoolState{}
	s.State = r.u64()
	s.Nonce = r.u64()
	s.PoolLPTokenAccount = r.pubkey()
	s.PoolRewardTokenAccount = r.pubkey()
	s.TotalReward = r.u64()
	s.RewardPerShare = r.u128()
	s.RewardPerBlock = r.u64()
	s.Option = r.u8()
	s.PoolRewardTokenAccountB = r.pubkey()
	r.skip(7) // wire padding between the reward tracks
	s.TotalRewardB = r.u64()
	s.RewardPerShareB = r.u128()
	s.RewardPerBlockB = r.u64()
	s.LastBlock = r.u64()
	s.Owner = r.pubkey()

	return s, nil
}
