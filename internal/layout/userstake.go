package layout

import "github.com/gagliardetto/solana-go"

// Byte spans of the user stake-account layouts.
const (
	UserStakeLegacySpan = 88
	UserStakeV4Span     = 96
)

// StakerOwnerOffset is the byte offset of the staker's wallet inside a user
// stake account, used for program-account memcmp filtering.
const StakerOwnerOffset = 40

// UserStakeAccount is a wallet's decoded staking account.
type UserStakeAccount struct {
	State          uint64
	PoolID         solana.PublicKey
	StakerOwner    solana.PublicKey
	DepositBalance uint64
	RewardDebt     uint64
	RewardDebtB    uint64
}

// DecodeUserStake decodes a user stake account. The v4 layout adds the
// second reward-debt field used by dual-reward pools.
func DecodeUserStake(data []byte, version int) (*UserStakeAccount, error) {
	span := UserStakeLegacySpan
	if version == 4 || version == 5 {
		span = UserStakeV4Span
	}
	if len(data) != span {
		return nil, lengthError("user stake", version, len(data), span)
	}
	r := &reader{data: data}

	u := &UserStakeAccount{}
	u.State = r.u64()
	u.PoolID = r.pubkey()
	u.StakerOwner = r.pubkey()
	u.DepositBalance = r.u64()
	u.RewardDebt = r.u64()
	if span == UserStakeV4Span {
		u.RewardDebtB = r.u64()
	}

	return u, nil
}
