package layout

import (
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
)

// AmmVersion selects which historical AMM state layout to decode. Dispatch is
// always on the descriptor's version, never on buffer contents.
type AmmVersion int

const (
	AmmV2 AmmVersion = 2
	AmmV3 AmmVersion = 3
	AmmV4 AmmVersion = 4
)

// Byte spans of the three AMM state layouts.
const (
	AmmStateV2Span = 624
	AmmStateV3Span = 680
	AmmStateV4Span = 752
)

// AmmState is the decoded AMM pool state. NeedTakePnlCoin/Pc are present in
// every version; the swap fee ratio only exists in v4 (Fees nil otherwise).
type AmmState struct {
	Version AmmVersion

	Status              uint64
	Nonce               uint64
	OrderNum            uint64
	Depth               uint64
	CoinDecimals        uint64
	PCDecimals          uint64
	State               uint64
	ResetFlag           uint64
	MinSize             uint64
	VolMaxCutRatio      uint64
	AmountWaveRatio     uint64
	CoinLotSize         uint64
	PCLotSize           uint64
	MinPriceMultiplier  uint64
	MaxPriceMultiplier  uint64
	SystemDecimalsValue uint64

	NeedTakePnlCoin uint64
	NeedTakePnlPc   uint64

	Fees *AmmFees

	PoolCoinTokenAccount solana.PublicKey
	PoolPCTokenAccount   solana.PublicKey
	CoinMint             solana.PublicKey
	PCMint               solana.PublicKey
	LPMint               solana.PublicKey
	AmmOpenOrders        solana.PublicKey
	SerumMarket          solana.PublicKey
	SerumProgramID       solana.PublicKey
	AmmTargetOrders      solana.PublicKey
	PoolWithdrawQueue    solana.PublicKey
	PoolTempLPTokenAccount solana.PublicKey
	AmmOwner             solana.PublicKey
	PnlOwner             solana.PublicKey

	// v4 cumulative swap statistics, widened from u128.
	SwapCoinInAmount  *big.Int
	SwapPCOutAmount   *big.Int
	SwapPCInAmount    *big.Int
	SwapCoinOutAmount *big.Int
}

// AmmFees is the v4 fee block.
type AmmFees struct {
	MinSeparateNumerator   uint64
	MinSeparateDenominator uint64
	TradeFeeNumerator      uint64
	TradeFeeDenominator    uint64
	PnlNumerator           uint64
	PnlDenominator         uint64
	SwapFeeNumerator       uint64
	SwapFeeDenominator     uint64
}

// DecodeAmmState decodes an AMM state account at the given layout version.
func DecodeAmmState(data []byte, version AmmVersion) (*AmmState, error) {
	switch version {
	case AmmV2:
		return decodeAmmV2(data)
	case AmmV3:
		return decodeAmmV3(data)
	case AmmV4:
		return decodeAmmV4(data)
	default:
		return nil, fmt.Errorf("unsupported amm layout version %d", version)
	}
}

func decodeAmmV2(data []byte) (*AmmState, error) {
	if len(data) != AmmStateV2Span {
		return nil, lengthError("amm state", int(AmmV2), len(data), AmmStateV2Span)
	}
	r := &reader{data: data}

	s := &AmmState{Version: AmmV2}
	s.Status = r.u64()
	s.Nonce = r.u64()
	s.OrderNum = r.u64()
	s.Depth = r.u64()
	s.CoinDecimals = r.u64()
	s.PCDecimals = r.u64()
	s.State = r.u64()
	s.ResetFlag = r.u64()
	r.skip(8) // fee
	s.MinSize = r.u64()
	s.VolMaxCutRatio = r.u64()
	r.skip(8) // pnlRatio
	s.AmountWaveRatio = r.u64()
	s.CoinLotSize = r.u64()
	s.PCLotSize = r.u64()
	s.MinPriceMultiplier = r.u64()
	s.MaxPriceMultiplier = r.u64()
	s.NeedTakePnlCoin = r.u64()
	s.NeedTakePnlPc = r.u64()
	r.skip(16) // totalPnlX, totalPnlY
	s.SystemDecimalsValue = r.u64()

	s.PoolCoinTokenAccount = r.pubkey()
	s.PoolPCTokenAccount = r.pubkey()
	s.CoinMint = r.pubkey()
	s.PCMint = r.pubkey()
	s.LPMint = r.pubkey()
	s.AmmOpenOrders = r.pubkey()
	s.SerumMarket = r.pubkey()
	s.SerumProgramID = r.pubkey()
	s.AmmTargetOrders = r.pubkey()
	r.skip(32) // ammQuantities
	s.PoolWithdrawQueue = r.pubkey()
	s.PoolTempLPTokenAccount = r.pubkey()
	s.AmmOwner = r.pubkey()
	s.PnlOwner = r.pubkey()

	return s, nil
}

func decodeAmmV3(data []byte) (*AmmState, error) {
	if len(data) != AmmStateV3Span {
		return nil, lengthError("amm state", int(AmmV3), len(data), AmmStateV3Span)
	}
	r := &reader{data: data}

	s := &AmmState{Version: AmmV3}
	s.Status = r.u64()
	s.Nonce = r.u64()
	s.OrderNum = r.u64()
	s.Depth = r.u64()
	s.CoinDecimals = r.u64()
	s.PCDecimals = r.u64()
	s.State = r.u64()
	s.ResetFlag = r.u64()
	r.skip(16) // fee, minSeparate
	s.MinSize = r.u64()
	s.VolMaxCutRatio = r.u64()
	r.skip(8) // pnlRatio
	s.AmountWaveRatio = r.u64()
	s.CoinLotSize = r.u64()
	s.PCLotSize = r.u64()
	s.MinPriceMultiplier = r.u64()
	s.MaxPriceMultiplier = r.u64()
	s.NeedTakePnlCoin = r.u64()
	s.NeedTakePnlPc = r.u64()
	r.skip(32) // totalPnlX, totalPnlY, poolTotalDepositPc, poolTotalDepositCoin
	s.SystemDecimalsValue = r.u64()

	s.PoolCoinTokenAccount = r.pubkey()
	s.PoolPCTokenAccount = r.pubkey()
	s.CoinMint = r.pubkey()
	s.PCMint = r.pubkey()
	s.LPMint = r.pubkey()
	s.AmmOpenOrders = r.pubkey()
	s.SerumMarket = r.pubkey()
	s.SerumProgramID = r.pubkey()
	s.AmmTargetOrders = r.pubkey()
	r.skip(32) // ammQuantities
	s.PoolWithdrawQueue = r.pubkey()
	s.PoolTempLPTokenAccount = r.pubkey()
	s.AmmOwner = r.pubkey()
	s.PnlOwner = r.pubkey()
	r.skip(32) // srmTokenAccount

	return s, nil
}

func decodeAmmV4(data []byte) (*AmmState, error) {
	if len(data) != AmmStateV4Span {
		return nil, lengthError("amm state", int(AmmV4), len(data), AmmStateV4Span)
	}
	r := &reader{data: data}

	s := &AmmState{Version: AmmV4}
	s.Status = r.u64()
	s.Nonce = r.u64()
	s.OrderNum = r.u64()
	s.Depth = r.u64()
	s.CoinDecimals = r.u64()
	s.PCDecimals = r.u64()
	s.State = r.u64()
	s.ResetFlag = r.u64()
	s.MinSize = r.u64()
	s.VolMaxCutRatio = r.u64()
	s.AmountWaveRatio = r.u64()
	s.CoinLotSize = r.u64()
	s.PCLotSize = r.u64()
	s.MinPriceMultiplier = r.u64()
	s.MaxPriceMultiplier = r.u64()
	s.SystemDecimalsValue = r.u64()

	fees := &AmmFees{}
	fees.MinSeparateNumerator = r.u64()
	fees.MinSeparateDenominator = r.u64()
	fees.TradeFeeNumerator = r.u64()
	fees.TradeFeeDenominator = r.u64()
	fees.PnlNumerator = r.u64()
	fees.PnlDenominator = r.u64()
	fees.SwapFeeNumerator = r.u64()
	fees.SwapFeeDenominator = r.u64()
	s.Fees = fees

	s.NeedTakePnlCoin = r.u64()
	s.NeedTakePnlPc = r.u64()
	r.skip(16) // totalPnlPc, totalPnlCoin
	r.skip(32) // poolTotalDepositPc, poolTotalDepositCoin (u128 x2)
	s.SwapCoinInAmount = r.u128()
	s.SwapPCOutAmount = r.u128()
	r.skip(8) // swapCoin2PcFee
	s.SwapPCInAmount = r.u128()
	s.SwapCoinOutAmount = r.u128()
	r.skip(8) // swapPc2CoinFee

	s.PoolCoinTokenAccount = r.pubkey()
	s.PoolPCTokenAccount = r.pubkey()
	s.CoinMint = r.pubkey()
	s.PCMint = r.pubkey()
	s.LPMint = r.pubkey()
	s.AmmOpenOrders = r.pubkey()
	s.SerumMarket = r.pubkey()
	s.SerumProgramID = r.pubkey()
	s.AmmTargetOrders = r.pubkey()
	s.PoolWithdrawQueue = r.pubkey()
	s.PoolTempLPTokenAccount = r.pubkey()
	s.AmmOwner = r.pubkey()
	s.PnlOwner = r.pubkey()

	return s, nil
}
