package registry

import "farmscope/internal/model"

// Program identifiers for the on-chain programs the tracker reads.
const (
	TokenProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

	LiquidityProgramIDV4 = "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8"

	SerumProgramIDV2 = "EUqojwWA2rd19FZrzeBncJsm38Jm1hEhE3zsmX3bRc2o"
	SerumProgramIDV3 = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"

	StakeProgramID   = "EhhTKczWMGQt46ynNeRX1WfeagwwJd7ufHvCDjRxjo5Q"
	StakeProgramIDV4 = "CBuCnLe26faBpcBP2fktp4rp8abpcAnTWft6ZrP5Q4T9"
	StakeProgramIDV5 = "9KEPoZmtHUrBbhWN1v1KWLMkkvwY6WLtAVUCPRtRjP4z"
)

var (
	tokenRAY = model.Token{
		Symbol: "RAY", Name: "Raydium",
		MintAddress: "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R",
		Decimals:    6,
	}
	tokenWSOL = model.Token{
		Symbol: "SOL", Name: "Wrapped Solana",
		MintAddress: "So11111111111111111111111111111111111111112",
		Decimals:    9,
	}
	tokenUSDC = model.Token{
		Symbol: "USDC", Name: "USD Coin",
		MintAddress: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		Decimals:    6,
	}
	tokenUSDT = model.Token{
		Symbol: "USDT", Name: "USDT",
		MintAddress: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB",
		Decimals:    6,
	}
	tokenSRM = model.Token{
		Symbol: "SRM", Name: "Serum",
		MintAddress: "SRMuApVNdxXokk5GT7XD5cUUgXMBCoAz2LHeuAoKWRt",
		Decimals:    6,
	}

	lpRayUSDC = model.Token{
		Symbol: "RAY-USDC", Name: "Raydium LP Token V4 (RAY-USDC)",
		MintAddress: "FbC6K13MzHvN42bXrtGaWsvZY9fxrackRSZcBGfjPc7m",
		Decimals:    6,
	}
	lpRaySOL = model.Token{
		Symbol: "RAY-SOL", Name: "Raydium LP Token V4 (RAY-SOL)",
		MintAddress: "89ZKE4aoyfLBe2RuV6jM3JGNhaV18Nxh8eNtjRcndBip",
		Decimals:    6,
	}
	lpRayUSDT = model.Token{
		Symbol: "RAY-USDT", Name: "Raydium LP Token V4 (RAY-USDT)",
		MintAddress: "C3sT1R3nsw4AVdepvLTLKr5Gvszr7jufyu8eHPNxfqj2",
		Decimals:    6,
	}
	lpRaySRM = model.Token{
		Symbol: "RAY-SRM", Name: "Raydium LP Token V4 (RAY-SRM)",
		MintAddress: "7P5Thr9Egi2rvMmEuQkLn8x8e8Qro7u2U7yLD2tU2Hbe",
		Decimals:    6,
	}
)

var tokens = []model.Token{
	tokenRAY,
	tokenWSOL,
	tokenUSDC,
	tokenUSDT,
	tokenSRM,
	lpRayUSDC,
	lpRaySOL,
	lpRayUSDT,
	lpRaySRM,
}
