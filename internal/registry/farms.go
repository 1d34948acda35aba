package registry

import "farmscope/internal/model"

var farms = []model.Farm{
	{
		Name:    "RAY",
		LP:      tokenRAY,
		Reward:  tokenRAY,
		IsStake: true,
		Version: 2,

		ProgramID:     StakeProgramID,
		PoolID:        "4EwbZo8BZXP5313z5A2H11MRBP15M5n6YxfmkjXESKAW",
		PoolAuthority: "4qD717qKoj3Sm8YfHMSR7tSKjWn5An817nArA6nGdcUR",

		PoolLPTokenAccount:     "8tnpAECxAT9nHBqR1Ba494Ar5dQMPGhL31MmPJz1zZvY",
		PoolRewardTokenAccount: "BihEG2r7hYax6EherbRmuLLrySBuSXx4PYGd9gAsktKY",
	},
	{
		Name:    "RAY-USDC",
		LP:      lpRayUSDC,
		Reward:  tokenRAY,
		Version: 3,

		ProgramID:     StakeProgramID,
		PoolID:        "CHYrUBX2RKX8iBg7gYTkccoGNBzP44LdaazMHCLcdEgS",
		PoolAuthority: "5KQFnDd33J5NaMC9hQ64P5XzaaSz8Pt7NBCkZFYn1po",

		PoolLPTokenAccount:     "BNnXLFGva3K8ACruAc1gaP49NCbLkyE6xWhGV4G2HLrs",
		PoolRewardTokenAccount: "DpRueBHHhrQNvrjZX7CwGitJDJ8eZc3AHcyFMG4LqCQR",
	},
	{
		Name:    "RAY-SOL",
		LP:      lpRaySOL,
		Reward:  tokenRAY,
		Version: 3,

		ProgramID:     StakeProgramID,
		PoolID:        "HUDr9BDaAGqi37xbQHzxCyXvfMCKPTPNF8g9c9bPu1Fu",
		PoolAuthority: "9VbmvaaPeNAke2MAL3h2Fw82VubH1tBCzwBzaWybGKiG",

		PoolLPTokenAccount:     "A4xQv2BQPB1WxsjiCC7tcMH7zUq255uCBkevFj8qSCyJ",
		PoolRewardTokenAccount: "6zA5RAQYgazm4dniS8AigjGFtRi4xneqjL7ehrSqCmhr",
	},
	{
		Name:      "RAY-USDT",
		LP:        lpRayUSDT,
		Reward:    tokenRAY,
		RewardB:   &tokenSRM,
		Fusion:    true,
		DualYield: true,
		Version:   4,

		ProgramID:     StakeProgramIDV4,
		PoolID:        "AvbVWpBi2e4C9HPmZgShGdPoNydG4Yw8GJvG9HUcLgce",
		PoolAuthority: "8JYVFy3pYsPSpPRsqf43KSJFnJzn83nnRLQgG88XKB8q",

		PoolLPTokenAccount:      "4u4AnMBHXehdpP5tbD6qzB5Q4iZmvKKR5aUr2gavG7aw",
		PoolRewardTokenAccount:  "HCHNuGzkqSnw9TbwpPv1gTnoqnqYepcojHw9DAToBrUj",
		PoolRewardTokenAccountB: "5ihtMmeTAx3kdf459Yt3bqos5zDe4WBBcSZSB6ooNxLt",
	},
	{
		Name:      "RAY-SRM",
		LP:        lpRaySRM,
		Reward:    tokenRAY,
		RewardB:   &tokenSRM,
		Fusion:    true,
		DualYield: true,
		Version:   5,

		ProgramID:     StakeProgramIDV5,
		PoolID:        "BnYoq5y2MoH4TsBHeEZrGPCL4b8DvSmPmDkCecErHVau",
		PoolAuthority: "BC1j27pPnkhYsYyMCSLHakPb2t4PvsnSSYy3ZgzAbBVE",

		PoolLPTokenAccount:      "DiRWoZmprX37gnauB2Ss6qsk7MBL4PYvktkEB5qrU3W3",
		PoolRewardTokenAccount:  "9K1MvLL8TheVTvVSnJMhmZL9nviCBskABmTuCGuCsYky",
		PoolRewardTokenAccountB: "2hPv9nMBUcBNHJaUdRJKZBCHMvW2DcUUGRY3wcfopyPo",
	},
}
