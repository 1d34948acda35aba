package registry

import "farmscope/internal/model"

var liquidityPools = []model.LiquidityPool{
	{
		Name:    "RAY-USDC",
		Coin:    tokenRAY,
		PC:      tokenUSDC,
		LP:      lpRayUSDC,
		Version: 4,

		ProgramID:       LiquidityProgramIDV4,
		AmmID:           "6UmmUiYoBjSrhakAobJw8BvkmJtDVxaeBtbt7rxWo1mg",
		AmmAuthority:    "5Q544fKrFoe6tsEbD7S8EmxGTJYAKtTVhAW5Q5pge4j1",
		AmmOpenOrders:   "J8u8nTHYtvudyqwLrXZboziN95LpaHFHpd97Jm5vtbkW",
		AmmTargetOrders: "3cji8XW5uhtsA757vELVFAeJpskyHwbnTSceMFY5GjVT",

		PoolCoinTokenAccount:   "FdmKUE4UMiJYFK5ogCngHzShuVKrFXBamPWcewDr31th",
		PoolPCTokenAccount:     "Eqrhxd7bDUCH3MepKmdVkgwazXRzY6iHhEoBpY7yAohk",
		PoolWithdrawQueue:      "ERiPLHrxvjsoMuaWDWSTLdCMzRkQSo8SkLBLYEmSokyr",
		PoolTempLPTokenAccount: "D1V5GMf3N26owUFcbz2qR5N4G81qPKQvS2Vc4SM73XGB",

		SerumProgramID:        SerumProgramIDV3,
		SerumMarket:           "2xiv8A5xrJ7RnGdxXB42uFEkYHJjszEhaJyKKt4WaLep",
		SerumCoinVaultAccount: "GGcdamvNDYFhAXr93DWyJ8QmwawUHLCyRqWL3KngtLRa",
		SerumPCVaultAccount:   "22jHt5WmosAykp3LPGSAKgY45p7VGh4DFWSwp21SWBVe",
		SerumVaultSigner:      "FmhXe9uG6zun49p222xt3nG1rBAkWvzVz7dxERQ6ouGw",
	},
	{
		Name:    "RAY-SOL",
		Coin:    tokenRAY,
		PC:      tokenWSOL,
		LP:      lpRaySOL,
		Version: 4,

		ProgramID:       LiquidityProgramIDV4,
		AmmID:           "AVs9TA4nWDzfPJE9gGVNJMVhcQy3V9PGazuz33BfG2RA",
		AmmAuthority:    "5Q544fKrFoe6tsEbD7S8EmxGTJYAKtTVhAW5Q5pge4j1",
		AmmOpenOrders:   "6Su6Ea97dBxecd5W92KcVvv6SzCurE2BXGgFe9LNGMpE",
		AmmTargetOrders: "5hATcCfvhVwAjNExvrg8rRkXmYyksHhVajWLa46iRsmE",

		PoolCoinTokenAccount:   "Em6rHi68trYgBFyJ5261A2nhwuQWfLcirgzZZYoRcrkX",
		PoolPCTokenAccount:     "3mEFzHsJyu2Cpjrz6zPmTzP7uoLFj9SbbecGVzzkL1mJ",
		PoolWithdrawQueue:      "FSHqX232PHE4ev9Dpdzrg9h2Tn1byChnX4tuoPUyjjdV",
		PoolTempLPTokenAccount: "87CCkBfthmyqwPuCDwFmyqKWJfjYqPFhm5btkNyoALYZ",

		SerumProgramID:        SerumProgramIDV3,
		SerumMarket:           "C6tp2RVZnxBPFbnAsfTjis8BN9tycESAT4SgDQgbbrsA",
		SerumCoinVaultAccount: "6U6U59zmFWrPSzm9sLX7kVkaK78Kz7XJYkrhP1DjF3uF",
		SerumPCVaultAccount:   "4YEx21yeUAZxUL9Fs7YU9Gm3u45GWoPFs8vcJiHga2eQ",
		SerumVaultSigner:      "7SdieGqwPJo5rMmSQM9JmntSEMoimM4dQn7NkGbNFcrd",
	},
	{
		Name:    "RAY-USDT",
		Coin:    tokenRAY,
		PC:      tokenUSDT,
		LP:      lpRayUSDT,
		Version: 4,

		ProgramID:       LiquidityProgramIDV4,
		AmmID:           "DVa7Qmb5ct9RCpaU7UTpSaf3GVMYz17vNVU67XpdCRut",
		AmmAuthority:    "5Q544fKrFoe6tsEbD7S8EmxGTJYAKtTVhAW5Q5pge4j1",
		AmmOpenOrders:   "7UF3m8hDGZ6bNnHzaT2YHrhp7A7n9qFfBj6QEpHPv5S8",
		AmmTargetOrders: "3K2uLkKwVVPvZuMhcQAPLF8hw95somMeNwJS7vgWYrsJ",

		PoolCoinTokenAccount:   "3wqhzSB9avepM9xMteiZnbJw75zmTBDVmPFLTQAGcSMN",
		PoolPCTokenAccount:     "5GtSbKJEPaoumrDzNj4kGkgZtfDyUceKaHrPziazALC1",
		PoolWithdrawQueue:      "8VuvrSWfQP8vdbuMAP9AkfgLxU9hbRR6BmTJ8Gfas9aK",
		PoolTempLPTokenAccount: "FBzqDD1cBgkZ1h6tiZNFpkh4sZyg6AG8K5P9DSuJoS5F",

		SerumProgramID:        SerumProgramIDV3,
		SerumMarket:           "teE55QrL4a4QSfydR9dnHF97jgCfptpuigbb53Lo95g",
		SerumCoinVaultAccount: "2kVNVEgHicvfwiyhT2T51YiQGMPFWLMSp8qXc1hHzkpU",
		SerumPCVaultAccount:   "5AXZV7XfR7Ctr6yjQ9m9dbgycKeUXWnWqHwBTZT6mqC7",
		SerumVaultSigner:      "HzWpBN6ucpsA9wcfmhLAFYqEUmHjE9n2cGHwunG5avpL",
	},
	{
		Name:    "RAY-SRM",
		Coin:    tokenRAY,
		PC:      tokenSRM,
		LP:      lpRaySRM,
		Version: 4,

		ProgramID:       LiquidityProgramIDV4,
		AmmID:           "GaqgfieVmnmY4ZsZHHA6L5RSVzCGL3sKx4UgHBaYNy8m",
		AmmAuthority:    "5Q544fKrFoe6tsEbD7S8EmxGTJYAKtTVhAW5Q5pge4j1",
		AmmOpenOrders:   "7XWbMpdyGM5Aesaedh6V653wPYpEswA864sBvodGgWDp",
		AmmTargetOrders: "9u8bbHv7DnEbVRXmptz3LxrJsryY1xHqGvXLpgm9s5Ng",

		PoolCoinTokenAccount:   "3FqQ8p72N85USJStyttaohu1EBsTsEZQ9tVqwcPWcuSz",
		PoolPCTokenAccount:     "384kWWf2Km56EReGvmtCKVo1BBmmt2SwiEizjhwpCmrN",
		PoolWithdrawQueue:      "58z15NsT3JJyfywFbdYzn2GVeDDC444WHyUrssZ5tCm7",
		PoolTempLPTokenAccount: "8jqpuijsM2ne5dkwLyjQxa9oCbYEjM6bE1uBaFXmC3TE",

		SerumProgramID:        SerumProgramIDV3,
		SerumMarket:           "Cm4MmknScg7qbKqytb1mM92xgDxv3TNXos4tKbBqTDy7",
		SerumCoinVaultAccount: "5QDTh4Bpz4wruWMfayMSjUxRgDvMzvS2ifkarhYtjS1B",
		SerumPCVaultAccount:   "76CofnHCvo5wEKtxNWfLa2jLDz4quwwSHFMne6BWWqx",
		SerumVaultSigner:      "AorjCaSV1L6NGcaFZXEyUrmbSqY3GdB3YXbQnrh85v6F",
	},
}
