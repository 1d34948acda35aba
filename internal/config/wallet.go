package config

import (
	"github.com/spf13/pflag"
)

// WalletConfig holds configuration for the wallet command.
type WalletConfig struct {
	RPCURL      string
	PriceURL    string
	Wallets     []string
	Concurrency int
	LogLevel    string
}

// LoadWallet merges config file, environment variables, and flags into
// WalletConfig.
func LoadWallet(cfgFile string, flags *pflag.FlagSet) (WalletConfig, error) {
	v := newViper()

	v.SetDefault("concurrency", 4)
	v.SetDefault("log-level", "info")

	if err := readIn(v, cfgFile, flags); err != nil {
		return WalletConfig{}, err
	}

	cfg := WalletConfig{
		RPCURL:      v.GetString("rpc"),
		PriceURL:    v.GetString("price-url"),
		Wallets:     getStringSlice(v, "wallet"),
		Concurrency: v.GetInt("concurrency"),
		LogLevel:    v.GetString("log-level"),
	}

	return cfg, nil
}
