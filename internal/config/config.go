package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration for the track command, loaded from flags, env,
// or config file.
type Config struct {
	RPCURL        string
	PriceURL      string
	PriceInterval time.Duration
	Concurrency   int
	Interval      time.Duration
	Out           string
	PGDSN         string
	LogLevel      string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := newViper()

	v.SetDefault("price-interval", time.Minute)
	v.SetDefault("concurrency", 4)
	v.SetDefault("out", "./data")
	v.SetDefault("log-level", "info")

	if err := readIn(v, cfgFile, flags); err != nil {
		return Config{}, err
	}

	cfg := Config{
		RPCURL:        v.GetString("rpc"),
		PriceURL:      v.GetString("price-url"),
		PriceInterval: v.GetDuration("price-interval"),
		Concurrency:   v.GetInt("concurrency"),
		Interval:      v.GetDuration("interval"),
		Out:           v.GetString("out"),
		PGDSN:         v.GetString("pg-dsn"),
		LogLevel:      v.GetString("log-level"),
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func readIn(v *viper.Viper, cfgFile string, flags *pflag.FlagSet) error {
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
