package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"farmscope/internal/chain"
	"farmscope/internal/config"
	"farmscope/internal/farm"
	"farmscope/internal/price"
	"farmscope/internal/storage"
	"farmscope/internal/storage/postgres"
	"farmscope/internal/tracker"
	"farmscope/internal/wallet"
)

func main() {
	root := &cobra.Command{
		Use:          "tracker",
		Short:        "Raydium farm statistics tracker",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	trackCmd := &cobra.Command{
		Use:   "track",
		Short: "Sweep farm statistics and persist APR/liquidity ticks",
		RunE:  runTrack,
	}

	trackCmd.Flags().String("rpc", "", "Solana RPC URL")
	trackCmd.Flags().String("price-url", "", "price API URL (empty means the default endpoint)")
	trackCmd.Flags().Duration("price-interval", time.Minute, "price refresh interval")
	trackCmd.Flags().Int("concurrency", 4, "concurrent farm computations")
	trackCmd.Flags().Duration("interval", 0, "sweep interval, 0 means a single sweep")
	trackCmd.Flags().String("out", "./data", "output directory for JSONL sinks")
	trackCmd.Flags().String("pg-dsn", "", "Postgres DSN (takes precedence over JSONL output)")
	trackCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(trackCmd)

	walletCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Compute stake positions for wallets",
		RunE:  runWallet,
	}

	walletCmd.Flags().String("rpc", "", "Solana RPC URL")
	walletCmd.Flags().String("price-url", "", "price API URL (empty means the default endpoint)")
	walletCmd.Flags().StringSlice("wallet", nil, "wallet addresses (comma-separated)")
	walletCmd.Flags().Int("concurrency", 4, "concurrent wallet scans")
	walletCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(walletCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTrack(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := chain.NewClient(cfg.RPCURL, logger)
	feed := price.NewFeed(cfg.PriceURL, cfg.PriceInterval, logger)
	if err := feed.Refresh(ctx); err != nil {
		return err
	}
	if cfg.Interval > 0 {
		go func() {
			if err := feed.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error("price feed stopped", zap.Error(err))
			}
		}()
	}

	var sink storage.TickSink
	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		sink = store
	} else {
		sink = storage.NewJsonlSink(cfg.Out)
	}

	engines := []farm.Engine{
		farm.NewLegacyEngine(client, feed, nil, logger),
		farm.NewFusionEngine(client, feed, nil, logger),
	}

	runner := tracker.NewRunner(tracker.RunConfig{
		Concurrency: cfg.Concurrency,
		Interval:    cfg.Interval,
	}, engines, sink, logger)

	logger.Info("tracker start",
		zap.String("rpc", cfg.RPCURL),
		zap.Int("concurrency", cfg.Concurrency),
		zap.Duration("interval", cfg.Interval),
		zap.Bool("postgres", cfg.PGDSN != ""),
	)

	return runner.Run(ctx)
}

func runWallet(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadWallet(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}
	if len(cfg.Wallets) == 0 {
		return fmt.Errorf("wallet list is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := chain.NewClient(cfg.RPCURL, logger)
	feed := price.NewFeed(cfg.PriceURL, time.Minute, logger)
	if err := feed.Refresh(ctx); err != nil {
		return err
	}

	legacy := farm.NewLegacyEngine(client, feed, nil, logger)
	fusion := farm.NewFusionEngine(client, feed, nil, logger)
	svc := wallet.NewService(client, legacy, fusion, feed, logger)

	positions := svc.PositionsForWallets(ctx, cfg.Wallets, cfg.Concurrency)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(positions)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
