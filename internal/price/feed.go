// Package price serves USD token prices from the Raydium price API.
package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const defaultEndpoint = "https://api.raydium.io/coin/price"

// Feed polls the price API and serves the last good snapshot. A refresh
// that fails keeps the previous snapshot in place.
type Feed struct {
	endpoint string
	client   *http.Client
	interval time.Duration
	logger   *zap.Logger

	mu     sync.RWMutex
	prices map[string]float64
}

// NewFeed builds a feed polling the default Raydium endpoint. An empty
// endpoint selects the default.
func NewFeed(endpoint string, interval time.Duration, logger *zap.Logger) *Feed {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	if interval <= 0 {
		interval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		interval: interval,
		logger:   logger.Named("price"),
		prices:   make(map[string]float64),
	}
}

// PriceUSD returns the last known USD price for a token symbol.
func (f *Feed) PriceUSD(symbol string) (float64, bool) {
	f.mu.RLock()
	p, ok := f.prices[symbol]
	f.mu.RUnlock()
	return p, ok
}

// Refresh fetches the current prices once and replaces the snapshot.
func (f *Feed) Refresh(ctx context.Context) error {
	op := func() (map[string]float64, error) {
		return f.fetch(ctx)
	}
	prices, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("refresh prices: %w", err)
	}

	f.mu.Lock()
	f.prices = prices
	f.mu.Unlock()
	f.logger.Debug("prices refreshed", zap.Int("symbols", len(prices)))
	return nil
}

// Run refreshes the snapshot on the feed's interval until ctx is done.
func (f *Feed) Run(ctx context.Context) error {
	if err := f.Refresh(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := f.Refresh(ctx); err != nil {
				f.logger.Warn("price refresh failed", zap.Error(err))
			}
		}
	}
}

func (f *Feed) fetch(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("build request: %w", err))
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		io.Copy(io.Discard, res.Body)
		return nil, fmt.Errorf("price api status %d", res.StatusCode)
	}

	var prices map[string]float64
	if err := json.NewDecoder(res.Body).Decode(&prices); err != nil {
		return nil, fmt.Errorf("decode prices: %w", err)
	}
	return prices, nil
}
