// Package chain wraps the Solana JSON-RPC client with the small read-only
// surface the tracker needs: single-account fetches and filtered
// program-account scans. Transient RPC failures are retried with exponential
// backoff; a missing account is ErrAccountNotFound, not a retry.
package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// ErrAccountNotFound marks an address with no account on the ledger.
var ErrAccountNotFound = errors.New("account not found")

// KeyedAccount pairs an account address with its raw data.
type KeyedAccount struct {
	Address solana.PublicKey
	Data    []byte
}

// Client is a read-only ledger client.
type Client struct {
	rpc        *rpc.Client
	commitment rpc.CommitmentType
	maxElapsed time.Duration
	logger     *zap.Logger
}

// NewClient builds a client for the given RPC endpoint.
func NewClient(endpoint string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		rpc:        rpc.New(endpoint),
		commitment: rpc.CommitmentConfirmed,
		maxElapsed: 15 * time.Second,
		logger:     logger.Named("chain"),
	}
}

// FetchAccount returns the raw data of a single account.
func (c *Client) FetchAccount(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	op := func() ([]byte, error) {
		res, err := c.rpc.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
			Commitment: c.commitment,
			Encoding:   solana.EncodingBase64,
		})
		if err != nil {
			if errors.Is(err, rpc.ErrNotFound) {
				return nil, backoff.Permanent(fmt.Errorf("%s: %w", address, ErrAccountNotFound))
			}
			c.logger.Debug("get account info", zap.String("address", address.String()), zap.Error(err))
			return nil, err
		}
		if res == nil || res.Value == nil {
			return nil, backoff.Permanent(fmt.Errorf("%s: %w", address, ErrAccountNotFound))
		}
		return res.Value.Data.GetBinary(), nil
	}

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(c.maxElapsed),
	)
}

// FetchMultipleAccounts returns the raw data of several accounts in one
// call, in the order requested. Any missing account fails the whole batch
// with ErrAccountNotFound.
func (c *Client) FetchMultipleAccounts(ctx context.Context, addresses []solana.PublicKey) ([][]byte, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	op := func() ([][]byte, error) {
		res, err := c.rpc.GetMultipleAccountsWithOpts(ctx, addresses, &rpc.GetMultipleAccountsOpts{
			Commitment: c.commitment,
			Encoding:   solana.EncodingBase64,
		})
		if err != nil {
			c.logger.Debug("get multiple accounts", zap.Int("count", len(addresses)), zap.Error(err))
			return nil, err
		}
		if res == nil || len(res.Value) != len(addresses) {
			return nil, fmt.Errorf("got %d accounts, want %d", len(res.Value), len(addresses))
		}
		out := make([][]byte, len(addresses))
		for i, acc := range res.Value {
			if acc == nil {
				return nil, backoff.Permanent(fmt.Errorf("%s: %w", addresses[i], ErrAccountNotFound))
			}
			out[i] = acc.Data.GetBinary()
		}
		return out, nil
	}

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(c.maxElapsed),
	)
}

// FetchProgramAccounts scans a program's accounts, filtered by exact data
// size and a memcmp of owner at the given byte offset.
func (c *Client) FetchProgramAccounts(ctx context.Context, programID solana.PublicKey, owner solana.PublicKey, ownerOffset uint64, dataSize uint64) ([]KeyedAccount, error) {
	opts := &rpc.GetProgramAccountsOpts{
		Commitment: c.commitment,
		Encoding:   solana.EncodingBase64,
		Filters: []rpc.RPCFilter{
			{
				Memcmp: &rpc.RPCFilterMemcmp{
					Offset: ownerOffset,
					Bytes:  solana.Base58(owner.Bytes()),
				},
			},
			{DataSize: dataSize},
		},
	}

	op := func() ([]KeyedAccount, error) {
		res, err := c.rpc.GetProgramAccountsWithOpts(ctx, programID, opts)
		if err != nil {
			c.logger.Debug("get program accounts", zap.String("program", programID.String()), zap.Error(err))
			return nil, err
		}
		out := make([]KeyedAccount, 0, len(res))
		for _, acc := range res {
			if acc == nil || acc.Account == nil {
				continue
			}
			out = append(out, KeyedAccount{
				Address: acc.Pubkey,
				Data:    acc.Account.Data.GetBinary(),
			})
		}
		return out, nil
	}

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(c.maxElapsed),
	)
}
