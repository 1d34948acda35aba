package layout

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// OpenOrdersVersion selects the serum open-orders layout. The legacy dex
// program lacks the trailing referrer-rebates field; every later program
// revision uses the v2 layout.
type OpenOrdersVersion int

const (
	OpenOrdersLegacy OpenOrdersVersion = 1
	OpenOrdersV2     OpenOrdersVersion = 2
)

// Byte spans of the open-orders layouts, padding included.
const (
	OpenOrdersLegacySpan = 3220
	OpenOrdersV2Span     = 3228
)

// OpenOrders is the decoded subset of a serum open-orders account. The
// base/quote totals are pool-owned inventory resting on the order book and
// count toward pool reserves.
type OpenOrders struct {
	AccountFlags uint64
	Market       solana.PublicKey
	Owner        solana.PublicKey

	BaseTokenFree   uint64
	BaseTokenTotal  uint64
	QuoteTokenFree  uint64
	QuoteTokenTotal uint64
}

// DecodeOpenOrders decodes a serum open-orders account at the given layout
// version.
func DecodeOpenOrders(data []byte, version OpenOrdersVersion) (*OpenOrders, error) {
	var span int
	switch version {
	case OpenOrdersLegacy:
		span = OpenOrdersLegacySpan
	case OpenOrdersV2:
		span = OpenOrdersV2Span
	default:
		return nil, fmt.Errorf("unsupported open-orders layout version %d", version)
	}
	if len(data) != span {
		return nil, lengthError("open orders", int(version), len(data), span)
	}

	r := &reader{data: data}
	r.skip(5) // "serum" head padding

	o := &OpenOrders{}
	o.AccountFlags = r.u64()
	o.Market = r.pubkey()
	o.Owner = r.pubkey()
	o.BaseTokenFree = r.u64()
	o.BaseTokenTotal = r.u64()
	o.QuoteTokenFree = r.u64()
	o.QuoteTokenTotal = r.u64()

	return o, nil
}
