package layout

import "github.com/gagliardetto/solana-go"

// SPL token program account spans, identical across protocol versions.
const (
	TokenAccountSpan = 165
	MintSpan         = 82
)

// TokenAccount is the decoded SPL token account subset the resolver needs.
type TokenAccount struct {
	Mint   solana.PublicKey
	Owner  solana.PublicKey
	Amount uint64
}

// DecodeTokenAccount decodes an SPL token account.
func DecodeTokenAccount(data []byte) (*TokenAccount, error) {
	if len(data) != TokenAccountSpan {
		return nil, lengthError("token account", 0, len(data), TokenAccountSpan)
	}
	r := &reader{data: data}

	a := &TokenAccount{}
	a.Mint = r.pubkey()
	a.Owner = r.pubkey()
	a.Amount = r.u64()

	return a, nil
}

// Mint is the decoded SPL mint subset the resolver needs.
type Mint struct {
	Supply   uint64
	Decimals uint8
}

// DecodeMint decodes an SPL mint account.
func DecodeMint(data []byte) (*Mint, error) {
	if len(data) != MintSpan {
		return nil, lengthError("mint", 0, len(data), MintSpan)
	}
	r := &reader{data: data}
	r.skip(36) // mintAuthority option + key

	m := &Mint{}
	m.Supply = r.u64()
	m.Decimals = r.u8()

	return m, nil
}
