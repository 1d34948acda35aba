// Package layout decodes the fixed little-endian account layouts used by the
// Raydium AMM, staking and SPL token programs. Every decoder validates the
// exact byte span of its version before reading; 128-bit fields are widened
// to big.Int without narrowing.
package layout

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// ErrUnexpectedLength marks a buffer whose size does not match the layout
// span of the selected version.
var ErrUnexpectedLength = errors.New("unexpected account data length")

// DecodeError describes a failed account decode.
type DecodeError struct {
	Account string
	Version int
	Got     int
	Want    int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s v%d: got %d bytes, want %d", e.Account, e.Version, e.Got, e.Want)
}

func (e *DecodeError) Unwrap() error { return ErrUnexpectedLength }

func lengthError(account string, version, got, want int) error {
	return &DecodeError{Account: account, Version: version, Got: got, Want: want}
}

// reader walks a pre-validated buffer. Span checks happen before construction
// so the read methods never run past the end.
type reader struct {
	data []byte
	off  int
}

func (r *reader) u8() uint8 {
	v := r.data[r.off]
	r.off++
	return v
}

func (r *reader) u64() uint64 {
	v := binary.LittleEndian.Uint64(r.data[r.off : r.off+8])
	r.off += 8
	return v
}

func (r *reader) u128() *big.Int {
	lo := binary.LittleEndian.Uint64(r.data[r.off : r.off+8])
	hi := binary.LittleEndian.Uint64(r.data[r.off+8 : r.off+16])
	r.off += 16
	return bin.Uint128{Lo: lo, Hi: hi}.BigInt()
}

func (r *reader) pubkey() solana.PublicKey {
	var key solana.PublicKey
	copy(key[:], r.data[r.off:r.off+32])
	r.off += 32
	return key
}

func (r *reader) skip(n int) {
	r.off += n
}
