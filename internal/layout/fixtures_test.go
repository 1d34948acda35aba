package layout

import (
	"encoding/binary"
	"math/big"

	"github.com/gagliardetto/solana-go"
)

// buffer builds little-endian test fixtures field by field.
type buffer struct {
	data []byte
}

func (b *buffer) u8(v uint8) *buffer {
	b.data = append(b.data, v)
	return b
}

func (b *buffer) u64(v uint64) *buffer {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
	return b
}

func (b *buffer) u128(v *big.Int) *buffer {
	var tmp [16]byte
	raw := v.Bytes() // big-endian
	for i, by := range raw {
		tmp[len(raw)-1-i] = by
	}
	b.data = append(b.data, tmp[:]...)
	return b
}

func (b *buffer) pubkey(k solana.PublicKey) *buffer {
	b.data = append(b.data, k[:]...)
	return b
}

func (b *buffer) pad(n int) *buffer {
	b.data = append(b.data, make([]byte, n)...)
	return b
}

func key(fill byte) solana.PublicKey {
	var k solana.PublicKey
	for i := range k {
		k[i] = fill
	}
	return k
}
