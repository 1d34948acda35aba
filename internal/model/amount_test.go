package model

import (
	"math"
	"math/big"
	"testing"

	cosmath "cosmossdk.io/math"
)

func TestAmountFloat64(t *testing.T) {
	a := NewAmount(123456, 6)
	if got := a.Float64(); got != 0.123456 {
		t.Fatalf("Float64 = %v, want 0.123456", got)
	}
}

func TestAmountAddSameScale(t *testing.T) {
	a := NewAmount(100, 6)
	b := NewAmount(250, 6)

	ab, err := a.Add(b)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	ba, err := b.Add(a)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if ab.Raw.String() != "350" || ba.Raw.String() != "350" {
		t.Fatalf("add mismatch: %s vs %s", ab.Raw, ba.Raw)
	}
}

func TestAmountAddScaleMismatch(t *testing.T) {
	a := NewAmount(100, 6)
	b := NewAmount(100, 9)
	if _, err := a.Add(b); err == nil {
		t.Fatalf("expected scale mismatch error")
	}
	if _, err := a.Sub(b); err == nil {
		t.Fatalf("expected scale mismatch error")
	}
}

func TestAmountMulIntExact(t *testing.T) {
	// 2^80 does not fit in 64 bits; multiplication must stay exact.
	raw := new(big.Int).Lsh(big.NewInt(1), 80)
	a := NewAmountFromBigInt(raw, 0)

	tripled := a.MulInt(cosmath.NewInt(3))
	want := new(big.Int).Mul(raw, big.NewInt(3))
	if tripled.Raw.BigInt().Cmp(want) != 0 {
		t.Fatalf("mul mismatch: %s != %s", tripled.Raw, want)
	}
}

func TestAmountQuoIntZeroDivisor(t *testing.T) {
	a := NewAmount(1000, 6)
	if _, err := a.QuoInt(cosmath.ZeroInt()); err == nil {
		t.Fatalf("expected division by zero error")
	}
}

func TestAmountSubRaw(t *testing.T) {
	a := NewAmount(1000, 6).SubRaw(400)
	if a.Raw.String() != "600" {
		t.Fatalf("sub raw = %s, want 600", a.Raw)
	}
}

func TestZeroAmount(t *testing.T) {
	z := ZeroAmount(9)
	if !z.IsZero() {
		t.Fatalf("zero amount not zero")
	}
	if got := z.Float64(); got != 0 || math.Signbit(got) {
		t.Fatalf("zero Float64 = %v", got)
	}
}
