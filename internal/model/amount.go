package model

import (
	"fmt"
	"math/big"

	cosmath "cosmossdk.io/math"
)

// Amount is a fixed-point token quantity: Raw integer units at a decimal
// scale. The human-readable value is Raw / 10^Decimals. All on-chain
// accounting goes through Amount; Float64 is the only lossy projection and
// is reserved for prices, APR and display.
type Amount struct {
	Raw      cosmath.Int
	Decimals uint8
}

// NewAmount builds an Amount from raw integer units.
func NewAmount(raw uint64, decimals uint8) Amount {
	return Amount{Raw: cosmath.NewIntFromUint64(raw), Decimals: decimals}
}

// NewAmountFromBigInt builds an Amount from an arbitrary-precision raw value.
// The input is copied; the caller keeps ownership of raw.
func NewAmountFromBigInt(raw *big.Int, decimals uint8) Amount {
	if raw == nil {
		return ZeroAmount(decimals)
	}
	return Amount{Raw: cosmath.NewIntFromBigInt(new(big.Int).Set(raw)), Decimals: decimals}
}

// ZeroAmount returns a zero quantity at the given scale.
func ZeroAmount(decimals uint8) Amount {
	return Amount{Raw: cosmath.ZeroInt(), Decimals: decimals}
}

// Add returns a+b. Both operands must share a scale.
func (a Amount) Add(b Amount) (Amount, error) {
	if a.Decimals != b.Decimals {
		return Amount{}, fmt.Errorf("scale mismatch: %d vs %d", a.Decimals, b.Decimals)
	}
	return Amount{Raw: a.Raw.Add(b.Raw), Decimals: a.Decimals}, nil
}

// Sub returns a-b. Both operands must share a scale.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.Decimals != b.Decimals {
		return Amount{}, fmt.Errorf("scale mismatch: %d vs %d", a.Decimals, b.Decimals)
	}
	return Amount{Raw: a.Raw.Sub(b.Raw), Decimals: a.Decimals}, nil
}

// AddRaw adds raw integer units in place of a same-scale Amount.
func (a Amount) AddRaw(raw uint64) Amount {
	return Amount{Raw: a.Raw.Add(cosmath.NewIntFromUint64(raw)), Decimals: a.Decimals}
}

// SubRaw subtracts raw integer units.
func (a Amount) SubRaw(raw uint64) Amount {
	return Amount{Raw: a.Raw.Sub(cosmath.NewIntFromUint64(raw)), Decimals: a.Decimals}
}

// MulInt multiplies the raw units by an integer factor, exactly.
func (a Amount) MulInt(factor cosmath.Int) Amount {
	return Amount{Raw: a.Raw.Mul(factor), Decimals: a.Decimals}
}

// QuoInt divides the raw units by an integer divisor, truncating toward zero.
func (a Amount) QuoInt(divisor cosmath.Int) (Amount, error) {
	if divisor.IsZero() {
		return Amount{}, fmt.Errorf("division by zero")
	}
	return Amount{Raw: a.Raw.Quo(divisor), Decimals: a.Decimals}, nil
}

// IsZero reports whether the raw quantity is zero.
func (a Amount) IsZero() bool {
	return a.Raw.IsNil() || a.Raw.IsZero()
}

// Float64 projects the amount to a float for price math and display.
// Lossy; never feed the result back into accounting.
func (a Amount) Float64() float64 {
	if a.Raw.IsNil() {
		return 0
	}
	num := new(big.Float).SetInt(a.Raw.BigInt())
	den := new(big.Float).SetInt(pow10(a.Decimals))
	out, _ := new(big.Float).Quo(num, den).Float64()
	return out
}

// String renders the raw units and scale, e.g. "123456e-6".
func (a Amount) String() string {
	if a.Raw.IsNil() {
		return "0e0"
	}
	return fmt.Sprintf("%se-%d", a.Raw.String(), a.Decimals)
}

func pow10(decimals uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}
