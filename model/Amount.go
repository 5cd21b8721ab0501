package model

import (
	"math"
	"math/bits"
)

// Amount is an exact sum of satoshi values. It holds a 128-bit two's complement integer, so
// adding any number of int64 values cannot overflow in practice. The zero value is 0.
type Amount struct {
	hi int64
	lo uint64
}

// AmountOf returns v as an Amount.
func AmountOf(v int64) Amount {
	return Amount{}.Add(v)
}

// Add returns a + v.
func (a Amount) Add(v int64) Amount {
	lo, carry := bits.Add64(a.lo, uint64(v), 0)
	hi := a.hi + int64(carry) //nolint:gosec // carry is 0 or 1

	if v < 0 {
		hi--
	}

	return Amount{hi: hi, lo: lo}
}

// Plus returns a + b.
func (a Amount) Plus(b Amount) Amount {
	lo, carry := bits.Add64(a.lo, b.lo, 0)

	return Amount{hi: a.hi + b.hi + int64(carry), lo: lo} //nolint:gosec // carry is 0 or 1
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)

	return Amount{hi: a.hi - b.hi - int64(borrow), lo: lo} //nolint:gosec // borrow is 0 or 1
}

// Cmp returns -1, 0 or +1 as a is less than, equal to or greater than b.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.hi < b.hi:
		return -1
	case a.hi > b.hi:
		return 1
	case a.lo < b.lo:
		return -1
	case a.lo > b.lo:
		return 1
	default:
		return 0
	}
}

// Int64 returns the amount as an int64 and whether it fits.
func (a Amount) Int64() (int64, bool) {
	v := int64(a.lo) //nolint:gosec // two's complement reinterpretation

	if (a.hi == 0 && v >= 0) || (a.hi == -1 && v < 0) {
		return v, true
	}

	return 0, false
}

// Float64 returns the nearest float64 to the amount.
func (a Amount) Float64() float64 {
	if v, ok := a.Int64(); ok {
		return float64(v)
	}

	return float64(a.hi)*math.Exp2(64) + float64(a.lo)
}
