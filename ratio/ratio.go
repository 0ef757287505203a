// Package ratio implements Ratio, an exact fraction of two int32 values.
//
// A Ratio is an immutable value. The sign is always carried by the numerator
// and the denominator is always positive, but fractions are never reduced
// implicitly: New(6, 8) stays 6/8 until Reduce is called.
//
// Two notions of sameness are kept apart on purpose:
//
//   - Equal is exact and structural: 1/2 and 2/4 are not Equal.
//   - Compare orders by floating point value: Compare(1/2, 2/4) == 0.
//
// Use the ByValue comparer for hashing by value, consistent with Compare.
//
// Arithmetic works on straight cross products without reducing, so results
// may grow (3/4 + 0/4 == 12/16). Any result that does not fit in int32
// fails with mathx.ErrOverflow rather than wrapping.
package ratio

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"kit/mathx"
)

// ErrZeroDenominator is returned whenever a Ratio would end up with a zero denominator.
var ErrZeroDenominator = errors.New("ratio: denominator must not be zero")

// Ratio is a fraction num/den with den > 0.
// The zero value reads as 0/1.
type Ratio struct {
	num int32
	den int32 // 0 only in the zero value
}

// New returns numerator/denominator with the sign moved onto the numerator.
func New(numerator, denominator int32) (Ratio, error) {
	return fromInt64(int64(numerator), int64(denominator))
}

// MustNew is like New but panics on error. Meant for literals.
func MustNew(numerator, denominator int32) Ratio {
	r, err := New(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt returns n/1.
func FromInt(n int32) Ratio {
	return Ratio{num: n, den: 1}
}

// fromInt64 normalises the sign and narrows both parts to int32.
func fromInt64(n, d int64) (Ratio, error) {
	if d == 0 {
		return Ratio{}, errors.WithDetailf(ErrZeroDenominator, "numerator = %d", n)
	}
	if d < 0 {
		n, d = -n, -d
	}
	num, err := mathx.Int32(n)
	if err != nil {
		return Ratio{}, errors.Wrap(err, "ratio numerator")
	}
	den, err := mathx.Int32(d)
	if err != nil {
		return Ratio{}, errors.Wrap(err, "ratio denominator")
	}
	return Ratio{num: num, den: den}, nil
}

// Numerator returns the signed numerator.
func (r Ratio) Numerator() int32 { return r.num }

// Denominator returns the denominator, always > 0.
func (r Ratio) Denominator() int32 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// Components returns numerator and denominator.
func (r Ratio) Components() (numerator, denominator int32) {
	return r.num, r.Denominator()
}

// IsZero reports whether the numerator is zero.
func (r Ratio) IsZero() bool { return r.num == 0 }

// Reduce divides numerator and denominator by their greatest common divisor.
// A zero ratio reduces to 0/1.
func (r Ratio) Reduce() Ratio {
	n, d := int64(r.num), int64(r.Denominator())
	g := mathx.Gcd(mathx.Abs(n), d)
	// |n|/g and d/g never exceed the originals, narrowing cannot fail
	return Ratio{num: int32(n / g), den: int32(d / g)}
}

// Simplify is an alias for Reduce.
func (r Ratio) Simplify() Ratio { return r.Reduce() }

// Reciprocal swaps numerator and denominator, keeping the sign on the numerator.
// The reciprocal of zero is ErrZeroDenominator.
func (r Ratio) Reciprocal() (Ratio, error) {
	return fromInt64(int64(r.Denominator()), int64(r.num))
}

// SimplifiedReciprocal is Reduce followed by Reciprocal.
func (r Ratio) SimplifiedReciprocal() (Ratio, error) {
	return r.Reduce().Reciprocal()
}

// Float32 returns num/den as a float32.
func (r Ratio) Float32() float32 {
	return float32(r.num) / float32(r.Denominator())
}

// Float64 returns num/den as a float64.
func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.Denominator())
}

// Decimal returns num/den as a decimal, computed with decimal.DivisionPrecision digits.
func (r Ratio) Decimal() decimal.Decimal {
	return decimal.NewFromInt32(r.num).Div(decimal.NewFromInt32(r.Denominator()))
}

// RoundedFloat64 returns Float64 rounded half away from zero to places decimal places.
func (r Ratio) RoundedFloat64(places int) float64 {
	p := math.Pow10(places)
	return math.Round(r.Float64()*p) / p
}
