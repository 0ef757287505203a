// Package mathx holds the integer helpers shared by the rest of kit:
// gcd/lcm, binomial coefficients, overflow-checked arithmetic and range checks.
package mathx

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrOverflow is returned when an operation does not fit the result type.
var ErrOverflow = errors.New("arithmetic overflow")

// Integer is satisfied by every built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Gcd returns the greatest common divisor of a and b using the Euclidean algorithm.
// Both operands must be non-negative. Gcd(0, n) == n.
func Gcd[T Integer](a, b T) T {
	if a < b {
		a, b = b, a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lcm returns the least common multiple of a and b.
// Lcm(0, n) == 0. ErrOverflow is returned if the result does not fit T.
func Lcm[T Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	g := Gcd(a, b)
	q := a / g
	res := q * b
	if res/b != q {
		return 0, errors.Wrapf(ErrOverflow, "lcm(%d, %d)", a, b)
	}
	return res, nil
}

// Binomial returns n choose k. It returns 0 when k > n.
func Binomial(n, k uint64) (uint64, error) {
	if k > n {
		return 0, nil
	}
	// symmetric, fewer iterations
	if k > n-k {
		k = n - k
	}
	var r uint64 = 1
	for d := uint64(1); d <= k; d++ {
		// r * (n-k+d) / d is exact at every step
		g := Gcd(r, d)
		r /= g
		m := n - k + d
		den := d / g
		m /= den
		if m != 0 && r > math.MaxUint64/m {
			return 0, errors.Wrapf(ErrOverflow, "binomial(%d, %d)", n, k)
		}
		r *= m
	}
	return r, nil
}

// AddInt64 returns a + b or ErrOverflow.
func AddInt64(a, b int64) (int64, error) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}
	return c, nil
}

// SubInt64 returns a - b or ErrOverflow.
func SubInt64(a, b int64) (int64, error) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, errors.Wrapf(ErrOverflow, "%d - %d", a, b)
	}
	return c, nil
}

// MulInt64 returns a * b or ErrOverflow.
func MulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", a, b)
	}
	return c, nil
}

// Int32 narrows v to int32 or returns ErrOverflow.
func Int32(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, errors.Wrapf(ErrOverflow, "%d does not fit in int32", v)
	}
	return int32(v), nil
}

// Signed is satisfied by the signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Sign returns -1, 0 or 1.
func Sign[T Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Abs returns |v|. Abs of the minimum value wraps, callers that care widen first.
func Abs[T Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
