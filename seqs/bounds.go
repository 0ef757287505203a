package seqs

import (
	"iter"
	"math"

	"kit/mathx"
	"kit/precond"
)

// Minimum reports whether seq has at least n elements, n >= 1.
// It reads no more than n elements.
func Minimum[T any](seq iter.Seq[T], n int) (bool, error) {
	if err := checkCount(n); err != nil {
		return false, err
	}
	_, ok := First(Skip(seq, n-1))
	return ok, nil
}

// Maximum reports whether seq has at most n elements, n >= 1.
// It reads no more than n+1 elements.
func Maximum[T any](seq iter.Seq[T], n int) (bool, error) {
	if err := checkCount(n); err != nil {
		return false, err
	}
	_, ok := First(Skip(seq, n))
	return !ok, nil
}

// MinimumLen and MaximumLen are the O(1) forms for anything with a known length.
func MinimumLen(length, n int) (bool, error) {
	if err := checkCount(n); err != nil {
		return false, err
	}
	return length >= n, nil
}

func MaximumLen(length, n int) (bool, error) {
	if err := checkCount(n); err != nil {
		return false, err
	}
	return length <= n, nil
}

func checkCount(n int) error {
	return precond.InRange("count", n, 1, math.MaxInt, mathx.RightInclusive())
}
