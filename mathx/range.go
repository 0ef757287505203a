package mathx

import "cmp"

// Bounds describes which ends of a range are inclusive.
// The zero value is the usual half-open range [lower, upper).
type Bounds struct {
	LeftExclusive  bool
	RightInclusive bool
}

// RangeOption adjusts the Bounds used by IsInRange.
type RangeOption func(*Bounds)

// LeftExclusive excludes the lower bound.
func LeftExclusive() RangeOption {
	return func(b *Bounds) { b.LeftExclusive = true }
}

// RightInclusive includes the upper bound.
func RightInclusive() RangeOption {
	return func(b *Bounds) { b.RightInclusive = true }
}

// Closed makes both ends inclusive.
func Closed() RangeOption {
	return func(b *Bounds) {
		b.LeftExclusive = false
		b.RightInclusive = true
	}
}

// BoundsOf folds opts into a Bounds value.
func BoundsOf(opts ...RangeOption) Bounds {
	var b Bounds
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// IsInRange reports whether v lies between lower and upper.
// By default the range is left-inclusive and right-exclusive.
func IsInRange[T cmp.Ordered](v, lower, upper T, opts ...RangeOption) bool {
	return Within(BoundsOf(opts...), v, lower, upper)
}

// Within is IsInRange with pre-built Bounds.
func Within[T cmp.Ordered](b Bounds, v, lower, upper T) bool {
	lowOK := v >= lower
	if b.LeftExclusive {
		lowOK = v > lower
	}
	highOK := v < upper
	if b.RightInclusive {
		highOK = v <= upper
	}
	return lowOK && highOK
}
