// Package precond provides argument checks that fail fast with a canonical,
// inspectable error instead of panicking.
//
// Every helper returns nil when the precondition holds. Failures wrap one of
// the package sentinels, so callers can test them with errors.Is:
//
//	if err := precond.InRange("index", i, 0, n); err != nil {
//	    return zero, err
//	}
package precond

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"

	"kit/mathx"
)

var (
	// ErrOutOfRange reports a value outside its permitted bounds.
	ErrOutOfRange = errors.New("argument out of range")
	// ErrNilArgument reports a nil value where one is required.
	ErrNilArgument = errors.New("argument is nil")
	// ErrEmpty reports an empty collection where at least one element is required.
	ErrEmpty = errors.New("collection is empty")
)

// InRange checks lower <= value < upper, or the bounds selected by opts.
func InRange[T cmp.Ordered](name string, value, lower, upper T, opts ...mathx.RangeOption) error {
	b := mathx.BoundsOf(opts...)
	if mathx.Within(b, value, lower, upper) {
		return nil
	}
	return OutOfRange(name, value, lower, upper, b)
}

// OutOfRange builds the error InRange returns, for callers that did the check themselves.
func OutOfRange[T any](name string, value, lower, upper T, b mathx.Bounds) error {
	lb, rb := "[", ")"
	if b.LeftExclusive {
		lb = "("
	}
	if b.RightInclusive {
		rb = "]"
	}
	err := errors.Wrapf(ErrOutOfRange, "%s must be within %s%v, %v%s", name, lb, lower, upper, rb)
	return errors.WithDetailf(err, "%s = %v", name, value)
}

// Positive checks value > 0.
func Positive[T cmp.Ordered](name string, value T) error {
	var zero T
	if value > zero {
		return nil
	}
	return errors.WithDetailf(
		errors.Wrapf(ErrOutOfRange, "%s must be greater than 0", name),
		"%s = %v", name, value)
}

// NotNil checks that value is neither nil nor a typed nil pointer, map, slice, chan or func.
func NotNil(name string, value any) error {
	if value == nil {
		return errors.Wrap(ErrNilArgument, name)
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return errors.Wrap(ErrNilArgument, name)
		}
	}
	return nil
}

// NotEmpty checks n > 0 for a collection of length n.
func NotEmpty(name string, n int) error {
	if n > 0 {
		return nil
	}
	return errors.Wrap(ErrEmpty, name)
}

// Must panics if err is non-nil. Intended for literals in tests and examples.
func Must(err error) {
	if err != nil {
		panic(fmt.Sprintf("precond: %v", err))
	}
}

// Must1 returns v, panicking if err is non-nil.
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}
