// Package union holds small sum types: Optional for "maybe a value", Result
// for "a value or an error value", and Try for capturing the outcome of a
// call that may fail or panic.
package union

import "fmt"

// Optional holds a value or nothing. The zero value is None.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) IsSome() bool { return o.ok }

func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o Optional[T]) String() string {
	if !o.ok {
		return fmt.Sprintf("None[%T]", o.value)
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
