package seqs

import (
	"iter"

	"kit/precond"
)

// Enumerate pairs every element with its zero-based position.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Chunk splits seq into slices of size elements. The last chunk holds the
// remainder and is never padded. Each chunk is a fresh slice the caller may keep.
func Chunk[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	if err := precond.Positive("size", size); err != nil {
		return nil, err
	}
	return func(yield func([]T) bool) {
		var chunk []T
		for i, v := range Enumerate(seq) {
			if i%size == 0 {
				chunk = make([]T, 0, size)
			}
			chunk = append(chunk, v)
			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = nil
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}, nil
}

// Take yields at most n elements. n <= 0 yields nothing.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		for i, v := range Enumerate(seq) {
			if !yield(v) || i+1 >= n {
				return
			}
		}
	}
}

// Skip drops the first n elements and yields the rest.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, v := range Enumerate(seq) {
			if i < n {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// First returns the first element, if any.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Any reports whether some element satisfies predicate. It stops at the first match.
func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies predicate. It stops at the first miss.
func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	return !Any(seq, func(v T) bool { return !predicate(v) })
}

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}
