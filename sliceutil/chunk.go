package sliceutil

import (
	"unicode/utf8"

	"kit/precond"
)

// Chunk splits a slice into chunks of the given size.
// The chunks are views: they share the backing array of collection.
// The last chunk may be smaller if there are not enough elements.
func Chunk[T any](collection []T, size int) ([][]T, error) {
	if err := precond.Positive("size", size); err != nil {
		return nil, err
	}
	if len(collection) == 0 {
		return [][]T{}, nil
	}
	res := make([][]T, 0, chunkCount(len(collection), size))
	for i := 0; i < len(collection); i += size {
		end := min(i+size, len(collection))
		// cap the view so appending to one chunk cannot overwrite the next
		res = append(res, collection[i:end:end])
	}
	return res, nil
}

// ChunkCopy is Chunk with each chunk copied into its own slice.
func ChunkCopy[T any](collection []T, size int) ([][]T, error) {
	views, err := Chunk(collection, size)
	if err != nil {
		return nil, err
	}
	for i, v := range views {
		views[i] = append(make([]T, 0, len(v)), v...)
	}
	return views, nil
}

// ChunkString splits s into pieces of size runes each; the last piece holds the rest.
// Multi-byte characters are never split.
func ChunkString(s string, size int) ([]string, error) {
	if err := precond.Positive("size", size); err != nil {
		return nil, err
	}
	res := make([]string, 0, chunkCount(utf8.RuneCountInString(s), size))
	start, runes := 0, 0
	for i := range s {
		if runes == size {
			res = append(res, s[start:i])
			start, runes = i, 0
		}
		runes++
	}
	if start < len(s) {
		res = append(res, s[start:])
	}
	return res, nil
}

func chunkCount(n, size int) int {
	return (n + size - 1) / size
}
