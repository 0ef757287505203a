package sliceutil_test

import (
	"errors"
	"reflect"
	"testing"

	"kit/precond"
	"kit/sliceutil"
)

func TestChunk(t *testing.T) {
	t.Run("Happy Path (Divisible)", func(t *testing.T) {
		input := []int{1, 2, 3, 4}
		want := [][]int{{1, 2}, {3, 4}}
		got, err := sliceutil.Chunk(input, 2)
		if err != nil || !reflect.DeepEqual(got, want) {
			t.Errorf("Chunk() = %v, %v; want %v", got, err, want)
		}
	})

	t.Run("Happy Path (Non-Divisible)", func(t *testing.T) {
		input := []int{1, 2, 3, 4, 5}
		want := [][]int{{1, 2, 3}, {4, 5}}
		got, err := sliceutil.Chunk(input, 3)
		if err != nil || !reflect.DeepEqual(got, want) {
			t.Errorf("Chunk() = %v, %v; want %v", got, err, want)
		}
	})

	t.Run("Edge Case (Empty/Nil)", func(t *testing.T) {
		var input []int
		got, err := sliceutil.Chunk(input, 2)
		if err != nil || got == nil || len(got) != 0 {
			t.Errorf("Chunk() with nil input should return non-nil empty slice, got %v, %v", got, err)
		}
	})

	t.Run("Edge Case (Size > Len)", func(t *testing.T) {
		got, _ := sliceutil.Chunk([]int{1, 2}, 5)
		if want := [][]int{{1, 2}}; !reflect.DeepEqual(got, want) {
			t.Errorf("Chunk() = %v, want %v", got, want)
		}
	})

	t.Run("Edge Case (Invalid Size)", func(t *testing.T) {
		for _, size := range []int{0, -1} {
			if _, err := sliceutil.Chunk([]int{1}, size); !errors.Is(err, precond.ErrOutOfRange) {
				t.Errorf("Chunk(size=%d) error = %v, want ErrOutOfRange", size, err)
			}
		}
	})

	t.Run("Memory Semantics (View)", func(t *testing.T) {
		input := []int{1, 2, 3, 4}
		chunks, _ := sliceutil.Chunk(input, 2)
		chunks[0][0] = 99
		if input[0] != 99 {
			t.Errorf("Chunk() should return a view, but original slice was not modified")
		}
		// append on a view must not clobber the next chunk
		_ = append(chunks[0], -1)
		if input[2] != 3 {
			t.Errorf("append to chunk overwrote the next chunk: %v", input)
		}
	})
}

func TestChunkCopy(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}
	got, err := sliceutil.ChunkCopy(input, 2)
	if err != nil {
		t.Fatalf("ChunkCopy() error: %v", err)
	}
	if want := [][]int{{1, 2}, {3, 4}, {5}}; !reflect.DeepEqual(got, want) {
		t.Errorf("ChunkCopy() = %v, want %v", got, want)
	}
	got[0][0] = 99
	if input[0] != 1 {
		t.Errorf("ChunkCopy() should copy, but original slice was modified")
	}
	if _, err := sliceutil.ChunkCopy(input, 0); !errors.Is(err, precond.ErrOutOfRange) {
		t.Errorf("ChunkCopy(size=0) error = %v", err)
	}
}

func TestChunkString(t *testing.T) {
	tests := []struct {
		in   string
		size int
		want []string
	}{
		{"abcdef", 2, []string{"ab", "cd", "ef"}},
		{"abcdefg", 3, []string{"abc", "def", "g"}},
		{"ab", 5, []string{"ab"}},
		{"", 3, []string{}},
		{"héllo", 2, []string{"hé", "ll", "o"}},
		{"日本語", 1, []string{"日", "本", "語"}},
	}
	for _, tt := range tests {
		got, err := sliceutil.ChunkString(tt.in, tt.size)
		if err != nil || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ChunkString(%q, %d) = %q, %v; want %q", tt.in, tt.size, got, err, tt.want)
		}
	}
	if _, err := sliceutil.ChunkString("abc", 0); !errors.Is(err, precond.ErrOutOfRange) {
		t.Errorf("ChunkString(size=0) error = %v", err)
	}
}
