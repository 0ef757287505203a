package ratio

import (
	"cmp"
	"hash/maphash"
)

// Equal reports whether r and s have identical numerator and denominator.
// 1/2 and 2/4 are not Equal; see ByValue.
func (r Ratio) Equal(s Ratio) bool {
	return r.num == s.num && r.Denominator() == s.Denominator()
}

// Compare orders r and s by their float32 value and returns -1, 0 or +1.
//
// The comparison is approximate and deliberately not consistent with Equal:
// Compare(1/2, 2/4) == 0 even though they are not Equal, and very close
// fractions may compare as 0.
func (r Ratio) Compare(s Ratio) int {
	return cmp.Compare(r.Float32(), s.Float32())
}

// Compare is Ratio.Compare as a function, for slices.SortFunc and friends.
func Compare(r, s Ratio) int { return r.Compare(s) }

// Comparer is an equality and hash pair, e.g. for building hash-keyed indexes.
// Equal values always produce equal hashes.
type Comparer interface {
	Equal(a, b Ratio) bool
	Hash(r Ratio) uint64
}

var seed = maphash.MakeSeed()

func hashPair(n, d int32) uint64 {
	return maphash.Comparable(seed, [2]int32{n, d})
}

type structural struct{}

func (structural) Equal(a, b Ratio) bool { return a.Equal(b) }
func (structural) Hash(r Ratio) uint64  { return hashPair(r.num, r.Denominator()) }

type byValue struct{}

// Equal compares the float32 values, the same notion Compare uses.
func (byValue) Equal(a, b Ratio) bool {
	return a.Float32() == b.Float32()
}

func (byValue) Hash(r Ratio) uint64 {
	f := r.Float32()
	if f == 0 {
		f = 0 // -0 and +0 are Equal
	}
	return maphash.Comparable(seed, f)
}

var (
	// Structural treats ratios as equal when both components match.
	Structural Comparer = structural{}
	// ByValue treats ratios as equal when their float32 values match: 1/2 == 2/4.
	ByValue Comparer = byValue{}
)
