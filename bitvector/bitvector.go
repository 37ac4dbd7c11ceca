package bitvector

import (
	"math/bits"
	"sort"
)

const (
	wordBits = 64

	// superblockWords is the rank sampling interval.
	// 8 words = 512 bits per superblock.
	superblockWords = 8
	superblockBits  = superblockWords * wordBits
)

// Vector is a static bit vector with rank/select support.
// It is immutable after construction and safe for concurrent reads.
type Vector struct {
	words []uint64
	ranks []uint32 // ranks[i] = set bits in words[:i*superblockWords]
	size  uint32   // length in bits
	count uint32   // total set bits
}

// Len returns the length of the vector in bits.
func (v *Vector) Len() uint32 { return v.size }

// Count returns the total number of set bits.
func (v *Vector) Count() uint32 { return v.count }

// Get returns the bit at pos. pos must be < Len().
func (v *Vector) Get(pos uint32) bool {
	return v.words[pos/wordBits]>>(pos%wordBits)&1 == 1
}

// Rank returns the number of set bits in [0, pos). The bound is exclusive:
// Rank(0) is 0 and Rank(Len()) is Count(). pos must be <= Len().
func (v *Vector) Rank(pos uint32) uint32 {
	r := v.ranks[pos/superblockBits]
	for w := pos / superblockBits * superblockWords; w < pos/wordBits; w++ {
		r += uint32(bits.OnesCount64(v.words[w]))
	}
	if rem := pos % wordBits; rem != 0 {
		r += uint32(bits.OnesCount64(v.words[pos/wordBits] & (1<<rem - 1)))
	}
	return r
}

// Select returns the position of the (n+1)-th set bit, so Select(0) is the
// first set bit. n must be < Count().
func (v *Vector) Select(n uint32) uint32 {
	// Superblock ranks are non-decreasing; find the last block whose
	// cumulative rank is still <= n, then scan its words.
	sb := sort.Search(len(v.ranks), func(i int) bool { return v.ranks[i] > n }) - 1
	r := v.ranks[sb]
	for w := uint32(sb) * superblockWords; ; w++ {
		c := uint32(bits.OnesCount64(v.words[w]))
		if r+c > n {
			return w*wordBits + selectInWord(v.words[w], n-r)
		}
		r += c
	}
}

// FindNextSet returns the position of the first set bit at or after pos,
// or Len() when no such bit exists.
func (v *Vector) FindNextSet(pos uint32) uint32 {
	if pos >= v.size {
		return v.size
	}
	w := pos / wordBits
	if masked := v.words[w] &^ (1<<(pos%wordBits) - 1); masked != 0 {
		return w*wordBits + uint32(bits.TrailingZeros64(masked))
	}
	for w++; w < uint32(len(v.words)); w++ {
		if v.words[w] != 0 {
			return w*wordBits + uint32(bits.TrailingZeros64(v.words[w]))
		}
	}
	return v.size
}

// Words exposes the backing word array for serialization.
// The returned slice must not be modified.
func (v *Vector) Words() []uint64 { return v.words }

// FromWords reconstructs a Vector of size bits from a backing word array,
// recomputing the rank index. Bits at or beyond size are cleared. The words
// slice is retained by the Vector.
func FromWords(words []uint64, size uint32) *Vector {
	need := int((size + wordBits - 1) / wordBits)
	if len(words) > need {
		words = words[:need]
	} else if len(words) < need {
		grown := make([]uint64, need)
		copy(grown, words)
		words = grown
	}
	if rem := size % wordBits; rem != 0 {
		words[len(words)-1] &= 1<<rem - 1
	}
	return finish(words, size)
}

// finish computes the rank index over a finalized word array.
func finish(words []uint64, size uint32) *Vector {
	ranks := make([]uint32, len(words)/superblockWords+1)
	var total uint32
	for i, w := range words {
		if i%superblockWords == 0 {
			ranks[i/superblockWords] = total
		}
		total += uint32(bits.OnesCount64(w))
	}
	if len(words)%superblockWords == 0 {
		ranks[len(ranks)-1] = total
	}
	return &Vector{words: words, ranks: ranks, size: size, count: total}
}

// selectInWord returns the position of the (k+1)-th set bit within w.
func selectInWord(w uint64, k uint32) uint32 {
	for ; k > 0; k-- {
		w &= w - 1
	}
	return uint32(bits.TrailingZeros64(w))
}
