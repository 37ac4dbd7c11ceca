package bitvector

import "fmt"

// Builder accumulates bits and produces an immutable Vector.
// The zero value is ready to use.
type Builder struct {
	words []uint64
	size  uint32
}

// NewBuilder creates a Builder pre-sized for capBits bits.
func NewBuilder(capBits uint32) *Builder {
	return &Builder{words: make([]uint64, 0, (capBits+wordBits-1)/wordBits)}
}

// Len returns the number of bits appended so far.
func (b *Builder) Len() uint32 { return b.size }

// PushBit appends a single bit.
func (b *Builder) PushBit(set bool) {
	if b.size%wordBits == 0 {
		b.words = append(b.words, 0)
	}
	if set {
		b.words[b.size/wordBits] |= 1 << (b.size % wordBits)
	}
	b.size++
}

// PushZeros appends n unset bits.
func (b *Builder) PushZeros(n uint32) {
	newSize := b.size + n
	need := (newSize + wordBits - 1) / wordBits
	for uint32(len(b.words)) < need {
		b.words = append(b.words, 0)
	}
	b.size = newSize
}

// Set sets the bit at an already-appended position.
func (b *Builder) Set(pos uint32) {
	if pos >= b.size {
		panic(fmt.Sprintf("bitvector: Set position %d out of range [0, %d)", pos, b.size))
	}
	b.words[pos/wordBits] |= 1 << (pos % wordBits)
}

// Build finalizes the accumulated bits into an immutable Vector.
// The Builder must not be used afterwards.
func (b *Builder) Build() *Vector {
	v := finish(b.words, b.size)
	b.words = nil
	b.size = 0
	return v
}
