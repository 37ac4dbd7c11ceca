package triego

import (
	"bytes"
	"fmt"

	"github.com/hupe1980/triego/bitvector"
	"github.com/hupe1980/triego/core"
)

// Builder constructs a Trie from keys added in ascending lexicographic byte
// order. The builder owns copies of the keys; callers may reuse their buffers
// between Add calls.
type Builder struct {
	keys     [][]byte
	logger   *Logger
	consumed bool
}

// NewBuilder creates a Builder.
func NewBuilder(optFns ...BuilderOption) *Builder {
	opts := builderOptions{Logger: NoopLogger()}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Builder{
		keys:   make([][]byte, 0, opts.ExpectedKeys),
		logger: opts.Logger,
	}
}

// Add appends a key. Keys must arrive strictly ascending: Add returns
// ErrKeysNotSorted or ErrDuplicateKey on violations. The empty key is
// allowed and must come first.
func (b *Builder) Add(key []byte) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	if n := len(b.keys); n > 0 {
		switch bytes.Compare(b.keys[n-1], key) {
		case 0:
			return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		case 1:
			return fmt.Errorf("%w: %q after %q", ErrKeysNotSorted, key, b.keys[n-1])
		}
	}
	b.keys = append(b.keys, bytes.Clone(key))
	return nil
}

// Len returns the number of keys added so far.
func (b *Builder) Len() int { return len(b.keys) }

// Build constructs the succinct trie. The Builder must not be reused
// afterwards.
func (b *Builder) Build() (*Trie, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	maxLen := 0
	for _, k := range b.keys {
		if len(k) > maxLen {
			maxLen = len(k)
		}
	}

	// span is one node: the run of keys sharing this node's prefix.
	type span struct{ lo, hi int }

	levels := make([]Level, maxLen+1)
	cur := []span{{0, len(b.keys)}}
	var offset core.Ordinal

	for depth := 0; depth <= maxLen; depth++ {
		if uint64(len(cur)) > uint64(core.MaxNodeID) {
			return nil, fmt.Errorf("level %d: %d nodes overflow the node coordinate space", depth, len(cur))
		}

		term := bitvector.NewBuilder(uint32(len(cur)))
		var topo *bitvector.Builder
		var labels []byte
		var next []span
		if depth < maxLen {
			topo = bitvector.NewBuilder(uint32(len(cur)) * 2)
		}

		for _, s := range cur {
			// Sorted input puts a key ending at this node, if any, first
			// in its run.
			isTerminal := s.lo < s.hi && len(b.keys[s.lo]) == depth
			term.PushBit(isTerminal)

			if depth == maxLen {
				// Nodes at the deepest level cannot have children, so
				// there is no topology to emit below them.
				continue
			}

			j := s.lo
			if isTerminal {
				j++
			}
			var children uint32
			for j < s.hi {
				label := b.keys[j][depth]
				k := j + 1
				for k < s.hi && b.keys[k][depth] == label {
					k++
				}
				labels = append(labels, label)
				next = append(next, span{j, k})
				children++
				j = k
			}
			// LOUDS unary degree: one zero per child, then the terminator.
			topo.PushZeros(children)
			topo.PushBit(true)
		}

		levels[depth].Terminal = term.Build()
		levels[depth].Offset = offset
		offset += core.Ordinal(levels[depth].Terminal.Count())

		if depth < maxLen {
			levels[depth+1].Labels = labels
			levels[depth+1].Topology = topo.Build()
		}
		cur = next
	}

	trie, err := New(levels, uint64(len(b.keys)))
	b.logger.LogBuild(len(b.keys), len(levels), err)
	if err != nil {
		return nil, err
	}
	b.keys = nil
	return trie, nil
}

// Build constructs a Trie from keys in ascending lexicographic byte order.
func Build(keys [][]byte, optFns ...BuilderOption) (*Trie, error) {
	b := NewBuilder(append(optFns, WithExpectedKeys(len(keys)))...)
	for _, k := range keys {
		if err := b.Add(k); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
