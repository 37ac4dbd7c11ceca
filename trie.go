package triego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/triego/bitvector"
	"github.com/hupe1980/triego/core"
)

// Level holds the flat arrays for all trie nodes at one depth.
//
// Nodes at a depth are identified by their position in these arrays: all
// children of one parent occupy a contiguous ascending run of Labels with no
// duplicate label inside a run.
type Level struct {
	// Labels holds one edge label per node at this depth. Empty at depth 0
	// (the root has no incoming edge).
	Labels []byte

	// Topology is the LOUDS bit vector for this depth: for each node at the
	// depth above, in node order, one unset bit per child followed by a set
	// terminator bit. Unused at depth 0.
	Topology *bitvector.Vector

	// Terminal has one bit per node at this depth, set when a stored key of
	// exactly this length ends at that node.
	Terminal *bitvector.Vector

	// Offset is the count of terminal bits set at strictly shallower levels.
	// It translates a within-level terminal rank into a global ordinal.
	Offset core.Ordinal
}

// numNodes returns the number of nodes at this depth.
func (l *Level) numNodes() uint32 { return l.Terminal.Len() }

// Trie is a succinct, immutable trie index mapping keys to dense ordinals.
//
// A Trie is produced once by a Builder (or decoded from a snapshot) and is
// never mutated afterwards, so any number of concurrent lookups may read it
// without synchronization.
type Trie struct {
	levels  []Level
	numKeys uint64
}

// New assembles a Trie from prebuilt levels, verifying the structural
// invariants that the lookup algorithm relies on.
func New(levels []Level, numKeys uint64) (*Trie, error) {
	if len(levels) == 0 {
		return nil, errors.New("trie must have at least the root level")
	}
	root := &levels[0]
	if len(root.Labels) != 0 {
		return nil, &ErrLevelMismatch{Depth: 0, Expected: 0, Actual: uint32(len(root.Labels))}
	}
	if root.Terminal == nil || root.Terminal.Len() != 1 {
		return nil, errors.New("root level must hold exactly one node")
	}
	if root.Offset != 0 {
		return nil, errors.New("root level offset must be zero")
	}

	total := core.Ordinal(root.Terminal.Count())
	for d := 1; d < len(levels); d++ {
		lvl, parent := &levels[d], &levels[d-1]
		if lvl.Topology == nil || lvl.Terminal == nil {
			return nil, fmt.Errorf("level %d: missing bit vectors", d)
		}
		// One terminator per parent node, one zero per node at this depth.
		if lvl.Topology.Count() != parent.numNodes() {
			return nil, &ErrLevelMismatch{Depth: d, Expected: parent.numNodes(), Actual: lvl.Topology.Count()}
		}
		nodes := lvl.Topology.Len() - lvl.Topology.Count()
		if uint32(len(lvl.Labels)) != nodes || lvl.Terminal.Len() != nodes {
			return nil, &ErrLevelMismatch{Depth: d, Expected: nodes, Actual: lvl.Terminal.Len()}
		}
		if lvl.Offset != total {
			return nil, &ErrLevelMismatch{Depth: d, Expected: uint32(total), Actual: uint32(lvl.Offset)}
		}
		total += core.Ordinal(lvl.Terminal.Count())
	}
	if uint64(total) != numKeys {
		return nil, &ErrLevelMismatch{Depth: len(levels) - 1, Expected: uint32(numKeys), Actual: uint32(total)}
	}

	return &Trie{levels: levels, numKeys: numKeys}, nil
}

// Len returns the number of stored keys. Valid ordinals are [0, Len()).
func (t *Trie) Len() uint64 { return t.numKeys }

// NumLevels returns the number of levels, MaxDepth()+1.
func (t *Trie) NumLevels() int { return len(t.levels) }

// MaxDepth returns the length of the longest stored key.
func (t *Trie) MaxDepth() int { return len(t.levels) - 1 }

// Level returns the level at the given depth.
func (t *Trie) Level(depth int) Level { return t.levels[depth] }

// View returns a lightweight read-only handle for lookups. Views are plain
// values: copy them freely into concurrent goroutines. A View is valid for
// as long as the Trie it was derived from.
func (t *Trie) View() View { return View{trie: t} }
