package triego

import (
	"github.com/hupe1980/triego/bitvector"
	"github.com/hupe1980/triego/core"
)

// View is a non-owning, copyable handle to a Trie used for lookups.
// The zero View reports every key absent.
type View struct {
	trie *Trie
}

// Lookup walks the trie level by level and returns the key's dense ordinal,
// or core.AbsentOrdinal when the key is not stored.
//
// Lookup is a pure function of (trie, key): it performs no allocation, takes
// no locks and may be called from any number of goroutines concurrently.
func (v View) Lookup(key []byte) core.Ordinal {
	t := v.trie
	if t == nil || len(key) >= len(t.levels) {
		// Longer than any stored key: absent without touching level arrays.
		return core.AbsentOrdinal
	}

	// Level-by-level descent. nodeID is the coordinate of the current node
	// within its level and is rewritten by each successful label search.
	var nodeID core.NodeID
	for depth := 1; depth <= len(key); depth++ {
		lvl := &t.levels[depth]
		begin, end := childRange(lvl.Topology, nodeID)
		var ok bool
		if nodeID, ok = searchLabel(lvl.Labels, begin, end, key[depth-1]); !ok {
			return core.AbsentOrdinal
		}
	}

	// The whole key matched as a path; it is stored only if the final node
	// carries a terminal bit. A zero-length key lands here immediately and
	// checks the root's own bit.
	leaf := &t.levels[len(key)]
	if !leaf.Terminal.Get(uint32(nodeID)) {
		return core.AbsentOrdinal
	}
	return leaf.Offset + core.Ordinal(leaf.Terminal.Rank(uint32(nodeID)))
}

// Contains reports whether the key is stored in the trie.
func (v View) Contains(key []byte) bool {
	return v.Lookup(key) != core.AbsentOrdinal
}

// Trie returns the underlying trie, or nil for the zero View.
func (v View) Trie() *Trie { return v.trie }

// childRange locates the contiguous [begin, end) run of a node's children
// within the arrays of the level below it.
//
// The topology vector interleaves unary child counts with terminator bits,
// so raw positions contain one separator per preceding parent; subtracting
// nodeID removes them and yields child-level coordinates. Leaves produce an
// empty range.
func childRange(topo *bitvector.Vector, nodeID core.NodeID) (core.NodeID, core.NodeID) {
	var raw uint32
	var begin core.NodeID
	if nodeID != 0 {
		raw = topo.Select(uint32(nodeID)-1) + 1
		begin = core.NodeID(raw) - nodeID
	}
	return begin, begin + core.NodeID(topo.FindNextSet(raw)-raw)
}

// searchLabel binary-searches labels[begin:end], known to be ascending and
// duplicate free, for target. On success the returned position doubles as
// the node coordinate for the next level; failure is structural (the range
// emptied), not a separate error value.
func searchLabel(labels []byte, begin, end core.NodeID, target byte) (core.NodeID, bool) {
	pos := begin
	for begin < end {
		pos = (begin + end) / 2
		switch l := labels[pos]; {
		case target < l:
			end = pos
		case target > l:
			begin = pos + 1
		default:
			return pos, true
		}
	}
	return pos, false
}
