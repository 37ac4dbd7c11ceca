package core

// NodeID is a dense, within-level node coordinate in a succinct trie.
// It is strictly 32-bit, allowing for max 4 Billion nodes per level.
// It flows through the whole descent: child ranges, label positions and the
// node coordinate rewritten at each level.
type NodeID uint32

// MaxNodeID is the maximum possible value for a NodeID.
const MaxNodeID = ^NodeID(0)

// Ordinal is the dense integer identifier assigned to a stored key.
// Ordinals are contiguous in [0, total keys) and are intended to index an
// associated value array.
type Ordinal uint64

// AbsentOrdinal signals that a key is not present in the trie.
// It is the all-ones bit pattern, which is unreachable as a valid Ordinal
// because valid ordinals are always strictly less than the key count.
const AbsentOrdinal = ^Ordinal(0)
