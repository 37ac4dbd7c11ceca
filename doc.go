// Package triego provides a succinct, immutable trie index for Go.
//
// A trie is built once from a sorted, deduplicated key set and then queried
// by arbitrarily many concurrent lookups. Each lookup maps a key either to
// "absent" or to a dense ordinal in [0, Len()) usable as an index into an
// associated value array.
//
// The trie is stored in a LOUDS (Level-Order Unary Degree Sequence)
// representation: flat per-level label arrays plus rank/select bit vectors
// describing topology and terminal markers. There are no node objects and no
// pointer chasing, which keeps the structure dense and the lookup hot path
// allocation free.
//
// # Quick Start
//
//	trie, _ := triego.Build([][]byte{
//	    []byte("car"), []byte("cat"), []byte("dog"),
//	})
//
//	view := trie.View()
//	ord := view.Lookup([]byte("cat"))    // dense ordinal
//	miss := view.Lookup([]byte("ca"))    // core.AbsentOrdinal: prefix only
//
// # Batch Lookups
//
// Lookups are pure functions of (trie, key); the batch driver fans them out
// across goroutines with no locking:
//
//	ords, _ := view.LookupAll(ctx, keys, triego.WithParallelism(8))
//
// # Persistence
//
// A built trie can be written to a self-describing binary snapshot and stored
// in any blob store (local disk, memory, S3). See the snapshot and blobstore
// packages.
package triego
