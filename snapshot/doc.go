// Package snapshot reads and writes the binary snapshot format for a built
// trie.
//
// A snapshot is a single self-describing blob: a fixed header (magic,
// version, level count, key count, compression codec), one compressed block
// holding all per-level sections, and a CRC32 trailer. Snapshots are written
// once and read whole; the format carries no mutable state.
package snapshot
