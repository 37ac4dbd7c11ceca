// Package bitvector provides a static bit vector with constant-time rank
// and near-constant-time select queries.
//
// A Vector is immutable once built and safe for arbitrarily many concurrent
// readers without locking. It is the navigation primitive behind the succinct
// trie encoding: topology and terminal bits are stored as Vectors and walked
// via Rank, Select and FindNextSet instead of pointers.
package bitvector
