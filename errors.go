package triego

import (
	"errors"
	"fmt"
)

var (
	// ErrKeysNotSorted is returned when a key is added out of lexicographic
	// byte order.
	ErrKeysNotSorted = errors.New("keys must be added in ascending order")

	// ErrDuplicateKey is returned when the same key is added twice.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrBuilderConsumed is returned when a Builder is reused after Build.
	ErrBuilderConsumed = errors.New("builder already consumed")
)

// Absence of a key is NOT an error: Lookup reports it through the
// core.AbsentOrdinal sentinel so the hot path stays branch-predictable and
// allocation free. The errors here cover construction and validation only.

// ErrLevelMismatch indicates a trie whose per-level arrays disagree about the
// number of nodes at some depth.
type ErrLevelMismatch struct {
	Depth    int
	Expected uint32
	Actual   uint32
}

func (e *ErrLevelMismatch) Error() string {
	return fmt.Sprintf("level %d: expected %d nodes, got %d", e.Depth, e.Expected, e.Actual)
}
