package triego_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hupe1980/triego"
	"github.com/hupe1980/triego/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordSet is sorted and exercises shared prefixes, nested keys and
// divergence at every depth.
var wordSet = keys(
	"a", "about", "and", "bird",
	"car", "carbon", "card", "care", "cat", "cattle",
	"dog", "dote", "zoo",
)

func TestView_RoundTripMembership(t *testing.T) {
	trie, err := triego.Build(wordSet)
	require.NoError(t, err)

	view := trie.View()
	for _, key := range wordSet {
		ord := view.Lookup(key)
		require.NotEqual(t, core.AbsentOrdinal, ord, "key %q", key)
		require.Less(t, uint64(ord), trie.Len(), "key %q", key)
	}

	for _, key := range keys("", "b", "ca", "carb", "cars", "cattl", "cattles", "dogs", "e", "zo", "zzz") {
		assert.Equal(t, core.AbsentOrdinal, view.Lookup(key), "key %q", key)
	}
}

func TestView_OrdinalDensity(t *testing.T) {
	trie, err := triego.Build(wordSet)
	require.NoError(t, err)

	view := trie.View()
	seen := make(map[core.Ordinal]string, len(wordSet))
	for _, key := range wordSet {
		ord := view.Lookup(key)
		prev, dup := seen[ord]
		require.False(t, dup, "ordinal %d assigned to both %q and %q", ord, prev, key)
		seen[ord] = string(key)
	}

	// Exactly {0, ..., n-1}, no gaps.
	for i := range wordSet {
		assert.Contains(t, seen, core.Ordinal(i))
	}
}

func TestView_NestedKeys(t *testing.T) {
	// Every key is a prefix of the next; terminal bits must distinguish them.
	trie, err := triego.Build(keys("a", "ab", "abc", "abcd"))
	require.NoError(t, err)

	view := trie.View()
	for _, key := range keys("a", "ab", "abc", "abcd") {
		assert.NotEqual(t, core.AbsentOrdinal, view.Lookup(key), "key %q", key)
	}
	assert.Equal(t, core.AbsentOrdinal, view.Lookup([]byte("abcde")))
}

func TestView_KeyLongerThanTrie(t *testing.T) {
	trie, err := triego.Build(keys("ab"))
	require.NoError(t, err)

	// Deeper than any built level: absent without traversal.
	view := trie.View()
	assert.Equal(t, core.AbsentOrdinal, view.Lookup([]byte("abcdefgh")))
}

func TestView_Idempotence(t *testing.T) {
	trie, err := triego.Build(wordSet)
	require.NoError(t, err)

	view := trie.View()
	first := view.Lookup([]byte("carbon"))
	for i := 0; i < 100; i++ {
		require.Equal(t, first, view.Lookup([]byte("carbon")))
	}
}

func TestView_Zero(t *testing.T) {
	var view triego.View
	assert.Equal(t, core.AbsentOrdinal, view.Lookup([]byte("a")))
	assert.False(t, view.Contains(nil))
	assert.Nil(t, view.Trie())
}

func TestView_ConcurrentLookups(t *testing.T) {
	trie, err := triego.Build(wordSet)
	require.NoError(t, err)

	expected := make([]core.Ordinal, len(wordSet))
	view := trie.View()
	for i, key := range wordSet {
		expected[i] = view.Lookup(key)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		// Each goroutine copies the view by value.
		go func(v triego.View) {
			defer wg.Done()
			for iter := 0; iter < 200; iter++ {
				for i, key := range wordSet {
					if got := v.Lookup(key); got != expected[i] {
						t.Errorf("key %q: expected %d, got %d", key, expected[i], got)
						return
					}
				}
			}
		}(trie.View())
	}
	wg.Wait()
}

func BenchmarkView_Lookup(b *testing.B) {
	var built [][]byte
	for i := 0; i < 10000; i++ {
		built = append(built, []byte(fmt.Sprintf("key-%08d", i)))
	}
	trie, err := triego.Build(built)
	if err != nil {
		b.Fatal(err)
	}

	view := trie.View()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if view.Lookup(built[i%len(built)]) == core.AbsentOrdinal {
			b.Fatal("unexpected miss")
		}
	}
}
