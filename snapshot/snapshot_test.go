package snapshot

import (
	"bytes"
	"context"
	"testing"

	"github.com/hupe1980/triego"
	"github.com/hupe1980/triego/blobstore"
	"github.com/hupe1980/triego/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKeys = [][]byte{
	[]byte(""), []byte("car"), []byte("carbon"), []byte("cat"),
	[]byte("dog"), []byte("dolphin"), []byte("zoo"),
}

func buildTestTrie(t *testing.T) *triego.Trie {
	t.Helper()
	trie, err := triego.Build(testKeys)
	require.NoError(t, err)
	return trie
}

func TestWriteRead_RoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		compression CompressionType
	}{
		{name: "none", compression: CompressionNone},
		{name: "lz4", compression: CompressionLZ4},
		{name: "zstd", compression: CompressionZSTD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trie := buildTestTrie(t)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, trie, WithCompression(tt.compression)))

			restored, err := Read(&buf)
			require.NoError(t, err)
			require.Equal(t, trie.Len(), restored.Len())
			require.Equal(t, trie.NumLevels(), restored.NumLevels())

			view, restoredView := trie.View(), restored.View()
			for _, key := range testKeys {
				assert.Equal(t, view.Lookup(key), restoredView.Lookup(key), "key %q", key)
			}
			for _, key := range [][]byte{[]byte("ca"), []byte("cars"), []byte("x")} {
				assert.Equal(t, core.AbsentOrdinal, restoredView.Lookup(key), "key %q", key)
			}
		})
	}
}

func TestRead_ChecksumMismatch(t *testing.T) {
	trie := buildTestTrie(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, trie))

	corrupted := buf.Bytes()
	corrupted[len(corrupted)/2] ^= 0xff

	_, err := Read(bytes.NewReader(corrupted))
	var mismatch *ChecksumMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestRead_InvalidMagic(t *testing.T) {
	data := make([]byte, 64)
	_, err := Read(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestRead_Truncated(t *testing.T) {
	trie := buildTestTrie(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, trie))

	_, err := Read(bytes.NewReader(buf.Bytes()[:buf.Len()/2]))
	require.Error(t, err)
}

func TestCompression_ByName(t *testing.T) {
	for _, name := range []string{"none", "lz4", "zstd"} {
		ct, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, ct.String())
	}

	_, ok := ByName("gzip")
	assert.False(t, ok)
}

func TestSaveLoad_BlobStore(t *testing.T) {
	ctx := context.Background()
	trie := buildTestTrie(t)
	store := blobstore.NewMemoryStore()

	require.NoError(t, Save(ctx, store, "tries/words.trie", trie, WithCompression(CompressionZSTD)))

	names, err := store.List(ctx, "tries/")
	require.NoError(t, err)
	require.Equal(t, []string{"tries/words.trie"}, names)

	restored, err := Load(ctx, store, "tries/words.trie")
	require.NoError(t, err)
	assert.Equal(t, trie.Len(), restored.Len())

	view := restored.View()
	for _, key := range testKeys {
		assert.True(t, view.Contains(key), "key %q", key)
	}
}

func TestLoad_NotFound(t *testing.T) {
	store := blobstore.NewMemoryStore()
	_, err := Load(context.Background(), store, "missing.trie")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}
