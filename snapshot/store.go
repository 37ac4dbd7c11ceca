package snapshot

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/triego"
	"github.com/hupe1980/triego/blobstore"
)

// Save serializes the trie and writes it to the blob store under name.
func Save(ctx context.Context, store blobstore.Store, name string, t *triego.Trie, optFns ...Option) error {
	var buf bytes.Buffer
	if err := Write(&buf, t, optFns...); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return store.Put(ctx, name, buf.Bytes())
}

// Load reads the named snapshot from the blob store and reassembles the trie.
func Load(ctx context.Context, store blobstore.Store, name string) (*triego.Trie, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = blob.Close() }()

	r := bufio.NewReader(io.NewSectionReader(blob, 0, blob.Size()))
	return Read(r)
}
