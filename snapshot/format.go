package snapshot

import "errors"

const (
	// MagicNumber identifies trie snapshot files (ASCII: "TRI1")
	MagicNumber = 0x54524931
	// Version is the current file format version (v1.0.0)
	Version = 0x00010000
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidCompression = errors.New("unknown compression codec")
)

// FileHeader is the 32-byte header at the start of every snapshot.
type FileHeader struct {
	Magic       uint32 // 0x54524931 ("TRI1")
	Version     uint32 // File format version
	Levels      uint32 // Number of trie levels (max key length + 1)
	Compression uint8  // CompressionType of the body block
	Padding     [3]byte
	NumKeys     uint64 // Total number of stored keys
	Reserved    [8]byte // Future use
}
