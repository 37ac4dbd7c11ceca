package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/triego"
	"github.com/hupe1980/triego/bitvector"
	"github.com/hupe1980/triego/core"
)

// options contains configuration for writing snapshots.
type options struct {
	// Compression selects the codec for the body block.
	Compression CompressionType
}

// Option configures snapshot writing.
type Option func(*options)

// WithCompression selects the body compression codec.
func WithCompression(ct CompressionType) Option {
	return func(opts *options) {
		opts.Compression = ct
	}
}

// Write serializes a built trie to w: header, one body block, CRC32 trailer.
func Write(w io.Writer, t *triego.Trie, optFns ...Option) error {
	opts := options{Compression: CompressionNone}
	for _, fn := range optFns {
		fn(&opts)
	}

	cw := NewChecksumWriter(w)

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Levels:      uint32(t.NumLevels()),
		Compression: uint8(opts.Compression),
		NumKeys:     t.Len(),
	}
	if err := binary.Write(cw, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	block, err := compressBlock(encodeBody(t), opts.Compression)
	if err != nil {
		return fmt.Errorf("compress body: %w", err)
	}
	if _, err := cw.Write(block); err != nil {
		return fmt.Errorf("write body: %w", err)
	}

	// Trailer is the checksum of everything before it.
	return binary.Write(w, binary.LittleEndian, cw.Sum())
}

// Read decodes a snapshot, verifies its checksum and reassembles the trie,
// revalidating the structural invariants.
func Read(r io.Reader) (*triego.Trie, error) {
	cr := NewChecksumReader(r)

	var header FileHeader
	if err := binary.Read(cr, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version {
		return nil, ErrInvalidVersion
	}
	ct := CompressionType(header.Compression)
	if ct > CompressionZSTD {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, header.Compression)
	}

	var blockHeader [blockHeaderSize]byte
	if _, err := io.ReadFull(cr, blockHeader[:]); err != nil {
		return nil, fmt.Errorf("read body header: %w", err)
	}
	uncompressedSize := binary.LittleEndian.Uint32(blockHeader[0:])
	compressedSize := binary.LittleEndian.Uint32(blockHeader[4:])

	payloadLen := compressedSize
	if compressedSize == 0 {
		payloadLen = uncompressedSize
	}
	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(cr, payload); err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	// Verify before trusting any of the decoded bytes.
	var sum uint32
	if err := binary.Read(r, binary.LittleEndian, &sum); err != nil {
		return nil, fmt.Errorf("read trailer: %w", err)
	}
	if err := cr.Verify(sum); err != nil {
		return nil, err
	}

	body := payload
	if compressedSize != 0 {
		var err error
		if body, err = decompressBlock(payload, uncompressedSize, ct); err != nil {
			return nil, fmt.Errorf("decompress body: %w", err)
		}
	}

	levels, err := decodeBody(body, int(header.Levels))
	if err != nil {
		return nil, err
	}
	return triego.New(levels, header.NumKeys)
}

// encodeBody lays out the per-level sections little-endian:
// labels, topology words, terminal words, ordinal offset.
func encodeBody(t *triego.Trie) []byte {
	var buf bytes.Buffer
	for d := 0; d < t.NumLevels(); d++ {
		lvl := t.Level(d)
		writeUint32(&buf, uint32(len(lvl.Labels)))
		buf.Write(lvl.Labels)
		writeVector(&buf, lvl.Topology)
		writeVector(&buf, lvl.Terminal)
		var off [8]byte
		binary.LittleEndian.PutUint64(off[:], uint64(lvl.Offset))
		buf.Write(off[:])
	}
	return buf.Bytes()
}

// decodeBody is the inverse of encodeBody.
func decodeBody(body []byte, levels int) ([]triego.Level, error) {
	r := bytes.NewReader(body)
	out := make([]triego.Level, levels)
	for d := range out {
		labelsLen, err := readUint32(r)
		if err != nil {
			return nil, fmt.Errorf("level %d labels: %w", d, err)
		}
		labels := make([]byte, labelsLen)
		if _, err := io.ReadFull(r, labels); err != nil {
			return nil, fmt.Errorf("level %d labels: %w", d, err)
		}
		topology, err := readVector(r)
		if err != nil {
			return nil, fmt.Errorf("level %d topology: %w", d, err)
		}
		terminal, err := readVector(r)
		if err != nil {
			return nil, fmt.Errorf("level %d terminal: %w", d, err)
		}
		var off [8]byte
		if _, err := io.ReadFull(r, off[:]); err != nil {
			return nil, fmt.Errorf("level %d offset: %w", d, err)
		}
		out[d] = triego.Level{
			Labels:   labels,
			Topology: topology,
			Terminal: terminal,
			Offset:   core.Ordinal(binary.LittleEndian.Uint64(off[:])),
		}
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after level sections", r.Len())
	}
	return out, nil
}

// writeVector emits [sizeBits u32][wordCount u32][words u64...].
// A nil vector is written as an empty one.
func writeVector(buf *bytes.Buffer, v *bitvector.Vector) {
	if v == nil {
		writeUint32(buf, 0)
		writeUint32(buf, 0)
		return
	}
	words := v.Words()
	writeUint32(buf, v.Len())
	writeUint32(buf, uint32(len(words)))
	var w [8]byte
	for _, word := range words {
		binary.LittleEndian.PutUint64(w[:], word)
		buf.Write(w[:])
	}
}

func readVector(r *bytes.Reader) (*bitvector.Vector, error) {
	size, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	wordCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	if want := (size + 63) / 64; wordCount != want {
		return nil, fmt.Errorf("expected %d words for %d bits, got %d", want, size, wordCount)
	}
	words := make([]uint64, wordCount)
	var w [8]byte
	for i := range words {
		if _, err := io.ReadFull(r, w[:]); err != nil {
			return nil, err
		}
		words[i] = binary.LittleEndian.Uint64(w[:])
	}
	return bitvector.FromWords(words, size), nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}
