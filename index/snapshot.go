package index

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/arloliu/soundex/errs"
	"github.com/arloliu/soundex/internal/pool"
)

const (
	// HeaderSize is the size of the snapshot header in bytes.
	HeaderSize = 12
	// Version is the snapshot format version written by MarshalBinary.
	Version = 1

	magic0 = 'S'
	magic1 = 'X'

	compressionMask = 0x0f
	bigEndianFlag   = 0x10
)

// MarshalBinary encodes the index into a snapshot using the configured compression and
// byte order. It implements encoding.BinaryMarshaler.
func (idx *Index) MarshalBinary() ([]byte, error) {
	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	idx.mu.RLock()
	count := len(idx.words)
	for _, code := range idx.sortedCodes() {
		for _, word := range idx.buckets[idx.id(code)].words {
			buf.B = binary.AppendUvarint(buf.B, uint64(len(word)))
			_, _ = buf.WriteString(word)
		}
	}
	idx.mu.RUnlock()

	payload := buf.Bytes()
	checksum := crc32.ChecksumIEEE(payload)

	packed, err := idx.cfg.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}

	engine := idx.cfg.engine
	out := make([]byte, 0, HeaderSize+len(packed))
	out = append(out, magic0, magic1, Version, idx.cfg.flags())
	out = engine.AppendUint32(out, uint32(count)) //nolint: gosec
	out = engine.AppendUint32(out, checksum)
	out = append(out, packed...)

	return out, nil
}

// Load decodes a snapshot produced by MarshalBinary.
//
// The returned index keeps the compression and byte order recorded in the snapshot.
// Codes are recomputed from the stored words.
//
// Returns:
//   - errs.ErrInvalidHeaderSize if data is shorter than the header
//   - errs.ErrInvalidMagicNumber, errs.ErrUnsupportedVersion for a foreign header
//   - errs.ErrUnsupportedCompression for an unknown compression type
//   - errs.ErrChecksumMismatch, errs.ErrInvalidSnapshot for a damaged payload
func Load(data []byte) (*Index, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	if data[0] != magic0 || data[1] != magic1 {
		return nil, fmt.Errorf("%w: 0x%02x%02x", errs.ErrInvalidMagicNumber, data[0], data[1])
	}

	if data[2] != Version {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[2])
	}

	cfg, err := parseFlags(data[3])
	if err != nil {
		return nil, err
	}

	count := cfg.engine.Uint32(data[4:8])
	checksum := cfg.engine.Uint32(data[8:12])

	payload, err := cfg.codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	if got := crc32.ChecksumIEEE(payload); got != checksum {
		return nil, fmt.Errorf("%w: got 0x%08x, want 0x%08x", errs.ErrChecksumMismatch, got, checksum)
	}

	words, err := decodeWords(payload, count)
	if err != nil {
		return nil, err
	}

	idx := newIndex(cfg)
	if err := idx.Add(words...); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	if idx.Len() != len(words) {
		return nil, fmt.Errorf("%w: duplicate words in payload", errs.ErrInvalidSnapshot)
	}

	return idx, nil
}

func decodeWords(payload []byte, count uint32) ([]string, error) {
	// every word takes at least two bytes, which bounds a bogus count
	if 2*uint64(count) > uint64(len(payload)) {
		return nil, fmt.Errorf("%w: word count %d exceeds payload size %d", errs.ErrInvalidSnapshot, count, len(payload))
	}

	words := make([]string, 0, count)
	offset := 0
	for i := uint32(0); i < count; i++ {
		n, size := binary.Uvarint(payload[offset:])
		if size <= 0 {
			return nil, fmt.Errorf("%w: bad length prefix for word #%d", errs.ErrInvalidSnapshot, i)
		}
		offset += size

		if n > uint64(len(payload)-offset) {
			return nil, fmt.Errorf("%w: word #%d overruns payload", errs.ErrInvalidSnapshot, i)
		}

		words = append(words, string(payload[offset:offset+int(n)]))
		offset += int(n)
	}

	if offset != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidSnapshot, len(payload)-offset)
	}

	return words, nil
}
