// Package format defines the wire-level identifiers used by soundex index snapshots.
package format

// CompressionType identifies the codec applied to a snapshot payload. It is stored in the
// low nibble of the snapshot flags byte.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload as is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd compresses the payload with Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 compresses the payload with S2.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 compresses the payload with LZ4 blocks.
)

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
