//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/valyala/gozstd"

	"github.com/arloliu/soundex/errs"
)

const gozstdLevel = 3

// Compress compresses the input data using the cgo Zstandard bindings.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decompresses Zstd-compressed data using the cgo bindings.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	// gozstd has no output limit, so the declared frame size is checked up front.
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if !h.HasFCS || h.FrameContentSize > MaxDecodedSize {
		return nil, fmt.Errorf("%w: zstd frame declares %d bytes", errs.ErrDecodedSizeExceeded, h.FrameContentSize)
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
