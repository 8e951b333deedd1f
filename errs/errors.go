// Package errs defines the sentinel errors returned by soundex packages.
//
// Callers should match them with errors.Is, since most are wrapped with additional context.
package errs

import "errors"

var (
	// ErrEmptyWord is returned when an empty word is given to the encoder.
	ErrEmptyWord = errors.New("empty word")
	// ErrInvalidCode is returned when a string is not a well-formed Soundex code.
	ErrInvalidCode = errors.New("invalid soundex code")
	// ErrHashCollision is returned when two different codes share a bucket hash.
	ErrHashCollision = errors.New("code hash collision")
)

// Snapshot errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid snapshot header size")
	ErrInvalidMagicNumber     = errors.New("invalid snapshot magic number")
	ErrUnsupportedVersion     = errors.New("unsupported snapshot version")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	ErrChecksumMismatch       = errors.New("snapshot checksum mismatch")
	ErrInvalidSnapshot        = errors.New("invalid snapshot payload")
	ErrDecodedSizeExceeded    = errors.New("decoded payload exceeds size limit")
)
