// Package soundex encodes words into Soundex codes: one uppercase letter followed by three
// digits, so that words which sound alike share a code.
//
// # Core Features
//
//   - Stateless, allocation-light encoder safe for concurrent use
//   - Digit lookup exposed for verifying the consonant groups
//   - Phonetic index grouping words by code, keyed by 64-bit xxHash64
//   - Index snapshots with optional compression (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
//	code, err := soundex.Encode("Robert") // "R163"
//
//	same, _ := soundex.Match("Robert", "Rupert") // true
//
// Grouping words by sound:
//
//	idx, _ := soundex.NewIndex(index.WithCompression(format.CompressionZstd))
//	_ = idx.Add("Robert", "Rupert", "Rubin")
//	words, _ := idx.Lookup("Robbert") // ["Robert", "Rupert"]
//
//	snapshot, _ := idx.MarshalBinary()
//	restored, _ := soundex.LoadIndex(snapshot)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the phonetic and index
// packages. Use those packages directly for finer control.
package soundex

import (
	"github.com/arloliu/soundex/index"
	"github.com/arloliu/soundex/internal/hash"
	"github.com/arloliu/soundex/phonetic"
)

const (
	// CodeLength is the length of every Soundex code.
	CodeLength = phonetic.MaxCodeLength
	// NotADigit is returned by EncodeDigit for characters without a digit mapping.
	NotADigit = phonetic.NotADigit
)

var defaultEncoder = phonetic.NewEncoder()

// Encode returns the 4-character Soundex code of word.
//
// The first character is kept and uppercased, even if it is not a letter. Following
// consonants add up to three digits, and short codes are padded with '0'.
//
// Returns errs.ErrEmptyWord if word is empty.
//
// Example:
//
//	code, err := soundex.Encode("Tymczak") // "T522"
func Encode(word string) (string, error) {
	return defaultEncoder.Encode(word)
}

// MustEncode is like Encode but panics if word is empty.
func MustEncode(word string) string {
	return defaultEncoder.MustEncode(word)
}

// EncodeDigit returns the Soundex digit of r ("1" to "6"), or NotADigit when r is a
// vowel-like letter (a e i o u y h), w, or not a letter at all.
func EncodeDigit(r rune) string {
	return defaultEncoder.EncodeDigit(r)
}

// Match reports whether a and b have the same Soundex code.
func Match(a, b string) (bool, error) {
	return defaultEncoder.Equal(a, b)
}

// ValidCode reports whether code is a well-formed Soundex code.
func ValidCode(code string) bool {
	return phonetic.ValidCode(code)
}

// CodeID computes the 64-bit identifier of a Soundex code.
//
// It is the key the index package buckets words by.
func CodeID(code string) uint64 {
	return hash.ID(code)
}

// NewIndex creates an empty phonetic index.
//
// Available options:
//   - index.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - index.WithLittleEndian() / index.WithBigEndian()
func NewIndex(opts ...index.Option) (*index.Index, error) {
	return index.New(opts...)
}

// LoadIndex restores an index from a snapshot produced by (*index.Index).MarshalBinary.
func LoadIndex(data []byte) (*index.Index, error) {
	return index.Load(data)
}
