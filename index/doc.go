// Package index groups words by their Soundex code.
//
// An Index answers "which known words sound like this one" in O(1): words are bucketed by
// the xxHash64 of their code. Indexes can be persisted with MarshalBinary and restored with
// Load.
//
// # Basic Usage
//
//	idx, _ := index.New(index.WithCompression(format.CompressionZstd))
//	_ = idx.Add("Robert", "Rupert", "Rubin")
//
//	words, _ := idx.Lookup("Robbert") // ["Robert", "Rupert"]
//
// # Snapshot Format
//
// A snapshot is a 12-byte header followed by the (optionally compressed) payload:
//
//	offset 0-1   magic "SX"
//	offset 2     version (1)
//	offset 3     flags: bits 0-3 compression type, bit 4 big-endian
//	offset 4-7   word count (uint32)
//	offset 8-11  CRC32 (IEEE) of the uncompressed payload (uint32)
//
// The payload lists every word as a uvarint length followed by its bytes, bucket by bucket
// in ascending code order. Integer fields use the byte order recorded in the flags.
//
// # Thread Safety
//
// Index is safe for concurrent use.
package index
