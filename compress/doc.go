// Package compress provides the payload codecs used by soundex index snapshots.
//
// A snapshot stores a list of words grouped by Soundex code. Neighbouring words in a bucket
// share long prefixes, so general-purpose compression pays off well on large indexes.
//
// Supported algorithms:
//   - None: the payload is stored unchanged
//   - Zstd: best ratio, the default choice for snapshots written to disk
//   - S2: fast with a reasonable ratio
//   - LZ4: fastest decompression, suited to indexes loaded on every start
//
// Every codec implements the Codec interface:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// The pure Go Zstandard implementation from klauspost/compress is used by default. Building
// with the gozstd tag (and cgo enabled) switches to the valyala/gozstd bindings.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Encoders and decoders that
// benefit from warm-up are kept in sync.Pool instances internally.
package compress
