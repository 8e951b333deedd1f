package index

import (
	"fmt"

	"github.com/arloliu/soundex/compress"
	"github.com/arloliu/soundex/endian"
	"github.com/arloliu/soundex/errs"
	"github.com/arloliu/soundex/format"
	"github.com/arloliu/soundex/internal/options"
)

// Option configures an Index.
type Option = options.Option[*Config]

// Config holds the snapshot settings of an Index.
type Config struct {
	compression format.CompressionType
	codec       compress.Codec
	engine      endian.EndianEngine
}

func newConfig() *Config {
	return &Config{
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
		engine:      endian.GetLittleEndianEngine(),
	}
}

// Compression returns the compression type used by MarshalBinary.
func (c Config) Compression() format.CompressionType {
	return c.compression
}

// BigEndian reports whether snapshot integers are written big-endian.
func (c Config) BigEndian() bool {
	return endian.IsBigEndian(c.engine)
}

func (c *Config) setCompression(comp format.CompressionType) error {
	codec, err := compress.CreateCodec(comp, "snapshot")
	if err != nil {
		return err
	}

	c.compression = comp
	c.codec = codec

	return nil
}

// flags packs the compression type and byte order into the header flags byte.
func (c *Config) flags() byte {
	f := byte(c.compression) & compressionMask
	if c.BigEndian() {
		f |= bigEndianFlag
	}

	return f
}

// parseFlags is the inverse of flags.
func parseFlags(f byte) (*Config, error) {
	if f&^(compressionMask|bigEndianFlag) != 0 {
		return nil, fmt.Errorf("%w: unknown flag bits 0x%02x", errs.ErrInvalidSnapshot, f)
	}

	comp := format.CompressionType(f & compressionMask)
	if !comp.IsValid() {
		return nil, fmt.Errorf("%w: %s (0x%x) in snapshot flags", errs.ErrUnsupportedCompression, comp, uint8(comp))
	}

	cfg := newConfig()
	if err := cfg.setCompression(comp); err != nil {
		return nil, err
	}
	cfg.engine = endian.FromFlag(f&bigEndianFlag != 0)

	return cfg, nil
}

// WithCompression sets the payload compression used by MarshalBinary.
// Defaults to format.CompressionNone.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian writes snapshot integers little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes snapshot integers big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}
