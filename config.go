package huffcoding

import (
	"fmt"
)

// Defaults for byte-oriented streams: 256 byte values plus one end marker,
// and the rescale interval of the reference adaptive protocol.
const (
	DefaultSymbolLimit     = Symbol(257)
	DefaultRescaleInterval = uint32(262144)
)

// byteSymbolLimit is the number of distinct byte values.  A decoded symbol
// at or above it is not the end marker but still cannot be written back out
// as a byte, which only arises when SymbolLimit exceeds 257.
const byteSymbolLimit = Symbol(256)

// Config carries the parameters shared by both ends of a coded stream.  The
// two sides must agree on every field: a decoder configured differently
// from the encoder walks a different tree and every symbol after the first
// divergence decodes wrong, with no way to resynchronize.
//
// The zero value selects the defaults.
type Config struct {
	// SymbolLimit is the alphabet size, including the reserved end
	// marker.  Must be at least 2.
	SymbolLimit Symbol

	// RescaleInterval is the reset ceiling of the adaptive protocol: the
	// code tree is rebuilt whenever the count of symbols since the last
	// reset is a power of two below this value or a multiple of it, and
	// the frequency table is reset to flat at every multiple.
	RescaleInterval uint32
}

func (cfg Config) withDefaults() Config {
	if cfg.SymbolLimit == 0 {
		cfg.SymbolLimit = DefaultSymbolLimit
	}
	if cfg.RescaleInterval == 0 {
		cfg.RescaleInterval = DefaultRescaleInterval
	}
	return cfg
}

func (cfg Config) check() error {
	if cfg.SymbolLimit < 2 {
		return fmt.Errorf("symbol limit %d < 2: %w", cfg.SymbolLimit, ErrInvalidConfig)
	}
	return nil
}

// EndMarker is the reserved end-of-stream symbol, the last value of the
// alphabet.  Byte values must fit below it.
func (cfg Config) EndMarker() Symbol {
	return cfg.SymbolLimit - 1
}
