package huffcoding

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Compress writes src to dst in the static coded format: a header of
// exactly cfg.SymbolLimit code lengths, each serialized as 8 bits big
// endian, followed by the Huffman-coded symbols terminated by the end
// marker.  The final partial byte is padded with zero bits.
//
// Static coding needs one pass over src to count frequencies and a second
// to encode, so src is buffered in memory.
func Compress(dst io.Writer, src io.Reader, cfg Config) error {
	cfg = cfg.withDefaults()
	if err := cfg.check(); err != nil {
		return err
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	freqs, err := NewFlatFrequencyTable(cfg.SymbolLimit, 0)
	if err != nil {
		return err
	}
	for _, b := range data {
		symbol := Symbol(b)
		if symbol >= cfg.EndMarker() {
			return fmt.Errorf("byte %d does not fit an alphabet of %d symbols: %w", b, cfg.SymbolLimit, ErrInvalidSymbol)
		}
		if err := freqs.Increment(symbol); err != nil {
			return err
		}
	}
	if err := freqs.Increment(cfg.EndMarker()); err != nil {
		return err
	}

	// Encode with the canonical tree rather than the optimal tree
	// directly: the bit strings may differ, but every code length is the
	// same, and the header describes the canonical tree exactly.
	canon := NewCanonicalCodeFromTree(freqs.BuildCodeTree())
	tree := canon.CodeTree()

	w := bitio.NewWriter(dst)
	if err := writeCodeLengths(w, canon); err != nil {
		return err
	}
	enc := NewEncoder(w)
	enc.SetCodeTree(tree)
	for _, b := range data {
		if err := enc.Write(Symbol(b)); err != nil {
			return err
		}
	}
	if err := enc.Write(cfg.EndMarker()); err != nil {
		return err
	}
	return w.Close()
}

// Decompress reverses Compress: it reads the code length header, rebuilds
// the canonical tree, and decodes symbols until the end marker.
func Decompress(dst io.Writer, src io.Reader, cfg Config) error {
	cfg = cfg.withDefaults()
	if err := cfg.check(); err != nil {
		return err
	}

	r := bitio.NewReader(src)
	canon, err := readCodeLengths(r, cfg.SymbolLimit)
	if err != nil {
		return err
	}
	dec := NewDecoder(r)
	dec.SetCodeTree(canon.CodeTree())

	out := bufio.NewWriter(dst)
	for {
		symbol, err := dec.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("stream ended before the end marker: %w", ErrMalformed)
			}
			return err
		}
		if symbol == cfg.EndMarker() {
			break
		}
		if symbol >= byteSymbolLimit {
			return fmt.Errorf("decoded symbol %d is not a byte: %w", symbol, ErrMalformed)
		}
		if err := out.WriteByte(byte(symbol)); err != nil {
			return err
		}
	}
	return out.Flush()
}

func writeCodeLengths(w *bitio.Writer, canon *CanonicalCode) error {
	numSymbols := canon.SymbolLimit()
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		if err := w.WriteBits(uint64(canon.Length(symbol)), 8); err != nil {
			return err
		}
	}
	return nil
}

func readCodeLengths(r *bitio.Reader, symbolLimit Symbol) (*CanonicalCode, error) {
	lengths := make([]byte, symbolLimit)
	for symbol := range lengths {
		length, err := r.ReadBits(8)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("stream ended inside the code length header at symbol %d: %w", symbol, ErrMalformed)
			}
			return nil, err
		}
		lengths[symbol] = byte(length)
	}
	return NewCanonicalCode(lengths)
}
