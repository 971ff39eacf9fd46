package huffcoding

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// adaptiveModel is the state both sides of an adaptive stream keep in
// lockstep: the running frequency table, the active code tree, and the
// count of symbols processed since the last reset.  Every decision is
// derived locally from this state; nothing about the model crosses the
// wire.
type adaptiveModel struct {
	cfg   Config
	freqs *FrequencyTable
	tree  *CodeTree
	count uint32
}

func newAdaptiveModel(cfg Config) (*adaptiveModel, error) {
	cfg = cfg.withDefaults()
	freqs, err := NewFlatFrequencyTable(cfg.SymbolLimit, 1)
	if err != nil {
		return nil, err
	}
	return &adaptiveModel{
		cfg:   cfg,
		freqs: freqs,
		tree:  freqs.BuildCodeTree(),
	}, nil
}

// observe records one processed symbol.  The increment happens before the
// trigger checks, and the checks run after every symbol on both sides;
// deviating from this sequence desynchronizes the two trees, and there is
// no way to recover within the stream.
func (m *adaptiveModel) observe(symbol Symbol) error {
	if err := m.freqs.Increment(symbol); err != nil {
		return err
	}
	m.count++

	n := m.count
	interval := m.cfg.RescaleInterval
	if (n < interval && isPowerOfTwo(n)) || n%interval == 0 {
		m.tree = m.freqs.BuildCodeTree()
	}
	if n%interval == 0 {
		freqs, err := NewFlatFrequencyTable(m.cfg.SymbolLimit, 1)
		if err != nil {
			return err
		}
		m.freqs = freqs
		m.count = 0
	}
	return nil
}

// AdaptiveCompress writes src to dst in the adaptive coded format: no
// header, just the Huffman-coded symbols terminated by the end marker.
// Both sides start from the same flat all-ones frequency table and rebuild
// the code tree at the same points, so the tree never needs transmitting.
func AdaptiveCompress(dst io.Writer, src io.Reader, cfg Config) error {
	cfg = cfg.withDefaults()
	if err := cfg.check(); err != nil {
		return err
	}
	model, err := newAdaptiveModel(cfg)
	if err != nil {
		return err
	}

	w := bitio.NewWriter(dst)
	enc := NewEncoder(w)
	enc.SetCodeTree(model.tree)

	in := bufio.NewReader(src)
	for {
		b, err := in.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		symbol := Symbol(b)
		if symbol >= cfg.EndMarker() {
			return fmt.Errorf("byte %d does not fit an alphabet of %d symbols: %w", b, cfg.SymbolLimit, ErrInvalidSymbol)
		}
		if err := enc.Write(symbol); err != nil {
			return err
		}
		if err := model.observe(symbol); err != nil {
			return err
		}
		enc.SetCodeTree(model.tree)
	}
	if err := enc.Write(cfg.EndMarker()); err != nil {
		return err
	}
	return w.Close()
}

// AdaptiveDecompress reverses AdaptiveCompress, updating its model after
// each decoded symbol exactly as the compressor did after encoding it.
func AdaptiveDecompress(dst io.Writer, src io.Reader, cfg Config) error {
	cfg = cfg.withDefaults()
	if err := cfg.check(); err != nil {
		return err
	}
	model, err := newAdaptiveModel(cfg)
	if err != nil {
		return err
	}

	r := bitio.NewReader(src)
	dec := NewDecoder(r)
	dec.SetCodeTree(model.tree)

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
		if err := model.observe(symbol); err != nil {
			return err
		}
		dec.SetCodeTree(model.tree)
	}
	return out.Flush()
}
