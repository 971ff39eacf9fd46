package huffcoding

import (
	"errors"
	"fmt"
	"io"
)

// BitReader is the bit-level input primitive Decoder consumes.
// *bitio.Reader satisfies it.
type BitReader interface {
	// ReadBool reads the next bit.  It reports io.EOF when the stream is
	// exhausted.
	ReadBool() (bool, error)
}

// Decoder translates bit strings back into symbols using the currently
// active code tree.  The tree may be replaced between symbols, as long as
// the encoder and decoder hold the same tree at the same point in the code
// stream.  Not safe for concurrent use.
type Decoder struct {
	r    BitReader
	tree *CodeTree
}

// NewDecoder returns a Decoder reading from r.  No code tree is active
// until SetCodeTree is called.
func NewDecoder(r BitReader) *Decoder {
	return &Decoder{r: r}
}

// SetCodeTree replaces the active code tree.
func (d *Decoder) SetCodeTree(tree *CodeTree) {
	d.tree = tree
}

// CodeTree returns the active code tree, or nil if none is set.
func (d *Decoder) CodeTree() *CodeTree {
	return d.tree
}

// Read decodes the next symbol from the bit stream, walking the tree one
// input bit at a time until it reaches a leaf.  io.EOF is returned only
// when the stream ends cleanly before the first bit of a symbol; an end of
// stream partway through a symbol is reported as ErrTruncated.
func (d *Decoder) Read() (Symbol, error) {
	if d.tree == nil {
		return InvalidSymbol, ErrNoCodeTree
	}
	node := d.tree.Root()
	for depth := 0; ; depth++ {
		bit, err := d.r.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if depth == 0 {
					return InvalidSymbol, io.EOF
				}
				return InvalidSymbol, fmt.Errorf("%d bits into a symbol: %w", depth, ErrTruncated)
			}
			return InvalidSymbol, err
		}
		if bit {
			node = node.Right
		} else {
			node = node.Left
		}
		if node.IsLeaf() {
			return node.Symbol, nil
		}
	}
}
