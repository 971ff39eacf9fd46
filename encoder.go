package huffcoding

// BitWriter is the bit-level output primitive Encoder emits into.
// *bitio.Writer satisfies it.
type BitWriter interface {
	// WriteBits writes out the n lowest bits of r, most significant bit
	// first.  r must not have bits set above the n lowest.
	WriteBits(r uint64, n uint8) error
}

// Encoder translates symbols into bit strings using the currently active
// code tree.  The tree may be replaced between symbols; in adaptive coding
// both sides of the stream replace it at the same points.  Not safe for
// concurrent use.
type Encoder struct {
	w    BitWriter
	tree *CodeTree
}

// NewEncoder returns an Encoder writing to w.  No code tree is active until
// SetCodeTree is called.
func NewEncoder(w BitWriter) *Encoder {
	return &Encoder{w: w}
}

// SetCodeTree replaces the active code tree.
func (e *Encoder) SetCodeTree(tree *CodeTree) {
	e.tree = tree
}

// CodeTree returns the active code tree, or nil if none is set.
func (e *Encoder) CodeTree() *CodeTree {
	return e.tree
}

// Write encodes one symbol onto the bit stream.
func (e *Encoder) Write(symbol Symbol) error {
	if e.tree == nil {
		return ErrNoCodeTree
	}
	hc, err := e.tree.CodeFor(symbol)
	if err != nil {
		return err
	}
	return e.w.WriteBits(hc.Bits, hc.Size)
}
