package huffcoding

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a code tree.  A leaf holds one symbol and has no
// children; an internal node has exactly two children and no symbol.  Each
// node owns its children outright: no sharing, no cycles.
type Node struct {
	Symbol Symbol
	Left   *Node
	Right  *Node
}

// NewLeaf constructs a leaf node for the given symbol.
func NewLeaf(symbol Symbol) *Node {
	assert.Assertf(symbol >= 0, "leaf symbol %d is negative", symbol)
	return &Node{Symbol: symbol}
}

// NewInternal constructs an internal node with the given children.
func NewInternal(left *Node, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node needs exactly two children")
	return &Node{Symbol: InvalidSymbol, Left: left, Right: right}
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// CodeTree is a binary tree mapping symbols to bit strings: the path from
// the root to a symbol's leaf, reading a left edge as 0 and a right edge as
// 1, is the symbol's code.  The root is always an internal node.  A symbol
// appears in at most one leaf, and not every symbol needs a leaf.
//
// A CodeTree is immutable once constructed.  All mutation is "build a new
// tree", so an encoder or decoder can keep using its current tree while
// frequencies change independently.
type CodeTree struct {
	root  *Node
	codes []Code
}

// NewCodeTree constructs a code tree from the given root and symbol limit.
// Every leaf symbol must be below the limit, no symbol may appear twice,
// and no leaf may sit deeper than MaxCodeBits.  The per-symbol code lookup
// is built here by a single full traversal.
func NewCodeTree(root *Node, symbolLimit Symbol) (*CodeTree, error) {
	if symbolLimit < 2 {
		return nil, fmt.Errorf("symbol limit %d < 2: %w", symbolLimit, ErrInvalidConfig)
	}
	if root == nil || root.IsLeaf() {
		return nil, fmt.Errorf("code tree root must be an internal node: %w", ErrInvalidConfig)
	}
	t := &CodeTree{
		root:  root,
		codes: make([]Code, symbolLimit),
	}
	if err := t.buildCodes(root, Code{}); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *CodeTree) buildCodes(node *Node, prefix Code) error {
	if !node.IsLeaf() {
		assert.Assertf(node.Left != nil && node.Right != nil, "internal node with a missing child")
		if prefix.Size >= MaxCodeBits {
			return fmt.Errorf("code exceeds %d bits: %w", MaxCodeBits, ErrCodeTooLong)
		}
		if err := t.buildCodes(node.Left, MakeCode(prefix.Size+1, prefix.Bits<<1)); err != nil {
			return err
		}
		return t.buildCodes(node.Right, MakeCode(prefix.Size+1, prefix.Bits<<1|1))
	}

	symbol := node.Symbol
	if symbol < 0 || symbol >= t.SymbolLimit() {
		return fmt.Errorf("symbol %d outside [0,%d): %w", symbol, t.SymbolLimit(), ErrInvalidSymbol)
	}
	if t.codes[symbol].Size != 0 {
		return fmt.Errorf("symbol %d: %w", symbol, ErrDuplicateSymbol)
	}
	t.codes[symbol] = prefix
	return nil
}

// Root returns the root node of this tree.  Callers must not modify the
// nodes.
func (t *CodeTree) Root() *Node {
	return t.root
}

// SymbolLimit is the size of this tree's alphabet.
func (t *CodeTree) SymbolLimit() Symbol {
	return Symbol(len(t.codes))
}

// CodeFor returns the bit string for the given symbol.
func (t *CodeTree) CodeFor(symbol Symbol) (Code, error) {
	if symbol < 0 || symbol >= t.SymbolLimit() {
		return Code{}, fmt.Errorf("symbol %d outside [0,%d): %w", symbol, t.SymbolLimit(), ErrInvalidSymbol)
	}
	hc := t.codes[symbol]
	if hc.Size == 0 {
		return Code{}, fmt.Errorf("symbol %d: %w", symbol, ErrNoCode)
	}
	return hc, nil
}

// Dump writes a programmer-readable debugging dump of the tree's code
// assignments to the given writer.
func (t *CodeTree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTree{\n")
	numSymbols := t.SymbolLimit()
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		hc := t.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tCodeFor(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
