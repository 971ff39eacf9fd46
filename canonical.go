package huffcoding

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// CanonicalCode describes a Huffman code purely by the code length of each
// symbol; length 0 means the symbol has no code.  Immutable.  The bit
// strings themselves can be reconstructed from the lengths alone, which is
// what makes the lengths sufficient to transmit: CodeTree assigns
// lexicographically increasing bit strings to symbols in order of
// (ascending code length, ascending symbol value).
//
// For example, lengths {A:1, B:3, C:0, D:2, E:3} reconstruct as A=0, D=10,
// B=110, E=111, and no code for C.
type CanonicalCode struct {
	lengths []byte
}

// NewCanonicalCode constructs a canonical code from one code length per
// symbol.  At least 2 symbols are needed, no length may exceed MaxCodeBits,
// and the multiset of lengths must describe a complete binary tree: neither
// under-full (unused code space remains) nor over-full (codes collide).
func NewCanonicalCode(lengths []byte) (*CanonicalCode, error) {
	if len(lengths) < 2 {
		return nil, fmt.Errorf("canonical code needs at least 2 symbols, got %d: %w", len(lengths), ErrInvalidConfig)
	}
	for symbol, length := range lengths {
		if length > MaxCodeBits {
			return nil, fmt.Errorf("symbol %d has code length %d, max %d: %w", symbol, length, MaxCodeBits, ErrCodeTooLong)
		}
	}
	if err := checkComplete(lengths); err != nil {
		return nil, err
	}
	c := &CanonicalCode{lengths: make([]byte, len(lengths))}
	copy(c.lengths, lengths)
	return c, nil
}

// NewCanonicalCodeFromTree derives the canonical code of an existing tree.
// The reconstructed tree may assign different bit strings than tree does,
// but every code length is preserved.
func NewCanonicalCodeFromTree(tree *CodeTree) *CanonicalCode {
	lengths := make([]byte, tree.SymbolLimit())
	for symbol, hc := range tree.codes {
		lengths[symbol] = hc.Size
	}
	return &CanonicalCode{lengths: lengths}
}

// checkComplete verifies the Kraft equality: a complete tree of depth
// maxLen has 2^maxLen leaf slots at the deepest level, and a code of
// length L claims 2^(maxLen-L) of them.  The codes must claim every slot
// exactly once.  Claiming more than remain means codes collide; leftover
// slots mean unused code space.  Lengths are capped at MaxCodeBits before
// this runs, so the slot count fits a uint64.
func checkComplete(lengths []byte) error {
	maxLen := slices.Max(lengths)
	if maxLen == 0 {
		return ErrUnderFull
	}
	remaining := uint64(1) << maxLen
	for _, length := range lengths {
		if length == 0 {
			continue
		}
		claimed := uint64(1) << (maxLen - length)
		if claimed > remaining {
			return ErrOverFull
		}
		remaining -= claimed
	}
	if remaining != 0 {
		return ErrUnderFull
	}
	return nil
}

// SymbolLimit is the size of this code's alphabet.  Always at least 2.
func (c *CanonicalCode) SymbolLimit() Symbol {
	return Symbol(len(c.lengths))
}

// Length returns the code length of the given symbol, or 0 if the symbol
// has no code.
func (c *CanonicalCode) Length(symbol Symbol) byte {
	assert.Assertf(symbol >= 0 && symbol < c.SymbolLimit(), "symbol %d out of range [0,%d)", symbol, c.SymbolLimit())
	return c.lengths[symbol]
}

// Lengths returns a copy of the per-symbol code lengths.
func (c *CanonicalCode) Lengths() []byte {
	out := make([]byte, len(c.lengths))
	copy(out, c.lengths)
	return out
}

// CodeTree reconstructs the canonical code tree for this code.  The result
// is fully determined by the lengths: leaves at each level are created in
// ascending symbol order, and nodes carried up from the deeper level are
// paired in order, so every conforming implementation rebuilds the same
// tree.
func (c *CanonicalCode) CodeTree() *CodeTree {
	var nodes []*Node
	for level := slices.Max(c.lengths); ; level-- {
		assert.Assertf(len(nodes)%2 == 0, "%d unpaired nodes at level %d", len(nodes), level)
		var newNodes []*Node

		// Leaves for symbols whose code length is exactly this level.
		if level > 0 {
			for symbol := Symbol(0); symbol < c.SymbolLimit(); symbol++ {
				if c.lengths[symbol] == level {
					newNodes = append(newNodes, NewLeaf(symbol))
				}
			}
		}

		// Pair up the nodes carried over from the deeper level.
		for i := 0; i < len(nodes); i += 2 {
			newNodes = append(newNodes, NewInternal(nodes[i], nodes[i+1]))
		}

		nodes = newNodes
		if level == 0 {
			break
		}
	}
	assert.Assertf(len(nodes) == 1, "canonical code reconstructed %d roots", len(nodes))

	tree, err := NewCodeTree(nodes[0], c.SymbolLimit())
	assert.Assertf(err == nil, "reconstructed canonical tree failed validation: %v", err)
	return tree
}

// MarshalJSON encodes the code as its bare length array.
func (c *CanonicalCode) MarshalJSON() ([]byte, error) {
	lengths := make([]int, len(c.lengths))
	for i, length := range c.lengths {
		lengths[i] = int(length)
	}
	return json.Marshal(lengths)
}

// UnmarshalJSON decodes a bare length array, applying the same validation
// as NewCanonicalCode.
func (c *CanonicalCode) UnmarshalJSON(raw []byte) error {
	var decoded []int
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	lengths := make([]byte, len(decoded))
	for i, length := range decoded {
		if length < 0 || length > math.MaxUint8 {
			return fmt.Errorf("symbol %d has code length %d: %w", i, length, ErrInvalidConfig)
		}
		lengths[i] = byte(length)
	}
	cc, err := NewCanonicalCode(lengths)
	if err != nil {
		return err
	}
	*c = *cc
	return nil
}

var (
	_ json.Marshaler   = (*CanonicalCode)(nil)
	_ json.Unmarshaler = (*CanonicalCode)(nil)
)
