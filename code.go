package huffcoding

import (
	"fmt"
	"strconv"
)

// MaxCodeBits is the longest supported code, in bits.  Codes longer than
// this cannot be packed into a Code value, and the Kraft accounting for a
// tree of this depth still fits a uint64, so code trees and canonical
// length sequences that would exceed it are rejected up front.  Trees built
// from counted frequencies never get close: with 32-bit counters, total
// weight stays far below what a 63-deep Huffman tree requires.
const MaxCodeBits = 63

// Code represents a sequence of bits: the path from the root of a code tree
// to a leaf, where 0 is a left edge and 1 is a right edge.  The first bit of
// the path is the most significant of the Size low bits of Bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
