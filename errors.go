package huffcoding

import (
	"errors"
)

// Errors reported by this package.  All of them abort the current encode or
// decode pass entirely; none are retryable, because the coding is
// deterministic and a retry on the same input reproduces the same failure.
var (
	// ErrInvalidConfig means a symbol limit below 2 or a similarly
	// unusable construction argument.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnderFull means a code length sequence that leaves part of the
	// code space unused.
	ErrUnderFull = errors.New("under-full huffman code tree")

	// ErrOverFull means a code length sequence whose codes collide.
	ErrOverFull = errors.New("over-full huffman code tree")

	// ErrDuplicateSymbol means a symbol appears in more than one leaf.
	ErrDuplicateSymbol = errors.New("symbol has more than one code")

	// ErrInvalidSymbol means a symbol at or above the symbol limit.
	ErrInvalidSymbol = errors.New("symbol exceeds symbol limit")

	// ErrNoCode means the queried symbol has no leaf in the code tree.
	ErrNoCode = errors.New("no code for given symbol")

	// ErrNoCodeTree means encoding or decoding was attempted before a
	// code tree was set.
	ErrNoCodeTree = errors.New("no active code tree")

	// ErrFrequencyOverflow means a frequency count is already at its
	// maximum representable value.
	ErrFrequencyOverflow = errors.New("maximum frequency reached")

	// ErrTruncated means the bit stream ended partway through a symbol.
	ErrTruncated = errors.New("bit stream ended in the middle of a symbol")

	// ErrMalformed means the coded stream violates the file format, for
	// example by ending before the end marker.
	ErrMalformed = errors.New("malformed coded stream")

	// ErrCodeTooLong means a code length above MaxCodeBits.
	ErrCodeTooLong = errors.New("code length too long")
)
