// Package huffcoding implements Huffman entropy coding: building optimal
// prefix codes from symbol frequencies, describing a code canonically by its
// code lengths alone, and compressing byte streams with either a static or
// an adaptive code.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package huffcoding
