package huffcoding

import (
	"bytes"
	"container/heap"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// FrequencyTable holds one occurrence count per symbol, for symbols 0
// through SymbolLimit()-1.  It is mutable and not safe for concurrent use;
// each encode or decode pass owns its table exclusively.
type FrequencyTable struct {
	counts []uint32
}

// NewFrequencyTable constructs a frequency table from the given counts,
// one per symbol.  At least 2 symbols are needed.  The slice is copied.
func NewFrequencyTable(freqs []uint32) (*FrequencyTable, error) {
	if len(freqs) < 2 {
		return nil, fmt.Errorf("frequency table needs at least 2 symbols, got %d: %w", len(freqs), ErrInvalidConfig)
	}
	counts := make([]uint32, len(freqs))
	copy(counts, freqs)
	return &FrequencyTable{counts: counts}, nil
}

// NewFlatFrequencyTable constructs a table of symbolLimit symbols, each with
// the same count.  Adaptive coding starts both sides from such a table.
func NewFlatFrequencyTable(symbolLimit Symbol, freq uint32) (*FrequencyTable, error) {
	if symbolLimit < 2 {
		return nil, fmt.Errorf("symbol limit %d < 2: %w", symbolLimit, ErrInvalidConfig)
	}
	counts := make([]uint32, symbolLimit)
	for i := range counts {
		counts[i] = freq
	}
	return &FrequencyTable{counts: counts}, nil
}

// SymbolLimit is the number of symbols in this table.  Always at least 2.
func (t *FrequencyTable) SymbolLimit() Symbol {
	return Symbol(len(t.counts))
}

// Get returns the count for the given symbol.
func (t *FrequencyTable) Get(symbol Symbol) uint32 {
	t.checkSymbol(symbol)
	return t.counts[symbol]
}

// Set replaces the count for the given symbol.
func (t *FrequencyTable) Set(symbol Symbol, freq uint32) {
	t.checkSymbol(symbol)
	t.counts[symbol] = freq
}

// Increment adds one to the count for the given symbol.  A count already at
// its maximum representable value fails rather than wrapping.
func (t *FrequencyTable) Increment(symbol Symbol) error {
	t.checkSymbol(symbol)
	if t.counts[symbol] == math.MaxUint32 {
		return fmt.Errorf("symbol %d: %w", symbol, ErrFrequencyOverflow)
	}
	t.counts[symbol]++
	return nil
}

func (t *FrequencyTable) checkSymbol(symbol Symbol) {
	assert.Assertf(symbol >= 0 && symbol < t.SymbolLimit(), "symbol %d out of range [0,%d)", symbol, t.SymbolLimit())
}

// String returns a debugging listing of the table.  The format is subject
// to change.
func (t *FrequencyTable) String() string {
	var buf bytes.Buffer
	for symbol, count := range t.counts {
		fmt.Fprintf(&buf, "%d\t%d\n", symbol, count)
	}
	return buf.String()
}

var _ fmt.Stringer = (*FrequencyTable)(nil)

// BuildCodeTree returns a code tree that is optimal for the current counts.
// The tree always has at least 2 leaves, padding with the lowest-valued
// zero-count symbols if fewer than 2 symbols have a non-zero count.
//
// When two candidates have the same total frequency, the tie is broken by
// the lowest symbol value contained in either subtree, so the output is
// fully determined by the counts and does not depend on heap iteration
// order.  Optimal trees are not unique; this one is reproducible.
func (t *FrequencyTable) BuildCodeTree() *CodeTree {
	var h nodeHeap
	for symbol, freq := range t.counts {
		if freq > 0 {
			h.list = append(h.list, nodeWithFreq{NewLeaf(Symbol(symbol)), Symbol(symbol), uint64(freq)})
		}
	}

	// Pad with zero-count symbols until at least 2 candidates exist.
	for symbol := Symbol(0); symbol < t.SymbolLimit() && h.Len() < 2; symbol++ {
		if t.counts[symbol] == 0 {
			h.list = append(h.list, nodeWithFreq{NewLeaf(symbol), symbol, 0})
		}
	}
	assert.Assertf(h.Len() >= 2, "padding left only %d candidate leaves", h.Len())

	h.Init()
	for h.Len() > 1 {
		x := heap.Pop(&h).(nodeWithFreq)
		y := heap.Pop(&h).(nodeWithFreq)
		lowest := x.lowestSymbol
		if y.lowestSymbol < lowest {
			lowest = y.lowestSymbol
		}
		heap.Push(&h, nodeWithFreq{NewInternal(x.node, y.node), lowest, x.freq + y.freq})
	}
	root := heap.Pop(&h).(nodeWithFreq).node

	tree, err := NewCodeTree(root, t.SymbolLimit())
	assert.Assertf(err == nil, "code tree built from counted frequencies failed validation: %v", err)
	return tree
}

// type nodeWithFreq + type nodeHeap {{{

type nodeWithFreq struct {
	node         *Node
	lowestSymbol Symbol

	// freq is wider than the per-symbol counters so that repeated merges
	// cannot overflow even when every count is at its maximum.
	freq uint64
}

type nodeHeap struct {
	list []nodeWithFreq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.lowestSymbol < b.lowestSymbol
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeWithFreq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
