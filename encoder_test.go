package huffcoding

import (
	"bytes"
	"errors"
	"testing"

	"github.com/icza/bitio"
)

// makeCanonicalTree returns the tree for lengths {0:1, 1:3, 3:2, 4:3},
// i.e. 0="0", 3="10", 1="110", 4="111".
func makeCanonicalTree(t *testing.T) *CodeTree {
	t.Helper()
	code, err := NewCanonicalCode([]byte{1, 3, 0, 2, 3})
	if err != nil {
		t.Fatalf("NewCanonicalCode failed: %v", err)
	}
	return code.CodeTree()
}

func TestEncoder_NoCodeTree(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(bitio.NewWriter(&buf))
	if err := enc.Write(0); !errors.Is(err, ErrNoCodeTree) {
		t.Errorf("expected ErrNoCodeTree, got %v", err)
	}
}

func TestEncoder_Write(t *testing.T) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	enc := NewEncoder(w)
	enc.SetCodeTree(makeCanonicalTree(t))

	for _, symbol := range []Symbol{0, 3, 1, 4} {
		if err := enc.Write(symbol); err != nil {
			t.Fatalf("Write(%d) failed: %v", symbol, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// "0" "10" "110" "111" plus zero padding.
	expectBytes := []byte{0x5b, 0x80}
	actualBytes := buf.Bytes()
	if !bytes.Equal(expectBytes, actualBytes) {
		t.Errorf("wrong output:\n\texpect: %x\n\tactual: %x", expectBytes, actualBytes)
	}
}

func TestEncoder_WriteErrors(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(bitio.NewWriter(&buf))
	enc.SetCodeTree(makeCanonicalTree(t))

	if err := enc.Write(2); !errors.Is(err, ErrNoCode) {
		t.Errorf("expected ErrNoCode, got %v", err)
	}
	if err := enc.Write(9); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol, got %v", err)
	}
}
