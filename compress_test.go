package huffcoding

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func randomBytes(tb testing.TB, n int) []byte {
	tb.Helper()
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, n)
	if _, err := rng.Read(data); err != nil {
		tb.Fatalf("rand.Read failed: %v", err)
	}
	return data
}

func roundTripCases(tb testing.TB) map[string][]byte {
	return map[string][]byte{
		"Empty":      nil,
		"OneByte":    []byte("A"),
		"Scenario":   []byte("AAAAABBBCCD"),
		"SingleRun":  bytes.Repeat([]byte{0xff}, 1000),
		"Random8KiB": randomBytes(tb, 8192),
	}
}

func TestCompress_RoundTrip(t *testing.T) {
	for name, input := range roundTripCases(t) {
		t.Run(name, func(t *testing.T) {
			var compressed bytes.Buffer
			if err := Compress(&compressed, bytes.NewReader(input), Config{}); err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			var decompressed bytes.Buffer
			if err := Decompress(&decompressed, bytes.NewReader(compressed.Bytes()), Config{}); err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(input, decompressed.Bytes()) {
				t.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(input), decompressed.Len())
			}
		})
	}
}

func TestCompress_HeaderFormat(t *testing.T) {
	var compressed bytes.Buffer
	if err := Compress(&compressed, bytes.NewReader([]byte("AAAAABBBCCD")), Config{}); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	out := compressed.Bytes()

	// 257 one-byte code lengths, then 25 coded bits padded to 4 bytes.
	if len(out) != 257+4 {
		t.Errorf("expected 261 output bytes, got %d", len(out))
	}

	expectLengths := map[int]byte{'A': 1, 'B': 2, 'C': 3, 'D': 4, 256: 4}
	for symbol := 0; symbol < 257; symbol++ {
		expect := expectLengths[symbol]
		if out[symbol] != expect {
			t.Errorf("header length for symbol %d: expected %d, got %d", symbol, expect, out[symbol])
		}
	}
}

func TestDecompress_Truncated(t *testing.T) {
	var compressed bytes.Buffer
	if err := Compress(&compressed, bytes.NewReader([]byte("AAAAABBBCCD")), Config{}); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	// Dropping the last byte cuts into the end marker's code.
	cut := compressed.Bytes()[:compressed.Len()-1]

	var decompressed bytes.Buffer
	err := Decompress(&decompressed, bytes.NewReader(cut), Config{})
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestDecompress_BadHeader(t *testing.T) {
	t.Run("Short", func(t *testing.T) {
		var decompressed bytes.Buffer
		err := Decompress(&decompressed, bytes.NewReader(make([]byte, 10)), Config{})
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("LengthsTooLong", func(t *testing.T) {
		header := bytes.Repeat([]byte{0xff}, 257)
		var decompressed bytes.Buffer
		err := Decompress(&decompressed, bytes.NewReader(header), Config{})
		if !errors.Is(err, ErrCodeTooLong) {
			t.Errorf("expected ErrCodeTooLong, got %v", err)
		}
	})

	t.Run("NonByteSymbol", func(t *testing.T) {
		// A 300-symbol alphabet where the coded data yields symbol 257,
		// which is neither a byte value nor the end marker (299).
		cfg := Config{SymbolLimit: 300}
		header := make([]byte, 300)
		header[257] = 1
		header[299] = 1
		// Canonically, symbol 257 gets code 0; a zero data byte decodes it.
		stream := append(header, 0x00)

		var decompressed bytes.Buffer
		err := Decompress(&decompressed, bytes.NewReader(stream), cfg)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("Incomplete", func(t *testing.T) {
		// A valid-looking header whose lengths leave code space unused.
		header := make([]byte, 257)
		header[0] = 1
		header[1] = 2
		header[2] = 3
		var decompressed bytes.Buffer
		err := Decompress(&decompressed, bytes.NewReader(header), Config{})
		if !errors.Is(err, ErrUnderFull) {
			t.Errorf("expected ErrUnderFull, got %v", err)
		}
	})
}

func TestCompress_Config(t *testing.T) {
	t.Run("BadSymbolLimit", func(t *testing.T) {
		var compressed bytes.Buffer
		err := Compress(&compressed, bytes.NewReader([]byte("x")), Config{SymbolLimit: 1})
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("ByteOutsideAlphabet", func(t *testing.T) {
		var compressed bytes.Buffer
		err := Compress(&compressed, bytes.NewReader([]byte{200}), Config{SymbolLimit: 100})
		if !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("expected ErrInvalidSymbol, got %v", err)
		}
	})

	t.Run("SmallAlphabet", func(t *testing.T) {
		// A 17-symbol alphabet covers byte values 0 through 15.
		cfg := Config{SymbolLimit: 17}
		input := []byte{0, 1, 2, 3, 4, 15, 15, 15, 7, 0}

		var compressed bytes.Buffer
		if err := Compress(&compressed, bytes.NewReader(input), cfg); err != nil {
			t.Fatalf("Compress failed: %v", err)
		}
		var decompressed bytes.Buffer
		if err := Decompress(&decompressed, bytes.NewReader(compressed.Bytes()), cfg); err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(input, decompressed.Bytes()) {
			t.Errorf("round trip mismatch:\n\texpect: %v\n\tactual: %v", input, decompressed.Bytes())
		}
	})
}
