// Command huffcode compresses and decompresses files with Huffman coding.
//
// Usage:
//
//	huffcode [-adaptive] compress <input-file> <output-file>
//	huffcode [-adaptive] decompress <input-file> <output-file>
//
// Static mode writes a code length header ahead of the coded data.
// Adaptive mode writes no header; both sides derive the code from the data
// as it flows.  A file must be decompressed in the same mode it was
// compressed in.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/chronos-tachyon/huffcoding"
)

var adaptive = flag.Bool("adaptive", false, "use adaptive coding (no code length header)")

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		usage()
		os.Exit(1)
	}

	if err := run(args[0], args[1], args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "huffcode: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: huffcode [-adaptive] compress|decompress <input-file> <output-file>")
	flag.PrintDefaults()
}

func run(mode string, inputPath string, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	src := bufio.NewReader(in)
	dst := bufio.NewWriter(out)

	var cfg huffcoding.Config
	switch {
	case mode == "compress" && *adaptive:
		err = huffcoding.AdaptiveCompress(dst, src, cfg)
	case mode == "compress":
		err = huffcoding.Compress(dst, src, cfg)
	case mode == "decompress" && *adaptive:
		err = huffcoding.AdaptiveDecompress(dst, src, cfg)
	case mode == "decompress":
		err = huffcoding.Decompress(dst, src, cfg)
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		out.Close()
		return err
	}
	if err := dst.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
