// Command pack-tool packs and unpacks Lisa Workshop code streams.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/eschaton/lisaobj/pack"
)

const (
	exOK        = 0
	exUsage     = 64
	exNoInput   = 66
	exCantCreat = 73
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s pack|unpack [infile|-] [outfile|-]\n", filepath.Base(os.Args[0]))
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 || len(args) > 3 {
		usage()
		os.Exit(exUsage)
	}

	mode := args[0]
	if mode != "pack" && mode != "unpack" {
		usage()
		os.Exit(exUsage)
	}

	infile := "-"
	if len(args) >= 2 {
		infile = args[1]
	}
	outfile := "-"
	if len(args) >= 3 {
		outfile = args[2]
	}

	in, err := readAll(infile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", infile, err)
		os.Exit(exNoInput)
	}

	var out []byte
	switch mode {
	case "pack":
		out, err = doPack(in)
	case "unpack":
		out, err = doUnpack(in)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exUsage)
	}

	if err := writeAll(outfile, out); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", outfile, err)
		os.Exit(exCantCreat)
	}

	os.Exit(exOK)
}

func readAll(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeAll(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// doPack packs in, sizing the destination for the worst case of every pair
// being a literal miss.
func doPack(in []byte) ([]byte, error) {
	dst := make([]byte, pack.MaxPackedSize(len(in)))
	n, err := pack.Pack(in, dst, nil)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// doUnpack unpacks in. The unpacked size isn't recorded in a standalone
// packed stream the way it is inside a PackedCode block, so grow a
// generously-sized buffer and retry if it turns out too small.
func doUnpack(in []byte) ([]byte, error) {
	capacity := len(in) * 2
	for {
		out, err := pack.UnpackTrailing(in, capacity, nil)
		if err == nil {
			return out, nil
		}
		if err != pack.ErrBufferTooSmall {
			return nil, err
		}
		capacity *= 2
	}
}
