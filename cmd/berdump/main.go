// Command berdump decodes a BER buffer and prints its rendered record
// tree. It exists as a small, concrete consumer of the ber package's
// public API — the kind of higher-level tool the core codec itself
// stays agnostic of.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-ber/ber"
)

type options struct {
	hex  bool
	lazy bool
	path string
}

func parseArgs(args []string) (options, error) {
	fs := flag.NewFlagSet("berdump", flag.ContinueOnError)
	hex := fs.Bool("hex", false, "input is a hex string rather than raw bytes")
	lazy := fs.Bool("lazy", false, "decode constructed records lazily")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{hex: *hex, lazy: *lazy}
	if fs.NArg() > 0 {
		opts.path = fs.Arg(0)
	}
	return opts, nil
}

func readInput(opts options) ([]byte, error) {
	var r io.Reader = os.Stdin
	if opts.path != "" {
		f, err := os.Open(opts.path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !opts.hex {
		return raw, nil
	}

	return decodeHexInput(raw)
}

func decodeHexInput(raw []byte) ([]byte, error) {
	s := strings.TrimSpace(string(raw))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\n", "")
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("berdump: %w", err)
	}
	return out, nil
}

func run(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	data, err := readInput(opts)
	if err != nil {
		return err
	}

	rec, err := ber.Decode(data, opts.lazy)
	if err != nil {
		return fmt.Errorf("berdump: decode: %w", err)
	}

	fmt.Println(rec.String())
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
