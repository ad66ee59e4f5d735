// Command imt appends 32-byte leaf digests into an incremental Merkle
// accumulator and prints the resulting root.
//
// Usage:
//
//	imt [flags] [leaf ...]
//
// Leaves are 0x-prefixed hex digests, taken from the arguments or, if
// none are given, read whitespace-separated from stdin. Flags:
//
//	--height     Tree height (default: 8)
//	--hash       Node combiner: keccak or sha256 (default: keccak)
//	--proof      Print an inclusion proof for the given leaf index
//	--verbosity  Log level 0-4 (default: 2)
//	--version    Print version and exit
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/leon0x01/IncMerkleTree/core/types"
	"github.com/leon0x01/IncMerkleTree/crypto"
	"github.com/leon0x01/IncMerkleTree/log"
	"github.com/leon0x01/IncMerkleTree/merkle"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0"
var version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run is the actual entry point, returning an exit code. It takes the
// argument list and the standard streams so it can be tested in
// isolation.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	cfg, exit, usage, code := parseFlags(args)
	if exit {
		fmt.Fprint(os.Stderr, usage)
		return code
	}
	if cfg.Version {
		fmt.Fprintf(stdout, "imt %s\n", version)
		return 0
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "imt: %v\n", err)
		return 2
	}

	log.SetDefault(log.New(log.VerbosityToLevel(cfg.Verbosity)))
	logger := log.Default().Module("imt")
	logger.Debug("starting", "version", version, "height", cfg.Height, "hash", cfg.Hash)

	hasher := crypto.KeccakNodeHasher
	if cfg.Hash == "sha256" {
		hasher = crypto.SHA256NodeHasher
	}
	tree, err := merkle.New(cfg.Height, merkle.WithHasher(hasher))
	if err != nil {
		fmt.Fprintf(os.Stderr, "imt: %v\n", err)
		return 1
	}

	leaves := cfg.Leaves
	if len(leaves) == 0 {
		if leaves, err = readLeaves(stdin); err != nil {
			fmt.Fprintf(os.Stderr, "imt: %v\n", err)
			return 1
		}
	}

	for i, s := range leaves {
		leaf, err := types.ParseHash(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "imt: leaf %d: %v\n", i, err)
			return 1
		}
		if err := tree.Append(leaf); err != nil {
			fmt.Fprintf(os.Stderr, "imt: leaf %d: %v\n", i, err)
			return 1
		}
		logger.Debug("appended", "index", i, "leaf", leaf, "root", tree.Root())
	}
	logger.Info("tree built", "size", tree.Size(), "capacity", tree.Capacity())

	fmt.Fprintf(stdout, "root: %s\n", tree.Root())

	if cfg.Proof >= 0 {
		proof, err := tree.Proof(uint64(cfg.Proof))
		if err != nil {
			fmt.Fprintf(os.Stderr, "imt: proof for leaf %d: %v\n", cfg.Proof, err)
			return 1
		}
		fmt.Fprintf(stdout, "proof for leaf %d: %s\n", proof.Index, proof.Leaf)
		for h, sibling := range proof.Siblings {
			fmt.Fprintf(stdout, "  sibling %2d: %s\n", h, sibling)
		}
	}
	return 0
}

// readLeaves reads whitespace-separated leaf tokens from r.
func readLeaves(r io.Reader) ([]string, error) {
	var leaves []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		leaves = append(leaves, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading leaves: %w", err)
	}
	return leaves, nil
}
