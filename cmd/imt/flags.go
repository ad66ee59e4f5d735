package main

import (
	"bytes"
	"flag"
	"fmt"

	"github.com/leon0x01/IncMerkleTree/merkle"
)

// config holds the resolved CLI configuration.
type config struct {
	Height    int    // tree height
	Hash      string // node combiner: keccak or sha256
	Proof     int    // leaf index to prove, -1 to disable
	Verbosity int    // log level 0-4
	Version   bool   // print version and exit
	Leaves    []string
}

// parseFlags parses CLI arguments. It returns the configuration, whether
// the caller should exit immediately, and the exit code to use.
func parseFlags(args []string) (*config, bool, string, int) {
	cfg := &config{}

	fs := flag.NewFlagSet("imt", flag.ContinueOnError)
	var usage bytes.Buffer
	fs.SetOutput(&usage)

	fs.IntVar(&cfg.Height, "height", 8, "tree height (1-24)")
	fs.StringVar(&cfg.Hash, "hash", "keccak", "node combiner: keccak or sha256")
	fs.IntVar(&cfg.Proof, "proof", -1, "print an inclusion proof for the given leaf index")
	fs.IntVar(&cfg.Verbosity, "verbosity", 2, "log level 0-4")
	fs.BoolVar(&cfg.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, true, usage.String(), 2
	}
	cfg.Leaves = fs.Args()
	return cfg, false, "", 0
}

// validate rejects configurations the tree constructor or run loop
// cannot honor.
func (cfg *config) validate() error {
	if cfg.Height < 1 || cfg.Height > merkle.MaxHeight {
		return fmt.Errorf("invalid --height %d: must be in [1, %d]", cfg.Height, merkle.MaxHeight)
	}
	if cfg.Hash != "keccak" && cfg.Hash != "sha256" {
		return fmt.Errorf("invalid --hash %q: must be keccak or sha256", cfg.Hash)
	}
	return nil
}
