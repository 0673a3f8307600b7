package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/fwsize/internal/external-adapters/gpg"
)

func runVerify(_ context.Context, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	var (
		keyPath = fs.String("key", "", "Armored or binary public keyring file (required)")
		sigPath = fs.String("sig", "", "Detached signature file (default: <artifact>.sig)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: fwsize verify --key <keyring> [--sig <signature>] <artifact>

Verify a detached OpenPGP signature over a firmware artifact, e.g. before
flashing a release image.

Examples:
  fwsize verify --key release-keys.asc target/release/firmware
  fwsize verify --key release-keys.asc --sig firmware.bin.asc firmware.bin

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: artifact path is required\n\n")
		fs.Usage()
		os.Exit(1)
	}
	if *keyPath == "" {
		fmt.Fprintf(os.Stderr, "Error: --key is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	artifact := fs.Arg(0)
	signature := *sigPath
	if signature == "" {
		signature = artifact + ".sig"
	}

	verifier := gpg.NewVerifier()
	if err := verifier.ImportKeyFromFile(*keyPath); err != nil {
		fail(err)
	}
	if err := verifier.Verify(artifact, signature); err != nil {
		fail(err)
	}

	printStatus("Verified", filepath.Base(artifact))
}
