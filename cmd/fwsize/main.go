// Package main provides the fwsize CLI for reporting the flash and RAM
// footprint of embedded firmware binaries.
package main

import (
	"context"
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "report":
		runReport(ctx, os.Args[2:])
	case "verify":
		runVerify(ctx, os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("fwsize %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fwsize - Memory usage reporter for embedded firmware

Usage:
  fwsize <command> [options]

Commands:
  report      Build the project and print its flash/RAM usage
  verify      Verify a detached signature over a firmware artifact
  version     Print the version number

Use "fwsize <command> --help" for more information about a command.`)
}
