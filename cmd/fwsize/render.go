package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/ochairo/fwsize/internal/domain/entities"
)

// Continuation lines align under the status column, mimicking cargo's
// own output.
const indent = "             "

var (
	statusOK  = color.New(color.FgGreen, color.Bold)
	statusErr = color.New(color.FgRed, color.Bold)
)

// printStatus writes a cargo-style right-aligned colored status word
// followed by the (possibly multi-line) body.
func printStatus(status, body string) {
	fmt.Printf("%s %s\n", statusOK.Sprintf("%12s", status), body)
}

// fail prints a single descriptive message for the error and exits
// non-zero. No stack traces, no internal diagnostics.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n", statusErr.Sprintf("%12s", "error"), userMessage(err))
	os.Exit(1)
}

// userMessage maps each failure kind onto its user-visible message.
func userMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrNotACrate):
		return "not a cargo project, aborting"
	case errors.Is(err, entities.ErrBuildFailed):
		return "the build failed, fix the reported errors and rerun"
	case errors.Is(err, entities.ErrArtifactNotFound):
		return "the binary was not found under target/; if you cross-compile for an unusual target, add it to extra_targets in .fwsize.yaml"
	case errors.Is(err, entities.ErrInvalidBinary):
		return "the binary is not a valid ELF image"
	default:
		return err.Error()
	}
}

// renderReport formats the usage report in cargo's status style.
// Percentages appear only when capacity data exists.
func renderReport(report *entities.UsageReport, human bool) string {
	formatBytes := func(n uint64) string {
		if human {
			return fmt.Sprintf("%9s", humanize.Bytes(n))
		}
		return fmt.Sprintf("%7d bytes", n)
	}

	var b strings.Builder
	b.WriteString("Memory Usage\n")
	b.WriteString(indent + "------------\n")

	if report.HasCapacity() {
		fmt.Fprintf(&b, "%sProgram: %s (%.1f%% full)\n", indent, formatBytes(report.CodeBytes), *report.CodePercentage)
		fmt.Fprintf(&b, "%sData:    %s (%.1f%% full)", indent, formatBytes(report.DataBytes), *report.DataPercentage)
	} else {
		fmt.Fprintf(&b, "%sProgram: %s\n", indent, formatBytes(report.CodeBytes))
		fmt.Fprintf(&b, "%sData:    %s", indent, formatBytes(report.DataBytes))
	}

	return b.String()
}
