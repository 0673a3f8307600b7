// Package gateways provides adapter implementations for external services and tools.
package gateways

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/fwsize/internal/domain/entities"
)

// knownTargets lists the cross-compilation target triples probed when the
// binary is not in the native target layout. Cross builds nest their output
// one directory deeper, keyed by the triple. Order matters: the first
// triple with an existing candidate wins. New triples extend this table,
// not the locator's control flow.
var knownTargets = []string{
	"thumbv6m-none-eabi",
	"thumbv7m-none-eabi",
	"thumbv7em-none-eabi",
	"thumbv7em-none-eabihf",
	"thumbv8m.base-none-eabi",
	"thumbv8m.main-none-eabi",
	"thumbv8m.main-none-eabihf",
	"riscv32i-unknown-none-elf",
	"riscv32imc-unknown-none-elf",
	"riscv32imac-unknown-none-elf",
}

// ArtifactLocator resolves the path of a built binary inside a project's
// target directory, probing the native layout first and the known
// cross-compilation layouts after it.
type ArtifactLocator struct {
	targets []string
}

// NewArtifactLocator creates a locator. extraTargets are appended to the
// built-in triple table and probed after it, in the given order.
func NewArtifactLocator(extraTargets []string) *ArtifactLocator {
	targets := make([]string, 0, len(knownTargets)+len(extraTargets))
	targets = append(targets, knownTargets...)
	targets = append(targets, extraTargets...)

	return &ArtifactLocator{targets: targets}
}

// Locate returns the path of artifactName for the given mode, preferring
// target/<mode>/<name> over any nested target/<triple>/<mode>/<name>.
// entities.ErrArtifactNotFound is returned when no candidate exists.
func (l *ArtifactLocator) Locate(_ context.Context, projectRoot, artifactName string, mode entities.BuildMode) (string, error) {
	if artifactName == "" {
		return "", fmt.Errorf("locating binary: empty artifact name")
	}

	targetDir := filepath.Join(projectRoot, "target")
	if info, err := os.Stat(targetDir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: no target directory in %s", entities.ErrArtifactNotFound, projectRoot)
	}

	native := filepath.Join(targetDir, mode.Dir(), artifactName)
	if fileExists(native) {
		return native, nil
	}

	for _, triple := range l.targets {
		nested := filepath.Join(targetDir, triple, mode.Dir(), artifactName)
		if fileExists(nested) {
			return nested, nil
		}
	}

	return "", fmt.Errorf("%w: %s (%s)", entities.ErrArtifactNotFound, artifactName, mode)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
