// Package gateways defines the contracts the size pipeline expects from
// its collaborators. Implementations live in internal/domain-adapters
// and internal/external-adapters.
package gateways

import (
	"context"

	"github.com/ochairo/fwsize/internal/domain/entities"
)

// ProjectFinder discovers the project root containing the build manifest.
type ProjectFinder interface {
	// FindRoot walks from start up its ancestors until it finds a
	// directory holding a manifest file.
	FindRoot(start string) (string, error)
}

// ManifestReader resolves the name of the build output from the manifest.
type ManifestReader interface {
	CrateName(ctx context.Context, projectRoot string) (string, error)
}

// Toolchain invokes the external build tool.
type Toolchain interface {
	// Build compiles the project in the given mode; it blocks until the
	// build finishes and fails when the tool exits non-zero.
	Build(ctx context.Context, projectRoot string, mode entities.BuildMode) error
}

// ArtifactLocator resolves the filesystem path of a produced binary.
type ArtifactLocator interface {
	Locate(ctx context.Context, projectRoot, artifactName string, mode entities.BuildMode) (string, error)
}

// SectionReader extracts aggregate code/data byte counts from a binary.
type SectionReader interface {
	ReadSizes(ctx context.Context, path string) (entities.SectionSizes, error)
}

// LayoutReader extracts device capacities from a memory-layout file.
// It never fails: any problem degrades to a nil layout.
type LayoutReader interface {
	ReadLayout(path string) *entities.MemoryLayout
}

// SignatureVerifier checks a detached signature over a firmware artifact.
type SignatureVerifier interface {
	Verify(artifactPath, signaturePath string) error
}
