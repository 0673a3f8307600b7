package entities

import "errors"

// Failure kinds surfaced by the pipeline. Callers branch on these with
// errors.Is; each maps to a single user-visible message at the CLI
// boundary. Plain filesystem failures are wrapped and propagated as-is.
var (
	// ErrNotACrate means no Cargo.toml was found in the start directory
	// or any of its ancestors.
	ErrNotACrate = errors.New("not a cargo project")

	// ErrBuildFailed means the build tool exited with a non-zero status.
	ErrBuildFailed = errors.New("cargo build failed")

	// ErrArtifactNotFound means the locator exhausted every known target
	// layout without finding the binary.
	ErrArtifactNotFound = errors.New("binary not found in the target directory")

	// ErrInvalidBinary means the artifact exists but could not be parsed
	// as an ELF image.
	ErrInvalidBinary = errors.New("invalid binary")
)
