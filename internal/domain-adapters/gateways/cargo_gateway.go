package gateways

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"

	"github.com/ochairo/fwsize/internal/domain/entities"
)

const manifestName = "Cargo.toml"

// CargoGateway wraps the interaction with cargo: project root discovery,
// crate name resolution from the manifest, and build invocation.
type CargoGateway struct {
	cargoBin string
	stdout   io.Writer
	stderr   io.Writer
}

// NewCargoGateway creates a gateway driving the cargo binary found on PATH.
// Build output is streamed to the gateway's writers so the user sees the
// usual cargo progress lines.
func NewCargoGateway() *CargoGateway {
	return &CargoGateway{
		cargoBin: "cargo",
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// FindRoot walks from start up its ancestors until it finds a directory
// containing Cargo.toml. entities.ErrNotACrate is returned when the
// filesystem root is reached without a match.
func (g *CargoGateway) FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving project directory: %w", err)
	}

	for {
		if fileExists(filepath.Join(dir, manifestName)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", entities.ErrNotACrate
		}
		dir = parent
	}
}

// CrateName reads the package name from the project manifest. Workspace
// roots may not declare a [package] table; in that case the name of the
// first binary target reported by `cargo metadata` is used instead.
func (g *CargoGateway) CrateName(ctx context.Context, projectRoot string) (string, error) {
	manifestPath := filepath.Join(projectRoot, manifestName)
	//nolint:gosec // G304: manifest path derives from the discovered project root
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return "", fmt.Errorf("reading manifest: %w", err)
	}

	var manifest struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("parsing %s: %w", manifestName, err)
	}
	if manifest.Package.Name != "" {
		return manifest.Package.Name, nil
	}

	return g.crateNameFromMetadata(ctx, projectRoot)
}

// crateNameFromMetadata shells out to `cargo metadata` and extracts the
// first binary target name from its JSON output.
func (g *CargoGateway) crateNameFromMetadata(ctx context.Context, projectRoot string) (string, error) {
	cmd := exec.CommandContext(ctx, g.cargoBin, "metadata", "--no-deps", "--format-version", "1")
	cmd.Dir = projectRoot

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("querying cargo metadata: %w", err)
	}

	name := gjson.GetBytes(out, `packages.0.targets.#(kind.0=="bin").name`)
	if !name.Exists() {
		return "", fmt.Errorf("crate name not found in manifest or cargo metadata")
	}

	return name.String(), nil
}

// Build runs `cargo build` (with --release in release mode) in the
// project root and blocks until it finishes. A non-zero exit status maps
// to entities.ErrBuildFailed; failing to start cargo at all surfaces the
// underlying error.
func (g *CargoGateway) Build(ctx context.Context, projectRoot string, mode entities.BuildMode) error {
	args := []string{"build"}
	if mode == entities.ModeRelease {
		args = append(args, "--release")
	}

	//nolint:gosec // G204: fixed cargo subcommand, no user-controlled arguments
	cmd := exec.CommandContext(ctx, g.cargoBin, args...)
	cmd.Dir = projectRoot
	cmd.Stdout = g.stdout
	cmd.Stderr = g.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: exit status %d", entities.ErrBuildFailed, exitErr.ExitCode())
		}
		return fmt.Errorf("running %s: %w", g.cargoBin, err)
	}

	return nil
}
