package gateways

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochairo/fwsize/internal/domain/entities"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(content), 0600))
}

func TestFindRoot_ManifestInStartDirectory(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"myapp\"\n")
	gw := NewCargoGateway()

	got, err := gw.FindRoot(root)

	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRoot_WalksUpFromSubdirectory(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"myapp\"\n")
	nested := filepath.Join(root, "src", "bin")
	require.NoError(t, os.MkdirAll(nested, 0750))
	gw := NewCargoGateway()

	got, err := gw.FindRoot(nested)

	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRoot_InnermostManifestWins(t *testing.T) {
	outer := t.TempDir()
	writeManifest(t, outer, "[workspace]\n")
	inner := filepath.Join(outer, "firmware")
	require.NoError(t, os.MkdirAll(inner, 0750))
	writeManifest(t, inner, "[package]\nname = \"firmware\"\n")
	gw := NewCargoGateway()

	got, err := gw.FindRoot(filepath.Join(inner))

	require.NoError(t, err)
	assert.Equal(t, inner, got)
}

func TestFindRoot_NotACrate(t *testing.T) {
	gw := NewCargoGateway()

	_, err := gw.FindRoot(t.TempDir())

	assert.ErrorIs(t, err, entities.ErrNotACrate)
}

func TestCrateName_FromManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `[package]
name = "blink-demo"
version = "0.1.0"
edition = "2021"

[dependencies]
cortex-m = "0.7"
`)
	gw := NewCargoGateway()

	name, err := gw.CrateName(context.Background(), root)

	require.NoError(t, err)
	assert.Equal(t, "blink-demo", name)
}

func TestCrateName_MissingManifest(t *testing.T) {
	gw := NewCargoGateway()

	_, err := gw.CrateName(context.Background(), t.TempDir())

	assert.Error(t, err)
}

func TestCrateName_MalformedManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package\nname =")
	gw := NewCargoGateway()

	_, err := gw.CrateName(context.Background(), root)

	assert.Error(t, err)
}

func TestBuild_NonZeroExitIsBuildFailed(t *testing.T) {
	gw := NewCargoGateway()
	gw.cargoBin = "false" // stand-in that ignores its arguments and fails
	gw.stdout, gw.stderr = io.Discard, io.Discard

	err := gw.Build(context.Background(), t.TempDir(), entities.ModeDebug)

	assert.ErrorIs(t, err, entities.ErrBuildFailed)
}

func TestBuild_SuccessfulExit(t *testing.T) {
	gw := NewCargoGateway()
	gw.cargoBin = "true" // stand-in that ignores its arguments and succeeds
	gw.stdout, gw.stderr = io.Discard, io.Discard

	err := gw.Build(context.Background(), t.TempDir(), entities.ModeRelease)

	assert.NoError(t, err)
}

func TestBuild_MissingToolIsNotBuildFailed(t *testing.T) {
	gw := NewCargoGateway()
	gw.cargoBin = "definitely-not-a-real-tool"
	gw.stdout, gw.stderr = io.Discard, io.Discard

	err := gw.Build(context.Background(), t.TempDir(), entities.ModeDebug)

	require.Error(t, err)
	assert.NotErrorIs(t, err, entities.ErrBuildFailed)
}
