package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFromRelease(t *testing.T) {
	assert.Equal(t, ModeDebug, ModeFromRelease(false))
	assert.Equal(t, ModeRelease, ModeFromRelease(true))
}

func TestBuildMode_Dir(t *testing.T) {
	assert.Equal(t, "debug", ModeDebug.Dir())
	assert.Equal(t, "release", ModeRelease.Dir())
}

func TestBuildMode_DirPanicsOnUnknownMode(t *testing.T) {
	assert.Panics(t, func() {
		_ = BuildMode(42).Dir()
	})
}
