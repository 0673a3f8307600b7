// Package entities defines the value types flowing through the size pipeline.
package entities

import "fmt"

// BuildMode selects which build profile of the project is measured.
// It is chosen once at program start and drives both the build invocation
// and the artifact search.
type BuildMode int

const (
	// ModeDebug measures the unoptimized development binary.
	ModeDebug BuildMode = iota
	// ModeRelease measures the optimized release binary.
	ModeRelease
)

// ModeFromRelease maps the presence of a --release flag to a BuildMode.
func ModeFromRelease(release bool) BuildMode {
	if release {
		return ModeRelease
	}
	return ModeDebug
}

// Dir returns the target subdirectory name the build tool uses for the mode.
func (m BuildMode) Dir() string {
	switch m {
	case ModeDebug:
		return "debug"
	case ModeRelease:
		return "release"
	default:
		panic(fmt.Sprintf("unknown build mode %d", int(m)))
	}
}

func (m BuildMode) String() string {
	return m.Dir()
}
