package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ochairo/fwsize/internal/domain/entities"
)

func pct(v float64) *float64 { return &v }

func TestRenderReport_WithPercentages(t *testing.T) {
	report := &entities.UsageReport{
		CodeBytes:      55652,
		DataBytes:      8,
		CodePercentage: pct(42.46),
		DataPercentage: pct(0.012),
	}

	out := renderReport(report, false)

	assert.Contains(t, out, "Memory Usage")
	assert.Contains(t, out, fmt.Sprintf("Program: %7d bytes (42.5%% full)", 55652))
	assert.Contains(t, out, fmt.Sprintf("Data:    %7d bytes (0.0%% full)", 8))
}

func TestRenderReport_WithoutPercentages(t *testing.T) {
	report := &entities.UsageReport{CodeBytes: 1486351, DataBytes: 4656}

	out := renderReport(report, false)

	assert.Contains(t, out, fmt.Sprintf("Program: %7d bytes", 1486351))
	assert.Contains(t, out, fmt.Sprintf("Data:    %7d bytes", 4656))
	assert.NotContains(t, out, "%")
}

func TestRenderReport_HumanUnits(t *testing.T) {
	report := &entities.UsageReport{CodeBytes: 262144, DataBytes: 8}

	out := renderReport(report, true)

	assert.Contains(t, out, "262 kB")
	assert.NotContains(t, out, "262144 bytes")
}

func TestRenderReport_BoundaryPercentages(t *testing.T) {
	report := &entities.UsageReport{
		CodeBytes:      262144,
		DataBytes:      0,
		CodePercentage: pct(100.0),
		DataPercentage: pct(0.0),
	}

	out := renderReport(report, false)

	assert.Contains(t, out, "(100.0% full)")
	assert.Contains(t, out, "(0.0% full)")
}

func TestUserMessage_OneMessagePerKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: entities.ErrNotACrate, want: "not a cargo project"},
		{err: fmt.Errorf("wrapped: %w", entities.ErrBuildFailed), want: "build failed"},
		{err: fmt.Errorf("%w: myapp (debug)", entities.ErrArtifactNotFound), want: "not found under target/"},
		{err: fmt.Errorf("%w: bad magic", entities.ErrInvalidBinary), want: "not a valid ELF image"},
		{err: errors.New("open memory.x: permission denied"), want: "permission denied"},
	}

	for _, tt := range tests {
		assert.Contains(t, userMessage(tt.err), tt.want)
	}
}
