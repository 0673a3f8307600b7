// Package orchestrators coordinates workflows across domain services and
// gateways.
package orchestrators

import (
	"context"

	"github.com/ochairo/fwsize/internal/domain/entities"
	"github.com/ochairo/fwsize/internal/domain/interfaces"
	"github.com/ochairo/fwsize/internal/domain/interfaces/gateways"
	"github.com/ochairo/fwsize/internal/domain/services"
)

// SizeOrchestrator runs the size pipeline: locate the artifact, read its
// section sizes, read the optional memory layout, and combine everything
// into a usage report. The sequence is strictly linear and fail-fast;
// only the layout step is allowed to degrade instead of failing.
type SizeOrchestrator struct {
	locator  gateways.ArtifactLocator
	sections gateways.SectionReader
	layout   gateways.LayoutReader
	reports  *services.ReportService
	log      interfaces.Logger
}

// NewSizeOrchestrator creates a new size orchestrator
func NewSizeOrchestrator(
	locator gateways.ArtifactLocator,
	sections gateways.SectionReader,
	layout gateways.LayoutReader,
	reports *services.ReportService,
	log interfaces.Logger,
) *SizeOrchestrator {
	if log == nil {
		log = &interfaces.NoOpLogger{}
	}

	return &SizeOrchestrator{
		locator:  locator,
		sections: sections,
		layout:   layout,
		reports:  reports,
		log:      log,
	}
}

// MeasureUsage executes one pipeline run. layoutPath points at the
// memory-layout file; when it is absent or unusable the report simply
// carries no percentages. Errors from the locator and the section reader
// propagate immediately, with no partial report.
func (o *SizeOrchestrator) MeasureUsage(ctx context.Context, projectRoot, artifactName, layoutPath string, mode entities.BuildMode) (*entities.UsageReport, error) {
	binary, err := o.locator.Locate(ctx, projectRoot, artifactName, mode)
	if err != nil {
		return nil, err
	}
	o.log.Debug("located binary", interfaces.F("path", binary), interfaces.F("mode", mode.String()))

	sizes, err := o.sections.ReadSizes(ctx, binary)
	if err != nil {
		return nil, err
	}
	o.log.Debug("section sizes read",
		interfaces.F("code_bytes", sizes.Code),
		interfaces.F("data_bytes", sizes.Data))

	layout := o.layout.ReadLayout(layoutPath)
	if layout == nil {
		o.log.Debug("no usable memory layout, omitting percentages",
			interfaces.F("path", layoutPath))
	} else {
		o.log.Debug("memory layout read",
			interfaces.F("flash_bytes", layout.Flash),
			interfaces.F("ram_bytes", layout.RAM))
	}

	report := o.reports.BuildReport(sizes, layout)
	return &report, nil
}
