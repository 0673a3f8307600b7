// Package services implements the pure domain computations of the size
// pipeline.
package services

import "github.com/ochairo/fwsize/internal/domain/entities"

// ReportService combines measured section sizes with optional device
// capacities into the final usage report.
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// BuildReport always carries the raw byte counts over into the report.
// When a layout is present it additionally derives the used-capacity
// percentages; a nil layout simply omits them. This step cannot fail.
func (s *ReportService) BuildReport(sizes entities.SectionSizes, layout *entities.MemoryLayout) entities.UsageReport {
	report := entities.UsageReport{
		CodeBytes: sizes.Code,
		DataBytes: sizes.Data,
	}

	if layout == nil {
		return report
	}

	codePct := float64(sizes.Code) / float64(layout.Flash) * 100.0
	dataPct := float64(sizes.Data) / float64(layout.RAM) * 100.0
	report.CodePercentage = &codePct
	report.DataPercentage = &dataPct

	return report
}
