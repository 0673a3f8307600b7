package gateways

import (
	"os"
	"strings"

	"github.com/ochairo/fwsize/internal/domain/entities"
	"github.com/ochairo/fwsize/internal/external-adapters/ldscript"
)

// Logical region names matched case-insensitively against the MEMORY
// directive of the layout file.
const (
	flashRegion = "flash"
	ramRegion   = "ram"
)

// LayoutReader extracts device capacities from a linker memory-layout
// file (conventionally memory.x). The file is optional enrichment:
// every failure degrades to "no capacity data" instead of an error, so
// a missing or broken layout never blocks the size report.
type LayoutReader struct{}

// NewLayoutReader creates a new layout reader
func NewLayoutReader() *LayoutReader {
	return &LayoutReader{}
}

// ReadLayout returns the declared flash and RAM capacities, or nil when
// the file is absent, unparsable, or either capacity is zero. Regions
// sharing a logical name are summed.
func (r *LayoutReader) ReadLayout(path string) *entities.MemoryLayout {
	//nolint:gosec // G304: path is the project's layout file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	regions, err := ldscript.Parse(string(data))
	if err != nil {
		return nil
	}

	var flash, ram uint64
	for _, region := range regions {
		switch strings.ToLower(region.Name) {
		case flashRegion:
			flash += region.Length
		case ramRegion:
			ram += region.Length
		}
	}

	if flash == 0 || ram == 0 {
		return nil
	}

	return &entities.MemoryLayout{Flash: flash, RAM: ram}
}
