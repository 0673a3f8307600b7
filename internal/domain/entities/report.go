package entities

// SectionSizes holds the aggregated byte counts read from a binary's
// section table. Sections absent from the binary contribute zero.
type SectionSizes struct {
	// Code is the sum of the code-bearing section sizes.
	Code uint64
	// Data is the sum of the data-bearing section sizes.
	Data uint64
}

// MemoryLayout holds the device capacities declared in a memory-layout
// file. A nil *MemoryLayout means no usable capacity data was found;
// a non-nil value always has both fields strictly positive.
type MemoryLayout struct {
	// Flash is the declared code capacity in bytes.
	Flash uint64
	// RAM is the declared data capacity in bytes.
	RAM uint64
}

// UsageReport is the final result of a size pipeline run. The percentage
// fields are present only when a memory layout was available.
type UsageReport struct {
	CodeBytes      uint64   `json:"code_bytes"`
	DataBytes      uint64   `json:"data_bytes"`
	CodePercentage *float64 `json:"code_percentage,omitempty"`
	DataPercentage *float64 `json:"data_percentage,omitempty"`
}

// HasCapacity reports whether the report carries percentage information.
func (r *UsageReport) HasCapacity() bool {
	return r.CodePercentage != nil && r.DataPercentage != nil
}
