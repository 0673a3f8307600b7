package gateways

import (
	"context"
	"debug/elf"
	"fmt"
	"os"

	"github.com/ochairo/fwsize/internal/domain/entities"
)

// Section name tables. The size of every listed section present in the
// binary is added to the matching total; sections outside the tables are
// ignored no matter how large they are. New names extend the tables, not
// the reader.
var (
	// codeSections contain program code and constants placed in flash.
	codeSections = []string{".vector_table", ".text", ".rodata"}

	// dataSections occupy RAM at runtime.
	dataSections = []string{".bss", ".data"}
)

// SectionReader extracts aggregate code and data byte counts from the
// section table of an ELF binary using debug/elf, no external tools
// required.
type SectionReader struct {
	code []string
	data []string
}

// NewSectionReader creates a section reader. extraCode and extraData are
// appended to the built-in section name tables.
func NewSectionReader(extraCode, extraData []string) *SectionReader {
	return &SectionReader{
		code: append(append([]string{}, codeSections...), extraCode...),
		data: append(append([]string{}, dataSections...), extraData...),
	}
}

// ReadSizes opens the binary at path and sums the declared sizes of the
// code-bearing and data-bearing sections. Sections missing from the
// binary contribute zero. An unreadable file surfaces the filesystem
// error; a file that is not a parsable ELF image fails with
// entities.ErrInvalidBinary.
func (r *SectionReader) ReadSizes(_ context.Context, path string) (entities.SectionSizes, error) {
	//nolint:gosec // G304: path is the located build artifact
	f, err := os.Open(path)
	if err != nil {
		return entities.SectionSizes{}, fmt.Errorf("reading binary: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	img, err := elf.NewFile(f)
	if err != nil {
		return entities.SectionSizes{}, fmt.Errorf("%w: %s: %v", entities.ErrInvalidBinary, path, err)
	}

	var sizes entities.SectionSizes
	for _, name := range r.code {
		if section := img.Section(name); section != nil {
			sizes.Code += section.Size
		}
	}
	for _, name := range r.data {
		if section := img.Section(name); section != nil {
			sizes.Data += section.Size
		}
	}

	return sizes, nil
}
