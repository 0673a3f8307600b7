package gateways

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// elfSection describes a single entry of a fixture image's section table.
type elfSection struct {
	name string
	size uint64
	typ  elf.SectionType
}

func progbits(name string, size uint64) elfSection {
	return elfSection{name: name, size: size, typ: elf.SHT_PROGBITS}
}

func nobits(name string, size uint64) elfSection {
	return elfSection{name: name, size: size, typ: elf.SHT_NOBITS}
}

// elfFileHeader mirrors the fixed-size tail of the ELF64 header following
// e_ident.
type elfFileHeader struct {
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint64
	Phoff     uint64
	Shoff     uint64
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// elfSectionHeader is one ELF64 section header entry.
type elfSectionHeader struct {
	Name      uint32
	Type      uint32
	Flags     uint64
	Addr      uint64
	Off       uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
}

// writeTestELF assembles a minimal but valid 64-bit little-endian ELF
// image whose section table declares the given sections, and writes it to
// dir/name. Only the headers matter to the tests, so the sections carry
// no payload.
func writeTestELF(t *testing.T, dir, name string, sections []elfSection) string {
	t.Helper()

	strtab := []byte{0}
	nameOffsets := make([]uint32, len(sections))
	for i, s := range sections {
		nameOffsets[i] = uint32(len(strtab))
		strtab = append(strtab, s.name...)
		strtab = append(strtab, 0)
	}
	shstrtabName := uint32(len(strtab))
	strtab = append(strtab, ".shstrtab"...)
	strtab = append(strtab, 0)

	const ehsize = 64
	const shentsize = 64
	shnum := len(sections) + 2 // null entry + sections + .shstrtab
	shoff := ehsize + len(strtab)

	var buf bytes.Buffer
	buf.Write([]byte{0x7f, 'E', 'L', 'F',
		byte(elf.ELFCLASS64), byte(elf.ELFDATA2LSB), byte(elf.EV_CURRENT),
		0, 0, 0, 0, 0, 0, 0, 0, 0})

	le := binary.LittleEndian
	require.NoError(t, binary.Write(&buf, le, elfFileHeader{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(elf.EM_ARM),
		Version:   uint32(elf.EV_CURRENT),
		Shoff:     uint64(shoff),
		Ehsize:    ehsize,
		Shentsize: shentsize,
		Shnum:     uint16(shnum),
		Shstrndx:  uint16(shnum - 1),
	}))

	buf.Write(strtab)

	require.NoError(t, binary.Write(&buf, le, elfSectionHeader{})) // SHN_UNDEF
	for i, s := range sections {
		require.NoError(t, binary.Write(&buf, le, elfSectionHeader{
			Name: nameOffsets[i],
			Type: uint32(s.typ),
			Size: s.size,
		}))
	}
	require.NoError(t, binary.Write(&buf, le, elfSectionHeader{
		Name: shstrtabName,
		Type: uint32(elf.SHT_STRTAB),
		Off:  ehsize,
		Size: uint64(len(strtab)),
	}))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	return path
}
