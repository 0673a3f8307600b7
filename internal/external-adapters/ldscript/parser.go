// Package ldscript extracts memory-region declarations from GNU linker
// scripts. It understands just enough of the grammar to read the MEMORY
// directive; everything else in the script is ignored.
package ldscript

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Region is a single entry of a MEMORY directive: a named memory with an
// origin address and a length in bytes.
type Region struct {
	Name   string
	Origin uint64
	Length uint64
}

// Parse returns the regions declared by the first MEMORY directive in
// src. It fails when no MEMORY directive is present or when a region
// entry cannot be understood.
func Parse(src string) ([]Region, error) {
	p := &parser{src: stripComments(src)}

	if !p.seekMemory() {
		return nil, fmt.Errorf("no MEMORY directive found")
	}

	return p.parseRegions()
}

// stripComments removes /* ... */ block comments. Unterminated comments
// swallow the rest of the input, matching linker behavior closely enough
// for region extraction.
func stripComments(src string) string {
	var b strings.Builder
	for {
		start := strings.Index(src, "/*")
		if start < 0 {
			b.WriteString(src)
			return b.String()
		}
		b.WriteString(src[:start])
		b.WriteByte(' ')
		end := strings.Index(src[start+2:], "*/")
		if end < 0 {
			return b.String()
		}
		src = src[start+2+end+2:]
	}
}

type parser struct {
	src string
	pos int
}

// seekMemory advances past the MEMORY keyword and its opening brace.
func (p *parser) seekMemory() bool {
	for {
		idx := strings.Index(p.src[p.pos:], "MEMORY")
		if idx < 0 {
			return false
		}
		start := p.pos + idx
		end := start + len("MEMORY")

		// MEMORY must stand alone as a word.
		if (start == 0 || !isWordChar(rune(p.src[start-1]))) &&
			(end >= len(p.src) || !isWordChar(rune(p.src[end]))) {
			p.pos = end
			p.skipSpace()
			if p.consume('{') {
				return true
			}
		}
		p.pos = end
	}
}

func (p *parser) parseRegions() ([]Region, error) {
	var regions []Region

	for {
		p.skipSpace()
		if p.consume('}') {
			return regions, nil
		}
		if p.eof() {
			return nil, fmt.Errorf("unterminated MEMORY directive")
		}

		region, err := p.parseRegion()
		if err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
}

// parseRegion reads one entry of the form
//
//	NAME (attrs) : ORIGIN = <expr>, LENGTH = <expr>
//
// with the usual ld abbreviations (org/o, len/l) accepted for the
// attribute names, in any order.
func (p *parser) parseRegion() (Region, error) {
	name := p.ident()
	if name == "" {
		return Region{}, fmt.Errorf("expected region name at offset %d", p.pos)
	}

	p.skipSpace()
	if p.consume('(') {
		// Attribute list such as (rx) or (xrw); contents are irrelevant
		// to region sizes.
		for !p.eof() && !p.consume(')') {
			p.pos++
		}
	}

	p.skipSpace()
	if !p.consume(':') {
		return Region{}, fmt.Errorf("expected ':' after region %q", name)
	}

	region := Region{Name: name}
	seenLength := false

	for {
		p.skipSpace()
		attr := p.ident()
		if attr == "" {
			return Region{}, fmt.Errorf("expected attribute in region %q", name)
		}

		p.skipSpace()
		if !p.consume('=') {
			return Region{}, fmt.Errorf("expected '=' after %q in region %q", attr, name)
		}

		value, err := p.expr()
		if err != nil {
			return Region{}, fmt.Errorf("region %q: %w", name, err)
		}

		switch strings.ToLower(attr) {
		case "origin", "org", "o":
			region.Origin = value
		case "length", "len", "l":
			region.Length = value
			seenLength = true
		default:
			return Region{}, fmt.Errorf("unknown attribute %q in region %q", attr, name)
		}

		p.skipSpace()
		if !p.consume(',') {
			break
		}
	}

	if !seenLength {
		return Region{}, fmt.Errorf("region %q has no LENGTH", name)
	}

	return region, nil
}

// expr evaluates a flat sum of numeric terms: 128K, 0x20000, 64K + 0x100.
// Anything fancier (symbols, parentheses) is rejected, which degrades the
// whole layout to "absent" at the caller.
func (p *parser) expr() (uint64, error) {
	value, err := p.number()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpace()
		switch {
		case p.consume('+'):
			term, err := p.number()
			if err != nil {
				return 0, err
			}
			value += term
		case p.consume('-'):
			term, err := p.number()
			if err != nil {
				return 0, err
			}
			if term > value {
				return 0, fmt.Errorf("negative region size")
			}
			value -= term
		default:
			return value, nil
		}
	}
}

// number reads an integer literal with an optional K/M/G unit suffix.
func (p *parser) number() (uint64, error) {
	p.skipSpace()
	start := p.pos

	if strings.HasPrefix(p.src[p.pos:], "0x") || strings.HasPrefix(p.src[p.pos:], "0X") {
		p.pos += 2
		digits := p.pos
		for !p.eof() && isHexDigit(rune(p.src[p.pos])) {
			p.pos++
		}
		if p.pos == digits {
			return 0, fmt.Errorf("malformed hex literal at offset %d", start)
		}
		value, err := strconv.ParseUint(p.src[digits:p.pos], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed hex literal at offset %d", start)
		}
		return value, nil
	}

	for !p.eof() && unicode.IsDigit(rune(p.src[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected number at offset %d", start)
	}

	value, err := strconv.ParseUint(p.src[start:p.pos], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed number at offset %d", start)
	}

	if !p.eof() {
		switch p.src[p.pos] {
		case 'K', 'k':
			value *= 1024
			p.pos++
		case 'M', 'm':
			value *= 1024 * 1024
			p.pos++
		case 'G', 'g':
			value *= 1024 * 1024 * 1024
			p.pos++
		}
	}

	return value, nil
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isWordChar(rune(p.src[p.pos])) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *parser) consume(c byte) bool {
	if p.eof() || p.src[p.pos] != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
