// Package alnio reads alignment files and lists alignment directories.
//
// Alignment files use a FASTA-like layout: each record starts with a
// header line beginning with a marker character ('>' by default) and is
// followed by sequence lines, which are concatenated. Gzip-compressed
// files are read transparently.
package alnio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/alnstats-go/internal/sequence"
)

// DefaultMarker starts every header line.
const DefaultMarker = '>'

// maxLine bounds a single line; unwrapped alignments can be long.
const maxLine = 64 * 1024 * 1024

// Parser reads alignment files into ordered record sets.
type Parser struct {
	// Marker starts a header line.
	Marker byte

	// HeaderDelimiter, when set, cuts the identifier at its first
	// occurrence in the header. Headers without it keep the full text.
	HeaderDelimiter string
}

// NewParser returns a parser using '>' headers and whole-line identifiers.
func NewParser() *Parser {
	return &Parser{Marker: DefaultMarker}
}

// ParseAlignment implements stats.AlignmentParser.
func (p *Parser) ParseAlignment(path string) (*sequence.RecordSet, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, &sequence.InvalidPathError{Path: path, Reason: err.Error()}
	}
	defer rc.Close()

	return p.Parse(rc, path)
}

// Parse reads records from r. name identifies the input in errors.
func (p *Parser) Parse(r io.Reader, name string) (*sequence.RecordSet, error) {
	marker := p.Marker
	if marker == 0 {
		marker = DefaultMarker
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	rs := sequence.NewRecordSet()
	var (
		id      string
		started bool
		bases   strings.Builder
		lineNum int
	)

	flush := func() error {
		if !started {
			return nil
		}
		if err := rs.Add(id, bases.String()); err != nil {
			var dup *sequence.DuplicateIDError
			if errors.As(err, &dup) {
				dup.Alignment = name
			}
			return err
		}
		bases.Reset()
		return nil
	}

	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")

		if len(line) > 0 && line[0] == marker {
			if err := flush(); err != nil {
				return nil, err
			}
			hid, err := p.headerID(line, marker)
			if err != nil {
				return nil, &sequence.MalformedRecordError{Path: name, Line: lineNum, Reason: err.Error()}
			}
			id, started = hid, true
			continue
		}

		data := strings.TrimSpace(line)
		if data == "" {
			continue
		}
		if !started {
			return nil, &sequence.MalformedRecordError{
				Path:   name,
				Line:   lineNum,
				Reason: fmt.Sprintf("sequence data before the first %q header", marker),
			}
		}
		bases.WriteString(data)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return rs, nil
}

func (p *Parser) headerID(line string, marker byte) (string, error) {
	id, _, err := SubstringBetween(line, string(marker), p.HeaderDelimiter, 0)
	if err != nil {
		var nf *DelimiterNotFoundError
		if !errors.As(err, &nf) || nf.Delim != p.HeaderDelimiter {
			return "", err
		}
		id = line[1:]
	}
	if id == "" {
		return "", errors.New("empty sequence identifier")
	}
	return id, nil
}

// ReadAlignment parses the file at path with the default parser.
func ReadAlignment(path string) (*sequence.RecordSet, error) {
	return NewParser().ParseAlignment(path)
}
