// SPDX-License-Identifier: MIT
// Package csvgraph: matrix input.

package csvgraph

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/Arnyev/Max-Common-Subgraph/graph"
)

// Read parses an adjacency matrix from r and validates it into a graph.
// Blank lines are skipped. Shape and symmetry violations surface as
// graph.ErrInvalidShape and graph.ErrInvalidGraph.
func Read(r io.Reader, delim rune) (*graph.Graph, error) {
	m, err := ReadMatrix(r, delim)
	if err != nil {
		return nil, err
	}
	g, err := graph.New(m)
	if err != nil {
		return nil, errors.WithMessage(err, "validating adjacency matrix")
	}

	return g, nil
}

// ReadMatrix parses the raw boolean matrix without validating its shape.
func ReadMatrix(r io.Reader, delim rune) ([][]bool, error) {
	cr, err := newReader(r, delim)
	if err != nil {
		return nil, err
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv")
	}

	m := make([][]bool, len(records))
	for i, rec := range records {
		m[i] = make([]bool, len(rec))
		for j, cell := range rec {
			switch digits(cell) {
			case "1":
				m[i][j] = true
			case "0":
			default:
				return nil, errors.WithMessagef(ErrBadCell, "row %d, column %d: %q", i+1, j+1, cell)
			}
		}
	}

	return m, nil
}

// ReadFile reads the graph stored at path on fs.
func ReadFile(fs afero.Fs, path string, delim rune) (*graph.Graph, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	g, err := Read(f, delim)
	if err != nil {
		return nil, errors.WithMessagef(err, "reading %s", path)
	}

	return g, nil
}

func newReader(r io.Reader, delim rune) (*csv.Reader, error) {
	if err := ValidDelimiter(delim); err != nil {
		return nil, err
	}
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	return cr, nil
}

// ValidDelimiter reports whether delim can separate cells.
func ValidDelimiter(delim rune) error {
	if delim == '"' || delim == '\r' || delim == '\n' || delim == unicode.ReplacementChar ||
		!unicode.IsPrint(delim) && delim != '\t' {
		return fmt.Errorf("%q: %w", delim, ErrBadDelimiter)
	}
	if unicode.IsDigit(delim) {
		return fmt.Errorf("%q: %w", delim, ErrBadDelimiter)
	}

	return nil
}

// digits keeps only the decimal digits of s.
func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
