// SPDX-License-Identifier: MIT
// Package csvgraph: matrix and result output.

package csvgraph

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/dustin/go-humanize/english"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/Arnyev/Max-Common-Subgraph/mapping"
)

// WriteMatrix writes m as "0"/"1" cells separated by delim.
func WriteMatrix(w io.Writer, m [][]bool, delim rune) error {
	cw, err := newWriter(w, delim)
	if err != nil {
		return err
	}
	for _, row := range m {
		rec := make([]string, len(row))
		for j, b := range row {
			rec[j] = "0"
			if b {
				rec[j] = "1"
			}
		}
		if err = cw.Write(rec); err != nil {
			return errors.Wrap(err, "writing matrix row")
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "flushing matrix")
}

// WriteMappings writes every mapping as two lines, G indices then H
// indices, followed by a blank line.
func WriteMappings(w io.Writer, ms []mapping.Mapping, delim rune) error {
	cw, err := newWriter(w, delim)
	if err != nil {
		return err
	}
	for i, m := range ms {
		for _, side := range [][]int{m.GVertices(), m.HVertices()} {
			if err = cw.Write(itoa(side)); err != nil {
				return errors.Wrapf(err, "writing mapping %d", i)
			}
		}
		if err = cw.Write(nil); err != nil {
			return errors.Wrapf(err, "writing mapping %d", i)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "flushing mappings")
}

// WriteMappingsFile creates (or truncates) path on fs and writes ms to it.
func WriteMappingsFile(fs afero.Fs, path string, ms []mapping.Mapping, delim rune) error {
	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err = WriteMappings(f, ms, delim); err != nil {
		_ = f.Close()
		return errors.WithMessagef(err, "writing %s", path)
	}

	return errors.Wrapf(f.Close(), "closing %s", path)
}

// WriteMatrixFile creates (or truncates) path on fs and writes m to it.
func WriteMatrixFile(fs afero.Fs, path string, m [][]bool, delim rune) error {
	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err = WriteMatrix(f, m, delim); err != nil {
		_ = f.Close()
		return errors.WithMessagef(err, "writing %s", path)
	}

	return errors.Wrapf(f.Close(), "closing %s", path)
}

// PrintMappings renders each mapping as a table of 1-based "g <==> h" rows,
// preceded by a numbered title when there is more than one mapping.
func PrintMappings(w io.Writer, ms []mapping.Mapping) error {
	for i, m := range ms {
		if len(ms) > 1 {
			if _, err := io.WriteString(w, "=== common induced subgraph no. "+strconv.Itoa(i+1)+" ===\n"); err != nil {
				return errors.Wrap(err, "printing title")
			}
		}
		table := tablewriter.NewWriter(w)
		table.Header("G", "", "H")
		for _, p := range m {
			if err := table.Append([]string{strconv.Itoa(p.G + 1), "<==>", strconv.Itoa(p.H + 1)}); err != nil {
				return errors.Wrap(err, "appending row")
			}
		}
		if err := table.Render(); err != nil {
			return errors.Wrap(err, "rendering table")
		}
		if _, err := io.WriteString(w, english.Plural(m.Len(), "pair", "")+"\n\n"); err != nil {
			return errors.Wrap(err, "printing summary")
		}
	}

	return nil
}

func newWriter(w io.Writer, delim rune) (*csv.Writer, error) {
	if err := ValidDelimiter(delim); err != nil {
		return nil, err
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim

	return cw, nil
}

func itoa(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.Itoa(v)
	}

	return out
}
