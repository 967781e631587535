// Package csvgraph reads adjacency matrices from CSV files and writes solver
// results.
//
// Input: one row per vertex, one cell per vertex, cells "1" (edge) or "0".
// Characters other than digits are ignored inside a cell, so " 1" and "1\r"
// both read as "1". The delimiter is configurable.
//
// Output:
//
//   - WriteMappings: per mapping a line of G indices, a line of H indices
//     and a blank line, all 0-based.
//   - PrintMappings: a human-readable table per mapping with 1-based
//     "g <==> h" rows.
//
// Files are accessed through an afero.Fs so callers and tests can swap the
// OS filesystem for an in-memory one.
package csvgraph
