// SPDX-License-Identifier: MIT
// Package csvgraph: sentinel errors.

package csvgraph

import "errors"

var (
	// ErrBadCell is returned for a cell that is neither "0" nor "1".
	ErrBadCell = errors.New("csvgraph: cell must be 0 or 1")

	// ErrBadDelimiter is returned for delimiters encoding/csv cannot use
	// (quotes, newlines, the Unicode replacement character).
	ErrBadDelimiter = errors.New("csvgraph: invalid delimiter")
)
