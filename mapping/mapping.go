// SPDX-License-Identifier: MIT
// Package mapping: Pair and Mapping.

package mapping

import (
	"fmt"
	"strings"
)

// Pair maps vertex G of the first graph onto vertex H of the second.
type Pair struct {
	G int
	H int
}

// String renders the pair as "g→h".
func (p Pair) String() string { return fmt.Sprintf("%d→%d", p.G, p.H) }

// Mapping is an ordered sequence of pairs.
type Mapping []Pair

// Len returns the number of mapped pairs.
func (m Mapping) Len() int { return len(m) }

// Clone returns an independent copy. Clone of nil is an empty, non-nil Mapping.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	copy(out, m)

	return out
}

// GVertices returns the G-side vertices in mapping order.
func (m Mapping) GVertices() []int {
	out := make([]int, len(m))
	for i, p := range m {
		out[i] = p.G
	}

	return out
}

// HVertices returns the H-side vertices in mapping order.
func (m Mapping) HVertices() []int {
	out := make([]int, len(m))
	for i, p := range m {
		out[i] = p.H
	}

	return out
}

// String renders the mapping as "[0→0 1→2]".
func (m Mapping) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range m {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
