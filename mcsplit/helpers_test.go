package mcsplit_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arnyev/Max-Common-Subgraph/builder"
	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
	"github.com/Arnyev/Max-Common-Subgraph/mcsplit"
)

// mustBuild builds a graph from constructors or fails the test.
func mustBuild(t *testing.T, seed int64, cons ...builder.Constructor) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, cons...)
	require.NoError(t, err)

	return g
}

// key canonicalises a mapping as its sorted pair set.
func key(m mapping.Mapping) string {
	c := m.Clone()
	sort.Slice(c, func(i, j int) bool { return c[i].G < c[j].G })

	return c.String()
}

// oracle enumerates every valid mapping between two small graphs and
// returns the best score under obj together with the keys of all mappings
// achieving it.
func oracle(g, h *graph.Graph, obj mcsplit.Objective) (mcsplit.Score, map[string]bool) {
	var (
		best  = mcsplit.Score{Vertices: -1, Edges: -1}
		set   = map[string]bool{}
		used  = make([]bool, h.Order())
		cur   mapping.Mapping
		visit func(v int)
	)
	visit = func(v int) {
		if v == g.Order() {
			if mapping.Verify(g, h, cur) != nil {
				return
			}
			s := mcsplit.Score{Vertices: len(cur)}
			if obj == mcsplit.EdgeObjective {
				s.Edges = mapping.EdgeCount(g, cur)
			}
			switch c := s.Compare(best); {
			case c > 0:
				best = s
				set = map[string]bool{key(cur): true}
			case c == 0:
				set[key(cur)] = true
			}
			return
		}
		visit(v + 1)
		for w := 0; w < h.Order(); w++ {
			if used[w] {
				continue
			}
			used[w] = true
			cur = append(cur, mapping.Pair{G: v, H: w})
			visit(v + 1)
			cur = cur[:len(cur)-1]
			used[w] = false
		}
	}
	visit(0)

	return best, set
}
