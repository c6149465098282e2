package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaximumMatchingSimple(t *testing.T) {
	g := NewBipartiteGraph(3, 3)
	g.AddEdge(0, 0)
	g.AddEdge(1, 0)
	g.AddEdge(1, 1)
	g.AddEdge(2, 2)

	m := MaximumMatching(g)
	assert.Equal(t, 3, m.Size)
	for l, r := range m.LeftMatch {
		require.NotEqual(t, unmatched, r)
		assert.Equal(t, l, m.RightMatch[r])
	}
}

func TestMaximumMatchingOversubscribed(t *testing.T) {
	// Three left nodes all compete for a single right node: only one can
	// be matched, leaving two collisions.
	g := NewBipartiteGraph(3, 1)
	g.AddEdge(0, 0)
	g.AddEdge(1, 0)
	g.AddEdge(2, 0)

	m := MaximumMatching(g)
	assert.Equal(t, 1, m.Size)
}

func TestMaximumMatchingNoEdges(t *testing.T) {
	g := NewBipartiteGraph(2, 2)
	m := MaximumMatching(g)
	assert.Equal(t, 0, m.Size)
}
