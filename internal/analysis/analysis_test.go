package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"importlens/internal/graph"
)

func graphOf(t *testing.T, paths []string, edges [][2]string) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, p := range paths {
		g.AddModule(&graph.Module{Path: p})
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Run("Three-module cycle", func(t *testing.T) {
		// a imports b, b imports c, c imports a; d stands alone
		g := graphOf(t,
			[]string{"a", "b", "c", "d"},
			[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}},
		)

		report := NewAnalyzer(g).Analyze()

		assert.Equal(t, 4, report.TotalModules)
		assert.Equal(t, 3, report.TotalImports)
		assert.False(t, report.Acyclic())
		require.Len(t, report.Cycles, 1)
		assert.Equal(t, []string{"a", "b", "c"}, report.Cycles[0])
		assert.Equal(t, []string{"d"}, report.Isolated)
	})

	t.Run("Most imported and most dependent", func(t *testing.T) {
		g := graphOf(t,
			[]string{"main", "pkg.util", "pkg.models", "shared"},
			[][2]string{
				{"main", "pkg.util"},
				{"main", "pkg.models"},
				{"main", "shared"},
				{"pkg.models", "shared"},
			},
		)

		report := NewAnalyzer(g).Analyze()

		require.NotNil(t, report.MostImported)
		assert.Equal(t, "shared", report.MostImported.Path)
		assert.Equal(t, 2, report.MostImported.Count)

		require.NotNil(t, report.MostDependent)
		assert.Equal(t, "main", report.MostDependent.Path)
		assert.Equal(t, 3, report.MostDependent.Count)

		assert.Empty(t, report.Isolated)
		assert.True(t, report.Acyclic())
	})

	t.Run("Ties break lexically", func(t *testing.T) {
		// zeta and alpha are each imported once; alpha wins the tie
		g := graphOf(t,
			[]string{"zeta", "alpha", "user1", "user2"},
			[][2]string{{"user1", "zeta"}, {"user2", "alpha"}},
		)

		report := NewAnalyzer(g).Analyze()

		require.NotNil(t, report.MostImported)
		assert.Equal(t, "alpha", report.MostImported.Path)
	})

	t.Run("Cycle normalization is rotation-independent", func(t *testing.T) {
		// same cycle declared starting from different nodes
		first := graphOf(t, []string{"m", "a", "z"}, [][2]string{{"m", "a"}, {"a", "z"}, {"z", "m"}})
		second := graphOf(t, []string{"z", "m", "a"}, [][2]string{{"z", "m"}, {"m", "a"}, {"a", "z"}})

		assert.Equal(t,
			NewAnalyzer(first).Analyze().Cycles,
			NewAnalyzer(second).Analyze().Cycles,
		)
	})

	t.Run("Multiple cycles sorted", func(t *testing.T) {
		g := graphOf(t,
			[]string{"a", "b", "x", "y"},
			[][2]string{{"a", "b"}, {"b", "a"}, {"x", "y"}, {"y", "x"}},
		)

		report := NewAnalyzer(g).Analyze()

		require.Len(t, report.Cycles, 2)
		assert.Equal(t, [][]string{{"a", "b"}, {"x", "y"}}, report.Cycles)
	})

	t.Run("Empty graph", func(t *testing.T) {
		report := NewAnalyzer(graph.NewGraph()).Analyze()

		assert.Zero(t, report.TotalModules)
		assert.Nil(t, report.MostImported)
		assert.Nil(t, report.MostDependent)
		assert.Empty(t, report.Isolated)
		assert.True(t, report.Acyclic())
	})

	t.Run("Deterministic across runs", func(t *testing.T) {
		build := func() *Report {
			g := graphOf(t,
				[]string{"a", "b", "c", "d", "e"},
				[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"d", "a"}},
			)
			return NewAnalyzer(g).Analyze()
		}

		first := build()
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, build())
		}
	})
}
