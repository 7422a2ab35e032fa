package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"importlens/internal/analysis"
	"importlens/internal/graph"
)

func renderFixture(t *testing.T) (*graph.Graph, *analysis.Report) {
	t.Helper()
	g := graph.NewGraph()
	g.AddModule(&graph.Module{Path: "main", File: "main.py", Snippet: "from pkg import util\nconfig = {\"a\": 1}", Description: "Entry point."})
	g.AddModule(&graph.Module{Path: "pkg", File: "pkg/__init__.py", IsPackage: true})
	g.AddModule(&graph.Module{Path: "pkg.util", File: "pkg/util.py", Snippet: "def helper(): ..."})
	g.AddModule(&graph.Module{Path: "lonely", File: "lonely.py"})
	g.AddEdge("main", "pkg.util", "util")
	g.AddEdge("main", "pkg")
	g.AddEdge("pkg", "pkg.util")

	return g, analysis.NewAnalyzer(g).Analyze()
}

func TestWriteHTML(t *testing.T) {
	g, report := renderFixture(t)
	out := filepath.Join(t.TempDir(), "import_graph.html")

	require.NoError(t, WriteHTML(g, report, out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(raw)

	t.Run("Contains every module", func(t *testing.T) {
		for _, path := range g.Paths() {
			assert.Contains(t, content, path)
		}
	})

	t.Run("Tooltip content is escaped", func(t *testing.T) {
		assert.Contains(t, content, "Entry point.")
		// quotes in the snippet come out as entities, not raw markup
		assert.Contains(t, content, "#34;a")
	})

	t.Run("Self-contained chart markup", func(t *testing.T) {
		assert.Contains(t, content, "echarts")
		assert.Contains(t, content, "Most Imported Modules")
	})
}

func TestWriteHTML_BadPath(t *testing.T) {
	g, report := renderFixture(t)

	err := WriteHTML(g, report, filepath.Join(t.TempDir(), "no", "such", "dir", "out.html"))
	require.ErrorIs(t, err, ErrRender)
}

func TestTopImported(t *testing.T) {
	g, _ := renderFixture(t)

	top := topImported(g)
	require.NotEmpty(t, top)
	assert.Equal(t, "pkg.util", top[0].Path)
	assert.Equal(t, 2, top[0].Count)

	// descending, ties lexical
	for i := 1; i < len(top); i++ {
		if top[i-1].Count == top[i].Count {
			assert.Less(t, top[i-1].Path, top[i].Path)
		} else {
			assert.Greater(t, top[i-1].Count, top[i].Count)
		}
	}
}
