package builder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"importlens/internal/crawler"
	"importlens/internal/extractor"
	"importlens/internal/graph"
	"importlens/internal/resolver"
)

// DefaultSnippetLines is how much of a module's head ends up in tooltips and
// prompts when no override is given.
const DefaultSnippetLines = 10

// Builder orchestrates scanning, parsing and resolution into an import graph.
type Builder struct {
	crawler      *crawler.Crawler
	extractor    *extractor.Extractor
	snippetLines int
}

// NewBuilder creates a new builder. snippetLines <= 0 falls back to the
// default.
func NewBuilder(c *crawler.Crawler, ext *extractor.Extractor, snippetLines int) *Builder {
	if snippetLines <= 0 {
		snippetLines = DefaultSnippetLines
	}
	return &Builder{
		crawler:      c,
		extractor:    ext,
		snippetLines: snippetLines,
	}
}

// Build scans the project root and constructs the import graph. Nodes are
// registered first so resolution sees the complete module set, then every
// parsed import is resolved into edges. Unreadable and unparseable files
// downgrade to warnings; the graph keeps what could be read.
func (b *Builder) Build(ctx context.Context, root string) (*graph.Graph, []string, error) {
	g := graph.NewGraph()

	var files []*crawler.SourceFile
	warnings, err := b.crawler.ScanProject(root, func(f *crawler.SourceFile) {
		files = append(files, f)
	})
	if err != nil {
		return nil, warnings, fmt.Errorf("scan failed: %w", err)
	}

	// Pass 1: one node per module
	for _, f := range files {
		m := &graph.Module{
			Path:      f.Module,
			File:      f.RelPath,
			IsPackage: f.IsPackage,
			Source:    f.Source,
			Snippet:   headLines(f.Source, b.snippetLines),
			Hash:      hashSource(f.Source),
		}

		imports, parseErr := b.extractor.Extract(ctx, []byte(f.Source))
		if parseErr != nil {
			m.ParseFailed = true
			warnings = append(warnings, fmt.Sprintf("parse failed for %s: %v", f.RelPath, parseErr))
			slog.Warn("keeping module without imports", "path", f.RelPath, "error", parseErr)
		} else {
			m.Imports = imports
		}

		g.AddModule(m)
	}

	// Pass 2: resolve statements against the full module set
	r := resolver.NewResolver(g.Paths())
	externals := 0
	for _, m := range g.Modules() {
		for _, stmt := range m.Imports {
			for _, res := range r.Resolve(m, stmt) {
				if !res.Local {
					externals++
					continue
				}
				g.AddEdge(m.Path, res.Target, res.Symbol)
			}
		}
	}

	slog.Debug("graph built",
		"modules", g.NodeCount(),
		"edges", g.EdgeCount(),
		"external_imports", externals,
	)

	return g, warnings, nil
}

// SaveGraph persists the graph to a JSON file.
func (b *Builder) SaveGraph(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create graph file: %w", err)
	}
	defer f.Close()

	if err := g.WriteJSON(f); err != nil {
		return fmt.Errorf("failed to encode graph: %w", err)
	}
	return nil
}

// headLines returns the first n lines of source with trailing whitespace
// trimmed.
func headLines(source string, n int) string {
	lines := strings.Split(source, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
}

func hashSource(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}
