package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"importlens/internal/analysis"
	"importlens/internal/builder"
	"importlens/internal/crawler"
	"importlens/internal/extractor"
	"importlens/internal/generator"
	"importlens/internal/git"
	"importlens/internal/graph"
	"importlens/internal/knowledge"
	"importlens/internal/storage"
)

// Options configures one end-to-end run.
type Options struct {
	// Repository is a local path, an owner/repo shorthand or a clone URL.
	Repository string

	Output       string
	GraphJSON    string
	SnippetLines int
	Excludes     []string

	// SkipAnnotate builds and analyzes without AI descriptions.
	SkipAnnotate bool
	Workers      int
	Timeout      time.Duration
	AI           knowledge.SummarizerOptions

	// Summarizer overrides the provider the AI options would construct.
	// Used by tests; nil means build from AI.
	Summarizer knowledge.Summarizer

	// CachePath locates the summary cache database; empty disables caching.
	CachePath string

	OpenBrowser bool
}

// Result is the outcome of a run, threaded explicitly instead of living in
// shared state: the annotated graph, its analysis and everything that went
// wrong but did not stop the pipeline.
type Result struct {
	Graph      *graph.Graph
	Report     *analysis.Report
	Warnings   []string
	OutputPath string
	JSONPath   string
}

// Run executes the pipeline: materialize, scan and build, annotate, analyze,
// render. Per-file and per-module failures accumulate as warnings; only
// materialization, credential and render errors abort.
func Run(ctx context.Context, opts Options) (*Result, error) {
	source, err := git.Materialize(ctx, opts.Repository)
	if err != nil {
		return nil, err
	}
	defer source.Cleanup()

	fmt.Println("🚀 Building import graph...")
	start := time.Now()

	ext, err := extractor.NewExtractor("python")
	if err != nil {
		return nil, err
	}
	b := builder.NewBuilder(crawler.NewCrawler(opts.Excludes...), ext, opts.SnippetLines)

	g, warnings, err := b.Build(ctx, source.Path)
	if err != nil {
		return nil, err
	}
	fmt.Printf("✅ Graph built in %v. Found %d modules, %d imports.\n",
		time.Since(start).Round(time.Millisecond), g.NodeCount(), g.EdgeCount())

	result := &Result{Graph: g, Warnings: warnings}

	if !opts.SkipAnnotate {
		annotateWarnings, err := annotate(ctx, g, opts)
		if err != nil {
			return nil, err
		}
		result.Warnings = append(result.Warnings, annotateWarnings...)
	}

	fmt.Println("🔍 Analyzing graph...")
	result.Report = analysis.NewAnalyzer(g).Analyze()

	fmt.Println("📈 Rendering visualization...")
	if err := generator.WriteHTML(g, result.Report, opts.Output); err != nil {
		return nil, err
	}
	result.OutputPath = opts.Output

	if opts.GraphJSON != "" {
		if err := b.SaveGraph(g, opts.GraphJSON); err != nil {
			return nil, err
		}
		result.JSONPath = opts.GraphJSON
	}

	if opts.OpenBrowser {
		if err := generator.OpenBrowser(opts.Output); err != nil {
			slog.Warn("could not open browser", "path", opts.Output, "error", err)
		}
	}

	return result, nil
}

func annotate(ctx context.Context, g *graph.Graph, opts Options) ([]string, error) {
	summarizer := opts.Summarizer
	if summarizer == nil {
		var err error
		summarizer, err = knowledge.NewSummarizer(ctx, opts.AI)
		if err != nil {
			return nil, err
		}
	}

	var cache knowledge.SummaryCache
	if opts.CachePath != "" {
		store, err := storage.NewSQLiteStore(opts.CachePath)
		if err != nil {
			// the cache is an optimization, not a requirement
			slog.Warn("summary cache unavailable", "path", opts.CachePath, "error", err)
		} else {
			defer store.Close()
			cache = store
		}
	}

	fmt.Printf("🧠 Annotating %d modules (%s)...\n", g.NodeCount(), summarizer.Name())
	annotator := knowledge.NewAnnotator(summarizer, cache, opts.Workers, opts.Timeout)
	return annotator.Annotate(ctx, g), nil
}
