package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"importlens/internal/config"
	"importlens/internal/generator"
	"importlens/internal/knowledge"
	"importlens/internal/pipeline"
)

// set via -ldflags at release time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig       string
	flagOutput       string
	flagGraphJSON    string
	flagSnippetLines int
	flagExcludes     []string
	flagWorkers      int
	flagSkipAnnotate bool
	flagNoOpen       bool
	flagCache        string
	flagNoCache      bool
	flagVerbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "importlens <repository>",
	Short: "Visualize the import graph of a Python repository",
	Long: `importlens clones or opens a Python repository, parses every module's
import statements, builds the dependency graph, annotates each module with an
AI-generated summary and renders an interactive HTML visualization.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("importlens %s (commit %s, built %s, %s)\n", version, commit, date, runtime.Version())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", `visualization path (default "import_graph.html")`)
	rootCmd.Flags().StringVar(&flagGraphJSON, "graph-json", "", "also export the graph as JSON to this path")
	rootCmd.Flags().IntVar(&flagSnippetLines, "snippet-lines", 0, "node snippet length in lines (default 10)")
	rootCmd.Flags().StringSliceVar(&flagExcludes, "exclude", nil, "glob patterns to skip while scanning")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "annotation workers (default 4)")
	rootCmd.Flags().BoolVar(&flagSkipAnnotate, "skip-annotate", false, "build and analyze without AI descriptions")
	rootCmd.Flags().BoolVar(&flagNoOpen, "no-open", false, "do not open the result in a browser")
	rootCmd.Flags().StringVar(&flagCache, "cache", "importlens.db", "summary cache path (SQLite)")
	rootCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "disable the summary cache")
	rootCmd.Flags().StringVar(&flagConfig, "config", "importlens.yaml", "config file")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := buildOptions(cfg, args[0])

	fmt.Printf("📂 Analyzing repository: %s\n", args[0])

	result, err := pipeline.Run(context.Background(), opts)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		color.New(color.FgYellow).Fprintf(os.Stderr, "⚠️  %s\n", warning)
	}

	fmt.Println()
	generator.WriteReport(os.Stdout, result.Report)

	color.New(color.FgGreen).Printf("🎉 Visualization written to %s\n", result.OutputPath)
	if result.JSONPath != "" {
		fmt.Printf("   Graph JSON written to %s\n", result.JSONPath)
	}
	return nil
}

// buildOptions layers the flag values over the loaded config. Flags win when
// set; the config provides the rest.
func buildOptions(cfg *config.Config, repository string) pipeline.Options {
	output := cfg.Render.Output
	if flagOutput != "" {
		output = flagOutput
	}
	snippetLines := cfg.Render.SnippetLines
	if flagSnippetLines > 0 {
		snippetLines = flagSnippetLines
	}
	workers := cfg.AI.Workers
	if flagWorkers > 0 {
		workers = flagWorkers
	}
	excludes := cfg.Scan.Exclude
	if len(flagExcludes) > 0 {
		excludes = flagExcludes
	}
	cachePath := flagCache
	if flagNoCache {
		cachePath = ""
	}

	return pipeline.Options{
		Repository:   repository,
		Output:       output,
		GraphJSON:    flagGraphJSON,
		SnippetLines: snippetLines,
		Excludes:     excludes,
		SkipAnnotate: flagSkipAnnotate,
		Workers:      workers,
		Timeout:      time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		AI: knowledge.SummarizerOptions{
			Provider: cfg.AI.Provider,
			APIKey:   cfg.AI.APIKey,
			Model:    cfg.AI.Model,
			BaseURL:  cfg.AI.BaseURL,
		},
		CachePath:   cachePath,
		OpenBrowser: cfg.OpenBrowser() && !flagNoOpen,
	}
}
