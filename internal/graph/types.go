package graph

import "importlens/internal/extractor"

// Module is a single Python module found in the scanned project. It is the
// node payload of the import graph.
type Module struct {
	// Path is the dotted import path relative to the project root, e.g.
	// "pkg.util". A package's __init__.py maps to the package path itself.
	Path string

	// File is the project-relative source file path.
	File string

	// IsPackage is true when the module is a package initializer
	// (__init__.py). Relative imports anchor differently inside packages.
	IsPackage bool

	// Source holds the full source text. It is kept for annotation and
	// never serialized.
	Source string

	// Snippet is the head of the source, truncated for tooltips and prompts.
	Snippet string

	// Hash is the hex sha256 of the source and identifies the module content
	// in the summary cache.
	Hash string

	// Imports are the parsed import statements, before path resolution.
	Imports []extractor.ImportStatement

	// Description is the AI-generated summary, filled in by the annotator.
	Description string

	// ParseFailed marks modules whose source could not be parsed. They stay
	// in the graph as isolated nodes.
	ParseFailed bool
}

// Edge is a directed import relationship: From imports To. Symbols collects
// the imported names for tooltips; repeated imports of the same target merge
// into one edge.
type Edge struct {
	From    string
	To      string
	Symbols []string
}
