package extractor

import sitter "github.com/smacker/go-tree-sitter"

// ImportStatement is one parsed import, before any path resolution.
//
// Plain imports ("import a.b.c as x") carry the dotted path in Module and the
// optional binding in Alias; Symbols stays empty. From-imports
// ("from a.b import c, d as e") carry the imported names in Symbols with
// per-symbol aliases stripped, since resolution and edge labels both use the
// real names. Relative imports record their leading dot count in Dots
// (0 = absolute); "from . import x" has an empty Module and Dots = 1.
type ImportStatement struct {
	Module   string   `json:"module"`
	Symbols  []string `json:"symbols,omitempty"`
	Alias    string   `json:"alias,omitempty"`
	Dots     int      `json:"dots,omitempty"`
	Wildcard bool     `json:"wildcard,omitempty"`
	Line     int      `json:"line"`
}

// LanguageExtractor defines the interface that each language parser must implement.
type LanguageExtractor interface {
	GetLanguage() *sitter.Language
	GetQuery() string
	ExtractImports(captureName string, node *sitter.Node, sourceCode []byte) []ImportStatement
}
