package extractor

import (
	"context"
	"errors"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
)

var (
	// ErrParse marks source that tree-sitter could not turn into a usable tree.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedLanguage marks a language no extractor is registered for.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Extractor orchestrates import extraction using language-specific extractors.
type Extractor struct {
	langExtractor LanguageExtractor
	langName      string
}

// NewExtractor creates a new extractor for a given language.
func NewExtractor(lang string) (*Extractor, error) {
	var langExt LanguageExtractor
	switch lang {
	case "python":
		langExt = &PythonExtractor{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
	return &Extractor{langExtractor: langExt, langName: lang}, nil
}

// Extract parses source text and returns every import statement in it, in
// source order. Syntactically broken source yields an ErrParse-wrapped error;
// callers keep the module as a node with no imports.
func (e *Extractor) Extract(ctx context.Context, sourceCode []byte) ([]ImportStatement, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(e.langExtractor.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w: syntax error in source", ErrParse)
	}

	query, err := sitter.NewQuery([]byte(e.langExtractor.GetQuery()), e.langExtractor.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("failed to create query: %w", err)
	}

	var imports []ImportStatement

	qc := sitter.NewQueryCursor()
	qc.Exec(query, root)
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			captureName := query.CaptureNameForId(c.Index)
			imports = append(imports, e.langExtractor.ExtractImports(captureName, c.Node, sourceCode)...)
		}
	}

	return imports, nil
}

// ExtractFile reads a source file and extracts its imports.
func (e *Extractor) ExtractFile(ctx context.Context, path string) ([]ImportStatement, error) {
	sourceCode, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return e.Extract(ctx, sourceCode)
}
