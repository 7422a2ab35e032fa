package extractor

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// PythonExtractor implements LanguageExtractor for Python.
type PythonExtractor struct{}

func (p *PythonExtractor) GetLanguage() *sitter.Language {
	return python.GetLanguage()
}

func (p *PythonExtractor) GetQuery() string {
	return `
		(import_statement) @import
		(import_from_statement) @from_import
	`
}

func (p *PythonExtractor) ExtractImports(captureName string, node *sitter.Node, sourceCode []byte) []ImportStatement {
	switch captureName {
	case "import":
		return p.extractImport(node, sourceCode)
	case "from_import":
		return p.extractFromImport(node, sourceCode)
	}
	return nil
}

// extractImport handles "import a.b.c", "import a.b.c as x" and the
// comma-separated form "import a, b". Each imported path becomes its own
// statement.
func (p *PythonExtractor) extractImport(node *sitter.Node, sourceCode []byte) []ImportStatement {
	line := int(node.StartPoint().Row + 1)

	var statements []ImportStatement
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "dotted_name":
			statements = append(statements, ImportStatement{
				Module: child.Content(sourceCode),
				Line:   line,
			})
		case "aliased_import":
			stmt := ImportStatement{Line: line}
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				stmt.Module = nameNode.Content(sourceCode)
			}
			if aliasNode := child.ChildByFieldName("alias"); aliasNode != nil {
				stmt.Alias = aliasNode.Content(sourceCode)
			}
			if stmt.Module != "" {
				statements = append(statements, stmt)
			}
		}
	}
	return statements
}

// extractFromImport handles "from a.b import c, d as e", wildcard imports and
// the relative forms "from . import x" / "from ..pkg import y". The whole
// statement becomes a single ImportStatement carrying every imported name.
func (p *PythonExtractor) extractFromImport(node *sitter.Node, sourceCode []byte) []ImportStatement {
	stmt := ImportStatement{Line: int(node.StartPoint().Row + 1)}

	moduleNode := node.ChildByFieldName("module_name")
	if moduleNode == nil {
		return nil
	}

	switch moduleNode.Type() {
	case "dotted_name":
		stmt.Module = moduleNode.Content(sourceCode)
	case "relative_import":
		for i := 0; i < int(moduleNode.NamedChildCount()); i++ {
			part := moduleNode.NamedChild(i)
			switch part.Type() {
			case "import_prefix":
				stmt.Dots = strings.Count(part.Content(sourceCode), ".")
			case "dotted_name":
				stmt.Module = part.Content(sourceCode)
			}
		}
	}

	// The imported names are the remaining named children. The module_name
	// subtree is skipped by byte range so "from a import a" still records
	// the second "a" as a symbol.
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.StartByte() == moduleNode.StartByte() && child.EndByte() == moduleNode.EndByte() {
			continue
		}
		switch child.Type() {
		case "wildcard_import":
			stmt.Wildcard = true
		case "dotted_name":
			stmt.Symbols = append(stmt.Symbols, child.Content(sourceCode))
		case "aliased_import":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				stmt.Symbols = append(stmt.Symbols, nameNode.Content(sourceCode))
			}
		}
	}

	if stmt.Module == "" && stmt.Dots == 0 {
		return nil
	}
	return []ImportStatement{stmt}
}
