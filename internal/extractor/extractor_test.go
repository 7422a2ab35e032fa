package extractor

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractFile(t *testing.T) {
	testFile := filepath.Join("testdata", "sample.py")

	ext, err := NewExtractor("python")
	require.NoError(t, err)

	imports, err := ext.ExtractFile(context.Background(), testFile)
	require.NoError(t, err)

	// Group statements by module for easier lookup
	byModule := make(map[string]ImportStatement)
	for _, stmt := range imports {
		byModule[stmt.Module] = stmt
	}

	t.Run("Overall Count", func(t *testing.T) {
		assert.Equal(t, 11, len(imports), "Should extract exactly 11 import statements (os, json, xml.etree.ElementTree, collections, itertools, pathlib, os.path, typing, ., ..shared, .models)")
	})

	t.Run("Plain Imports", func(t *testing.T) {
		stmt, ok := byModule["os"]
		require.True(t, ok)
		assert.Empty(t, stmt.Symbols)
		assert.Zero(t, stmt.Dots)
		assert.Equal(t, 3, stmt.Line)

		stmt, ok = byModule["xml.etree.ElementTree"]
		require.True(t, ok, "dotted paths should survive intact")
		assert.Empty(t, stmt.Alias)
	})

	t.Run("Aliased Import", func(t *testing.T) {
		stmt, ok := byModule["json"]
		require.True(t, ok)
		assert.Equal(t, "j", stmt.Alias, "alias should be recorded, module kept as the real path")
	})

	t.Run("Comma Separated Import", func(t *testing.T) {
		first, ok := byModule["collections"]
		require.True(t, ok)
		second, ok := byModule["itertools"]
		require.True(t, ok)
		assert.Equal(t, first.Line, second.Line, "both names come from the same statement")
	})

	t.Run("From Imports", func(t *testing.T) {
		stmt, ok := byModule["pathlib"]
		require.True(t, ok)
		assert.Equal(t, []string{"Path"}, stmt.Symbols)

		stmt, ok = byModule["os.path"]
		require.True(t, ok)
		assert.Equal(t, []string{"join", "exists"}, stmt.Symbols, "per-symbol aliases should be stripped")

		stmt, ok = byModule["typing"]
		require.True(t, ok)
		assert.Equal(t, []string{"Any", "Optional"}, stmt.Symbols, "parenthesized import lists should be flattened")
	})

	t.Run("Relative Imports", func(t *testing.T) {
		stmt, ok := byModule[""]
		require.True(t, ok, "from . import x has no module path")
		assert.Equal(t, 1, stmt.Dots)
		assert.Equal(t, []string{"sibling"}, stmt.Symbols)

		stmt, ok = byModule["shared"]
		require.True(t, ok)
		assert.Equal(t, 2, stmt.Dots)
		assert.Equal(t, []string{"helpers"}, stmt.Symbols)
	})

	t.Run("Wildcard Import", func(t *testing.T) {
		stmt, ok := byModule["models"]
		require.True(t, ok)
		assert.True(t, stmt.Wildcard)
		assert.Equal(t, 1, stmt.Dots)
		assert.Empty(t, stmt.Symbols, "* is not a symbol")
	})

	t.Run("Source Order", func(t *testing.T) {
		require.NotEmpty(t, imports)
		assert.Equal(t, "os", imports[0].Module)
		assert.Equal(t, "models", imports[len(imports)-1].Module)
		for i := 1; i < len(imports); i++ {
			assert.LessOrEqual(t, imports[i-1].Line, imports[i].Line, "statements should come back in source order")
		}
	})
}

func TestExtractor_BrokenSource(t *testing.T) {
	ext, err := NewExtractor("python")
	require.NoError(t, err)

	_, err = ext.Extract(context.Background(), []byte("import os\ndef broken(:\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestNewExtractor_UnsupportedLanguage(t *testing.T) {
	_, err := NewExtractor("fortran")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}
