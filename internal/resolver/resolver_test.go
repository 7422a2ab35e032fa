package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"importlens/internal/extractor"
	"importlens/internal/graph"
)

func testResolver() *Resolver {
	return NewResolver([]string{
		"main",
		"pkg",
		"pkg.util",
		"pkg.models",
		"pkg.sub",
		"pkg.sub.deep",
		"shared",
	})
}

func TestResolver_Absolute(t *testing.T) {
	r := testResolver()
	main := &graph.Module{Path: "main"}

	t.Run("Exact match", func(t *testing.T) {
		res := r.Resolve(main, extractor.ImportStatement{Module: "pkg.util"})
		require.Len(t, res, 1)
		assert.True(t, res[0].Local)
		assert.Equal(t, "pkg.util", res[0].Target)
		assert.Equal(t, "pkg.util", res[0].Symbol)
	})

	t.Run("Deepest prefix wins", func(t *testing.T) {
		res := r.Resolve(main, extractor.ImportStatement{Module: "pkg.util.missing"})
		require.Len(t, res, 1)
		assert.True(t, res[0].Local)
		assert.Equal(t, "pkg.util", res[0].Target, "import a.b.c should bind to the deepest module that exists")
	})

	t.Run("External stays external", func(t *testing.T) {
		res := r.Resolve(main, extractor.ImportStatement{Module: "os.path"})
		require.Len(t, res, 1)
		assert.False(t, res[0].Local)
		assert.Empty(t, res[0].Target)
	})

	t.Run("From import prefers the submodule", func(t *testing.T) {
		res := r.Resolve(main, extractor.ImportStatement{Module: "pkg", Symbols: []string{"util"}})
		require.Len(t, res, 1)
		assert.Equal(t, "pkg.util", res[0].Target, "from pkg import util should mean pkg/util.py when it exists")
		assert.Equal(t, "util", res[0].Symbol)
	})

	t.Run("From import falls back to the module", func(t *testing.T) {
		res := r.Resolve(main, extractor.ImportStatement{Module: "pkg", Symbols: []string{"CONSTANT"}})
		require.Len(t, res, 1)
		assert.Equal(t, "pkg", res[0].Target)
		assert.Equal(t, "CONSTANT", res[0].Symbol)
	})

	t.Run("Mixed symbols resolve independently", func(t *testing.T) {
		res := r.Resolve(main, extractor.ImportStatement{
			Module:  "pkg",
			Symbols: []string{"util", "models", "VERSION"},
		})
		require.Len(t, res, 3)
		assert.Equal(t, "pkg.util", res[0].Target)
		assert.Equal(t, "pkg.models", res[1].Target)
		assert.Equal(t, "pkg", res[2].Target)
	})

	t.Run("Wildcard binds the module", func(t *testing.T) {
		res := r.Resolve(main, extractor.ImportStatement{Module: "pkg", Wildcard: true})
		require.Len(t, res, 1)
		assert.Equal(t, "pkg", res[0].Target)
		assert.Equal(t, "*", res[0].Symbol)
	})
}

func TestResolver_Relative(t *testing.T) {
	r := testResolver()

	t.Run("Single dot from a plain module", func(t *testing.T) {
		util := &graph.Module{Path: "pkg.util"}
		res := r.Resolve(util, extractor.ImportStatement{Dots: 1, Symbols: []string{"models"}})
		require.Len(t, res, 1)
		assert.Equal(t, "pkg.models", res[0].Target)
	})

	t.Run("Single dot from a package initializer", func(t *testing.T) {
		pkg := &graph.Module{Path: "pkg", IsPackage: true}
		res := r.Resolve(pkg, extractor.ImportStatement{Dots: 1, Symbols: []string{"util"}})
		require.Len(t, res, 1)
		assert.Equal(t, "pkg.util", res[0].Target, "dots anchor at the package itself for __init__.py")
	})

	t.Run("Double dot climbs one package", func(t *testing.T) {
		deep := &graph.Module{Path: "pkg.sub.deep"}
		res := r.Resolve(deep, extractor.ImportStatement{Module: "util", Dots: 2, Symbols: []string{"thing"}})
		require.Len(t, res, 1)
		assert.Equal(t, "pkg.util", res[0].Target)
		assert.Equal(t, "thing", res[0].Symbol)
	})

	t.Run("Climbing past the root is external", func(t *testing.T) {
		shared := &graph.Module{Path: "shared"}
		res := r.Resolve(shared, extractor.ImportStatement{Module: "other", Dots: 2, Symbols: []string{"x"}})
		require.Len(t, res, 1)
		assert.False(t, res[0].Local)
	})

	t.Run("Unknown relative target is external", func(t *testing.T) {
		util := &graph.Module{Path: "pkg.util"}
		res := r.Resolve(util, extractor.ImportStatement{Module: "ghost", Dots: 1, Symbols: []string{"x"}})
		require.Len(t, res, 1)
		assert.False(t, res[0].Local)
	})

	t.Run("Self resolution is still reported", func(t *testing.T) {
		util := &graph.Module{Path: "pkg.util"}
		res := r.Resolve(util, extractor.ImportStatement{Dots: 1, Symbols: []string{"util"}})
		require.Len(t, res, 1)
		assert.True(t, res[0].Local)
		assert.Equal(t, "pkg.util", res[0].Target, "the builder decides what to do with self-loops")
	})

	t.Run("Relative wildcard", func(t *testing.T) {
		util := &graph.Module{Path: "pkg.util"}
		res := r.Resolve(util, extractor.ImportStatement{Module: "models", Dots: 1, Wildcard: true})
		require.Len(t, res, 1)
		assert.Equal(t, "pkg.models", res[0].Target)
		assert.Equal(t, "*", res[0].Symbol)
	})
}

func TestResolver_Determinism(t *testing.T) {
	r := testResolver()
	main := &graph.Module{Path: "main"}
	stmt := extractor.ImportStatement{Module: "pkg", Symbols: []string{"util", "models"}}

	first := r.Resolve(main, stmt)
	second := r.Resolve(main, stmt)
	assert.Equal(t, first, second)
}
