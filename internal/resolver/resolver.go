package resolver

import (
	"strings"

	"importlens/internal/extractor"
	"importlens/internal/graph"
)

// Resolution is the outcome for a single imported name. Imports that match
// nothing in the project are external; they get no node and no edge.
type Resolution struct {
	Target string // local module path, empty when external
	Symbol string // imported name to attach to the edge
	Local  bool
}

// Resolver maps parsed import statements onto the set of modules that exist
// in the scanned project.
type Resolver struct {
	known map[string]bool
}

// NewResolver builds a resolver over the known module paths.
func NewResolver(paths []string) *Resolver {
	known := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p != "" {
			known[p] = true
		}
	}
	return &Resolver{known: known}
}

// Resolve maps one import statement of the importer module to local targets,
// one Resolution per imported name. The outcome is a pure function of the
// statement and the known path set; resolutions pointing back at the
// importer are reported as-is and dropped later as self-loops.
func (r *Resolver) Resolve(importer *graph.Module, stmt extractor.ImportStatement) []Resolution {
	if stmt.Dots > 0 {
		return r.resolveRelative(importer, stmt)
	}
	return r.resolveAbsolute(stmt)
}

// resolveAbsolute handles "import a.b.c" and "from a.b import c". A plain
// import binds to the deepest known prefix of its path. A from-import tries
// the submodule "a.b.c" first, because "from pkg import util" usually means
// the module pkg/util.py rather than a name inside pkg/__init__.py, then
// falls back to the module and its ancestors.
func (r *Resolver) resolveAbsolute(stmt extractor.ImportStatement) []Resolution {
	if len(stmt.Symbols) == 0 {
		symbol := stmt.Module
		if stmt.Wildcard {
			symbol = "*"
		}
		if target, ok := r.deepestMatch(stmt.Module); ok {
			return []Resolution{{Target: target, Symbol: symbol, Local: true}}
		}
		return []Resolution{{Symbol: symbol}}
	}

	out := make([]Resolution, 0, len(stmt.Symbols))
	for _, symbol := range stmt.Symbols {
		if sub := join(stmt.Module, symbol); r.known[sub] {
			out = append(out, Resolution{Target: sub, Symbol: symbol, Local: true})
			continue
		}
		if target, ok := r.deepestMatch(stmt.Module); ok {
			out = append(out, Resolution{Target: target, Symbol: symbol, Local: true})
			continue
		}
		out = append(out, Resolution{Symbol: symbol})
	}
	return out
}

// resolveRelative handles "from . import x" and "from ..pkg import y". The
// leading dots pick an anchor package relative to the importer; unlike the
// absolute form there is no ancestor fallback, since Python resolves
// relative imports strictly within the anchor.
func (r *Resolver) resolveRelative(importer *graph.Module, stmt extractor.ImportStatement) []Resolution {
	anchor, ok := relativeAnchor(importer, stmt.Dots)
	if !ok {
		// the dots climb above the project root
		return external(stmt)
	}
	target := join(anchor, stmt.Module)

	if len(stmt.Symbols) == 0 {
		symbol := stmt.Module
		if stmt.Wildcard {
			symbol = "*"
		}
		if target != "" && r.known[target] {
			return []Resolution{{Target: target, Symbol: symbol, Local: true}}
		}
		return []Resolution{{Symbol: symbol}}
	}

	out := make([]Resolution, 0, len(stmt.Symbols))
	for _, symbol := range stmt.Symbols {
		if sub := join(target, symbol); sub != "" && r.known[sub] {
			out = append(out, Resolution{Target: sub, Symbol: symbol, Local: true})
			continue
		}
		if target != "" && r.known[target] {
			out = append(out, Resolution{Target: target, Symbol: symbol, Local: true})
			continue
		}
		out = append(out, Resolution{Symbol: symbol})
	}
	return out
}

// deepestMatch returns the longest known prefix of a dotted path, so
// "import a.b.c" still links to a.b when only a/b.py exists.
func (r *Resolver) deepestMatch(module string) (string, bool) {
	for m := module; m != ""; m = parent(m) {
		if r.known[m] {
			return m, true
		}
	}
	return "", false
}

// relativeAnchor computes the package the leading dots refer to. One dot is
// the importer's own package; each extra dot climbs one level.
func relativeAnchor(importer *graph.Module, dots int) (string, bool) {
	anchor := importer.Path
	if !importer.IsPackage {
		anchor = parent(anchor)
	}
	for i := 1; i < dots; i++ {
		if anchor == "" {
			return "", false
		}
		anchor = parent(anchor)
	}
	return anchor, true
}

func external(stmt extractor.ImportStatement) []Resolution {
	if len(stmt.Symbols) == 0 {
		symbol := stmt.Module
		if stmt.Wildcard {
			symbol = "*"
		}
		return []Resolution{{Symbol: symbol}}
	}
	out := make([]Resolution, 0, len(stmt.Symbols))
	for _, symbol := range stmt.Symbols {
		out = append(out, Resolution{Symbol: symbol})
	}
	return out
}

func parent(module string) string {
	if i := strings.LastIndex(module, "."); i >= 0 {
		return module[:i]
	}
	return ""
}

func join(prefix, suffix string) string {
	switch {
	case prefix == "":
		return suffix
	case suffix == "":
		return prefix
	}
	return prefix + "." + suffix
}
