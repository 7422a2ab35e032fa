package graph

import (
	"encoding/json"
	"io"
)

type moduleJSON struct {
	Path        string   `json:"path"`
	File        string   `json:"file"`
	IsPackage   bool     `json:"is_package,omitempty"`
	Snippet     string   `json:"snippet,omitempty"`
	Hash        string   `json:"hash,omitempty"`
	Imports     []string `json:"imports"`
	Description string   `json:"description,omitempty"`
	ParseFailed bool     `json:"parse_failed,omitempty"`
}

type edgeJSON struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Symbols []string `json:"symbols,omitempty"`
}

type graphJSON struct {
	Modules []moduleJSON `json:"modules"`
	Edges   []edgeJSON   `json:"edges"`
}

// MarshalJSON emits modules in discovery order with their resolved imports,
// followed by the edge list. Two builds of the same tree produce identical
// bytes.
func (g *Graph) MarshalJSON() ([]byte, error) {
	out := graphJSON{
		Modules: make([]moduleJSON, 0, g.NodeCount()),
		Edges:   make([]edgeJSON, 0, len(g.Edges)),
	}

	for _, m := range g.Modules() {
		imports := make([]string, 0, 4)
		for _, dep := range g.Dependencies(m.Path) {
			imports = append(imports, dep.Path)
		}
		out.Modules = append(out.Modules, moduleJSON{
			Path:        m.Path,
			File:        m.File,
			IsPackage:   m.IsPackage,
			Snippet:     m.Snippet,
			Hash:        m.Hash,
			Imports:     imports,
			Description: m.Description,
			ParseFailed: m.ParseFailed,
		})
	}

	for _, e := range g.Edges {
		out.Edges = append(out.Edges, edgeJSON{From: e.From, To: e.To, Symbols: e.Symbols})
	}

	return json.Marshal(out)
}

// WriteJSON writes the indented JSON form of the graph.
func (g *Graph) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(g)
}
