package graph

type edgeKey struct {
	from string
	to   string
}

// Graph manages modules and the import relationships between them. Modules
// keep their discovery order so every traversal and export is deterministic.
type Graph struct {
	Nodes map[string]*Module
	Edges []Edge

	order     []string
	edgeIndex map[edgeKey]int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes:     make(map[string]*Module),
		Edges:     []Edge{},
		edgeIndex: make(map[edgeKey]int),
	}
}

// AddModule adds a module as a node. Re-adding a path replaces the payload
// but keeps the original position.
func (g *Graph) AddModule(m *Module) {
	if m == nil || m.Path == "" {
		return
	}
	if _, exists := g.Nodes[m.Path]; !exists {
		g.order = append(g.order, m.Path)
	}
	g.Nodes[m.Path] = m
}

// Module returns the module registered under path.
func (g *Graph) Module(path string) (*Module, bool) {
	m, ok := g.Nodes[path]
	return m, ok
}

// HasModule reports whether path is a known module.
func (g *Graph) HasModule(path string) bool {
	_, ok := g.Nodes[path]
	return ok
}

// Modules returns all modules in discovery order.
func (g *Graph) Modules() []*Module {
	modules := make([]*Module, 0, len(g.order))
	for _, path := range g.order {
		modules = append(modules, g.Nodes[path])
	}
	return modules
}

// Paths returns all module paths in discovery order.
func (g *Graph) Paths() []string {
	paths := make([]string, len(g.order))
	copy(paths, g.order)
	return paths
}

// AddEdge records that from imports to. Self-imports and edges whose
// endpoints are not in the graph are dropped; a repeated (from, to) pair
// merges its symbols into the existing edge instead of duplicating it.
func (g *Graph) AddEdge(from, to string, symbols ...string) {
	if from == to {
		return
	}
	if !g.HasModule(from) || !g.HasModule(to) {
		return
	}

	key := edgeKey{from: from, to: to}
	if i, ok := g.edgeIndex[key]; ok {
		g.Edges[i].Symbols = mergeSymbols(g.Edges[i].Symbols, symbols)
		return
	}

	g.edgeIndex[key] = len(g.Edges)
	g.Edges = append(g.Edges, Edge{From: from, To: to, Symbols: mergeSymbols(nil, symbols)})
}

// HasEdge reports whether the ordered pair (from, to) is present.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edgeIndex[edgeKey{from: from, to: to}]
	return ok
}

// Dependencies returns the modules that path imports, in the order the
// imports resolved.
func (g *Graph) Dependencies(path string) []*Module {
	var deps []*Module
	for _, edge := range g.Edges {
		if edge.From == path {
			if m, ok := g.Nodes[edge.To]; ok {
				deps = append(deps, m)
			}
		}
	}
	return deps
}

// Dependents returns the modules that import path.
func (g *Graph) Dependents(path string) []*Module {
	var deps []*Module
	for _, edge := range g.Edges {
		if edge.To == path {
			if m, ok := g.Nodes[edge.From]; ok {
				deps = append(deps, m)
			}
		}
	}
	return deps
}

// NodeCount returns the number of modules.
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of distinct import edges.
func (g *Graph) EdgeCount() int {
	return len(g.Edges)
}

func mergeSymbols(existing, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s] = true
	}
	for _, s := range incoming {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		existing = append(existing, s)
	}
	return existing
}
