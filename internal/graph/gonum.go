package graph

import (
	"gonum.org/v1/gonum/graph/simple"
)

// Directed is the gonum view of a Graph. Analysis algorithms run against the
// embedded simple.DirectedGraph; the maps translate gonum's int64 node IDs
// back to module paths.
type Directed struct {
	G *simple.DirectedGraph

	idOf   map[string]int64
	pathOf map[int64]string
}

// NewDirected materializes the gonum representation. Node IDs follow module
// discovery order, so the view is deterministic for a given graph.
func NewDirected(g *Graph) *Directed {
	d := &Directed{
		G:      simple.NewDirectedGraph(),
		idOf:   make(map[string]int64, g.NodeCount()),
		pathOf: make(map[int64]string, g.NodeCount()),
	}

	for i, m := range g.Modules() {
		id := int64(i)
		d.idOf[m.Path] = id
		d.pathOf[id] = m.Path
		d.G.AddNode(simple.Node(id))
	}

	for _, e := range g.Edges {
		from, okFrom := d.idOf[e.From]
		to, okTo := d.idOf[e.To]
		if !okFrom || !okTo || from == to {
			// simple directed graphs reject self-loops
			continue
		}
		d.G.SetEdge(d.G.NewEdge(simple.Node(from), simple.Node(to)))
	}

	return d
}

// Path translates a gonum node ID back to its module path.
func (d *Directed) Path(id int64) string {
	return d.pathOf[id]
}

// ID translates a module path to its gonum node ID.
func (d *Directed) ID(path string) (int64, bool) {
	id, ok := d.idOf[path]
	return id, ok
}
