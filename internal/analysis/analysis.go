package analysis

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"

	"importlens/internal/graph"
)

// Degree names a module together with its in- or out-degree.
type Degree struct {
	Path  string
	Count int
}

// Report summarizes the structure of an import graph.
type Report struct {
	TotalModules int
	TotalImports int

	// MostImported is the module with the highest in-degree, ties broken by
	// lexically smallest path. Nil for an empty graph.
	MostImported *Degree

	// MostDependent is the module with the highest out-degree, same
	// tie-break.
	MostDependent *Degree

	// Isolated lists modules nothing imports and that import nothing,
	// sorted lexically.
	Isolated []string

	// Cycles holds every simple import cycle. Each cycle starts at its
	// lexically smallest member and the list itself is sorted, so the
	// output does not depend on traversal order.
	Cycles [][]string
}

// Acyclic reports whether the graph had no import cycles.
func (r *Report) Acyclic() bool {
	return len(r.Cycles) == 0
}

// Analyzer computes graph metrics over the gonum view of an import graph.
type Analyzer struct {
	g *graph.Graph
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(g *graph.Graph) *Analyzer {
	return &Analyzer{g: g}
}

// Analyze walks the graph once and fills a Report. It never mutates the
// graph, and identical graphs produce identical reports.
func (a *Analyzer) Analyze() *Report {
	report := &Report{
		TotalModules: a.g.NodeCount(),
		TotalImports: a.g.EdgeCount(),
	}

	d := graph.NewDirected(a.g)

	for _, m := range a.g.Modules() {
		id, ok := d.ID(m.Path)
		if !ok {
			continue
		}
		in := d.G.To(id).Len()
		out := d.G.From(id).Len()

		report.MostImported = better(report.MostImported, m.Path, in)
		report.MostDependent = better(report.MostDependent, m.Path, out)

		if in == 0 && out == 0 {
			report.Isolated = append(report.Isolated, m.Path)
		}
	}
	sort.Strings(report.Isolated)

	report.Cycles = collectCycles(d)

	return report
}

// better keeps the candidate with the higher count, or the lexically
// smaller path on a tie.
func better(current *Degree, path string, count int) *Degree {
	if current == nil || count > current.Count || (count == current.Count && path < current.Path) {
		return &Degree{Path: path, Count: count}
	}
	return current
}

// collectCycles lists all simple cycles via Johnson's algorithm and
// normalizes them: the closing duplicate node is dropped, each cycle is
// rotated to start at its lexically smallest member, and the cycle list is
// sorted.
func collectCycles(d *graph.Directed) [][]string {
	var cycles [][]string

	for _, cyc := range topo.DirectedCyclesIn(d.G) {
		if len(cyc) > 1 {
			cyc = cyc[:len(cyc)-1]
		}
		if len(cyc) < 2 {
			continue
		}
		paths := make([]string, len(cyc))
		for i, n := range cyc {
			paths[i] = d.Path(n.ID())
		}
		cycles = append(cycles, rotateToSmallest(paths))
	}

	sort.Slice(cycles, func(i, j int) bool {
		return lessStrings(cycles[i], cycles[j])
	})

	return cycles
}

func rotateToSmallest(cycle []string) []string {
	smallest := 0
	for i, p := range cycle {
		if p < cycle[smallest] {
			smallest = i
		}
	}
	out := make([]string, 0, len(cycle))
	out = append(out, cycle[smallest:]...)
	out = append(out, cycle[:smallest]...)
	return out
}

func lessStrings(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
