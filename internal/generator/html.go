package generator

import (
	"errors"
	"fmt"
	"html"
	"os"
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"importlens/internal/analysis"
	"importlens/internal/graph"
)

// ErrRender marks a visualization that could not be written. This is a final
// output failure; callers abort the run.
var ErrRender = errors.New("render failed")

const (
	graphChartHeight = "720px"
	barChartHeight   = "420px"
	baseSymbolSize   = 10
	symbolSizeStep   = 4
	maxSymbolSize    = 50
	topImportedCount = 10
)

// WriteHTML renders the annotated import graph as a self-contained
// interactive page: a force-layout graph with per-module tooltips plus a bar
// chart of the most imported modules.
func WriteHTML(g *graph.Graph, report *analysis.Report, path string) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		buildGraphChart(g),
		buildTopImportedChart(report, topImported(g)),
	)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

func buildGraphChart(g *graph.Graph) *charts.Graph {
	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     "100%",
			Height:    graphChartHeight,
			PageTitle: "Import Graph",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Module Import Graph",
			Subtitle: fmt.Sprintf("%d modules, %d import relationships", g.NodeCount(), g.EdgeCount()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Left: "right", Orient: "vertical"}),
	)

	inDegree := inDegrees(g)
	categories, categoryOf := buildCategories(g)

	nodes := make([]opts.GraphNode, 0, g.NodeCount())
	for _, m := range g.Modules() {
		size := baseSymbolSize + symbolSizeStep*inDegree[m.Path]
		if size > maxSymbolSize {
			size = maxSymbolSize
		}
		nodes = append(nodes, opts.GraphNode{
			Name:       m.Path,
			Value:      float32(inDegree[m.Path]),
			Category:   categoryOf[m.Path],
			SymbolSize: size,
			Tooltip:    &opts.Tooltip{Formatter: types.FuncStr(nodeTooltip(m))},
		})
	}

	links := make([]opts.GraphLink, 0, g.EdgeCount())
	for _, e := range g.Edges {
		links = append(links, opts.GraphLink{Source: e.From, Target: e.To})
	}

	chart.AddSeries("imports", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:             "force",
			Force:              &opts.GraphForce{Repulsion: 400, EdgeLength: 80, Gravity: 0.1},
			Roam:               opts.Bool(true),
			Draggable:          opts.Bool(true),
			FocusNodeAdjacency: opts.Bool(true),
			Categories:         categories,
			EdgeSymbol:         []string{"none", "arrow"},
			EdgeSymbolSize:     7,
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
	)

	return chart
}

func buildTopImportedChart(report *analysis.Report, top []analysis.Degree) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: barChartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Most Imported Modules",
			Subtitle: fmt.Sprintf("%d isolated, %d cycles", len(report.Isolated), len(report.Cycles)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 30}}),
	)

	names := make([]string, 0, len(top))
	values := make([]opts.BarData, 0, len(top))
	for _, d := range top {
		names = append(names, d.Path)
		values = append(values, opts.BarData{Value: d.Count})
	}

	bar.SetXAxis(names)
	bar.AddSeries("imported by", values)
	return bar
}

// nodeTooltip builds the hover card: path, file, description and the escaped
// snippet head.
func nodeTooltip(m *graph.Module) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b><br/><i>%s</i>", html.EscapeString(m.Path), html.EscapeString(m.File))
	if m.Description != "" {
		fmt.Fprintf(&sb, "<br/><br/>%s", html.EscapeString(m.Description))
	}
	if m.Snippet != "" {
		snippet := strings.ReplaceAll(html.EscapeString(m.Snippet), "\n", "<br/>")
		fmt.Fprintf(&sb, "<br/><br/><code style=\"font-size:11px\">%s</code>", snippet)
	}
	return sb.String()
}

// buildCategories groups nodes by top-level package so the force layout
// colors related modules together.
func buildCategories(g *graph.Graph) ([]*opts.GraphCategory, map[string]int) {
	indexOf := make(map[string]int)
	var categories []*opts.GraphCategory
	categoryOf := make(map[string]int, g.NodeCount())

	for _, m := range g.Modules() {
		top := m.Path
		if i := strings.Index(top, "."); i >= 0 {
			top = top[:i]
		}
		idx, ok := indexOf[top]
		if !ok {
			idx = len(categories)
			indexOf[top] = idx
			categories = append(categories, &opts.GraphCategory{Name: top})
		}
		categoryOf[m.Path] = idx
	}

	return categories, categoryOf
}

func inDegrees(g *graph.Graph) map[string]int {
	in := make(map[string]int, g.NodeCount())
	for _, e := range g.Edges {
		in[e.To]++
	}
	return in
}

// topImported lists up to topImportedCount modules by in-degree, descending,
// ties broken lexically.
func topImported(g *graph.Graph) []analysis.Degree {
	in := inDegrees(g)

	top := make([]analysis.Degree, 0, g.NodeCount())
	for _, m := range g.Modules() {
		top = append(top, analysis.Degree{Path: m.Path, Count: in[m.Path]})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Path < top[j].Path
	})

	if len(top) > topImportedCount {
		top = top[:topImportedCount]
	}
	return top
}
