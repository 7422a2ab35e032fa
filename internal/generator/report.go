package generator

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"importlens/internal/analysis"
)

// WriteReport prints the analysis summary in terminal form: a metrics table
// followed by cycle and isolated-module listings.
func WriteReport(w io.Writer, report *analysis.Report) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRow(table.Row{"Modules", humanize.Comma(int64(report.TotalModules))})
	tbl.AppendRow(table.Row{"Import relationships", humanize.Comma(int64(report.TotalImports))})
	tbl.AppendRow(table.Row{"Most imported", degreeCell(report.MostImported, "imported by %d")})
	tbl.AppendRow(table.Row{"Most dependencies", degreeCell(report.MostDependent, "imports %d")})
	tbl.AppendRow(table.Row{"Isolated modules", humanize.Comma(int64(len(report.Isolated)))})
	tbl.AppendRow(table.Row{"Circular dependencies", humanize.Comma(int64(len(report.Cycles)))})
	tbl.Render()

	if report.Acyclic() {
		color.New(color.FgGreen).Fprintln(w, "✅ No circular dependencies.")
	} else {
		color.New(color.FgYellow).Fprintf(w, "⚠️  %d circular dependencies:\n", len(report.Cycles))
		for _, cycle := range report.Cycles {
			fmt.Fprintf(w, "   %s -> %s\n", strings.Join(cycle, " -> "), cycle[0])
		}
	}

	if len(report.Isolated) > 0 {
		fmt.Fprintf(w, "Isolated modules: %s\n", strings.Join(report.Isolated, ", "))
	}
}

func degreeCell(d *analysis.Degree, format string) string {
	if d == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", d.Path, fmt.Sprintf(format, d.Count))
}
