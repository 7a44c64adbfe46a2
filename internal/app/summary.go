package app

import (
	"fmt"
	"io"
	"strings"
)

// VisualizationSuggestions is printed at the end of every run and repeated
// in the PDF summary.
var VisualizationSuggestions = []string{
	"Places map with attractions count",
	"Travel cost comparison by mode (Bar/Line chart)",
	"Budget distribution (Pie chart)",
	"Source city connectivity (Network graph)",
	"Price distribution (Histogram)",
	"Travel duration vs cost scatter plot",
}

var rule = strings.Repeat("=", 60)

func writeBanner(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "🚀 TripSync Tableau Data Export Tool")
	fmt.Fprintln(w, rule)
}

// writeRunSummary prints the closing block: how many files were written,
// where, and what to build from them.
func writeRunSummary(w io.Writer, files int, outputDir string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "✅ Successfully generated %d CSV files!\n", files)
	fmt.Fprintf(w, "📁 Output directory: %s\n", outputDir)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "\n📈 Tableau Visualization Suggestions:")
	for _, s := range VisualizationSuggestions {
		fmt.Fprintf(w, "   • %s\n", s)
	}
	fmt.Fprintln(w, rule)
}
