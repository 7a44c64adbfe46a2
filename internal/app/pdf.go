package app

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/tripexport/internal/extract"
)

// writeSummaryPDF renders the summary statistics and budget distribution
// tables plus the visualization suggestions into a one-page A4 report.
// Core fonts only cover cp1252, so text goes through the translator.
func writeSummaryPDF(outPath string, summary, budget *extract.Table, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Trip data export summary", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Trip data export summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated "+generatedAt.Format(extract.GeneratedOnLayout), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if summary != nil {
		pdfTable(pdf, tr, "Summary statistics", summary, []float64{90, 60})
	}
	if budget != nil {
		pdfTable(pdf, tr, "Budget distribution", budget, []float64{50, 50, 30})
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Suggested visualizations", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, s := range VisualizationSuggestions {
		pdf.CellFormat(0, 6, tr("• "+s), "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func pdfTable(pdf *gofpdf.Fpdf, tr func(string) string, title string, t *extract.Table, widths []float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	width := func(i int) float64 {
		if i < len(widths) {
			return widths[i]
		}
		return 30
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range t.Columns {
		pdf.CellFormat(width(i), 7, tr(c), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range t.Rows {
		for i, cell := range row {
			pdf.CellFormat(width(i), 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}
