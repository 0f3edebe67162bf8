package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gosieve/internal/sieve"
)

// Options controls the report document metadata.
type Options struct {
	Title   string
	Project string
	Author  string
}

// Build assembles the complete PDF report: heading, gradation table,
// the passing-curve image and the interpretation block. curvePNG is the
// chart rendered by diagram.RenderCurvePNG; pass nil to omit the chart.
// The document is returned as bytes for the caller to write or stream.
func Build(a *sieve.Analysis, curvePNG []byte, opts Options) ([]byte, error) {
	if opts.Title == "" {
		opts.Title = "Sieve Analysis Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, opts.Title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	if opts.Project != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Project: %s", opts.Project))
		pdf.Ln(5)
	}
	if opts.Author != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Author: %s", opts.Author))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Total sample weight: %.2f g", a.TotalWeight))
	pdf.Ln(10)

	writeTable(pdf, a)
	pdf.Ln(6)

	if curvePNG != nil {
		embedCurve(pdf, curvePNG)
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Interpretation")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range a.Interpretation() {
		pdf.Cell(0, 5, asciiOnly(line))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var tableHeader = []string{"Sieve Size (mm)", "Weight Retained (g)", "% Retained", "Cum. % Retained", "% Passing"}

func writeTable(pdf *gofpdf.Fpdf, a *sieve.Analysis) {
	const colWidth = 36.0
	const rowHeight = 6.0

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(225, 225, 225)
	for _, h := range tableHeader {
		pdf.CellFormat(colWidth, rowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont("Helvetica", "", 9)
	for i, r := range a.Rows {
		cells := []string{
			a.Spec.Label(i),
			fmt.Sprintf("%.2f", r.WeightRetained),
			fmt.Sprintf("%.2f", r.PercentRetained),
			fmt.Sprintf("%.2f", r.CumulativeRetained),
			fmt.Sprintf("%.2f", r.PercentPassing),
		}
		for _, c := range cells {
			pdf.CellFormat(colWidth, rowHeight, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(rowHeight)
	}
}

func embedCurve(pdf *gofpdf.Fpdf, png []byte) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("passing-curve", opts, bytes.NewReader(png))
	// 160x100 mm keeps the 8:5 aspect ratio of the rendered chart.
	pdf.ImageOptions("passing-curve", 25, pdf.GetY(), 160, 100, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + 100)
}

// asciiOnly swaps characters outside the core PDF fonts for ASCII
// equivalents.
func asciiOnly(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r == '∞':
			out = append(out, []rune("inf")...)
		case r < 128:
			out = append(out, r)
		default:
			out = append(out, '?')
		}
	}
	return string(out)
}
