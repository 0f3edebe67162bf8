package diagram

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gosieve/internal/sieve"
)

// buildCurvePlot assembles the semi-log passing curve: sieve size on a
// logarithmic x-axis (pan excluded), cumulative percent passing on a
// linear y-axis from 0 to 100, with tick marks at the stack openings.
func buildCurvePlot(a *sieve.Analysis) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Particle Size Distribution Curve"
	p.X.Label.Text = "Sieve Size (mm) [Log Scale]"
	p.Y.Label.Text = "Cumulative % Passing"

	var pts plotter.XYs
	var ticks []plot.Tick
	for i, r := range a.Rows {
		if r.Size <= sieve.PanSize {
			continue
		}
		pts = append(pts, plotter.XY{X: r.Size, Y: r.PercentPassing})
		ticks = append(ticks, plot.Tick{Value: r.Size, Label: a.Spec.Label(i)})
	}

	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Min = 0
	p.Y.Max = 100

	grid := plotter.NewGrid()
	grid.Horizontal.Color = color.Gray{Y: 200}
	grid.Vertical.Color = color.Gray{Y: 200}
	p.Add(grid)

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	points.GlyphStyle.Color = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(line, points)

	return p, nil
}

// ExportCurve writes the passing curve to an image file. The format is
// chosen from the extension (png, svg or pdf); anything else falls back
// to png.
func ExportCurve(a *sieve.Analysis, filename string) error {
	p, err := buildCurvePlot(a)
	if err != nil {
		return err
	}

	width := 8 * vg.Inch
	height := 5 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// RenderCurvePNG renders the passing curve to PNG bytes for embedding
// in the PDF report.
func RenderCurvePNG(a *sieve.Analysis) ([]byte, error) {
	p, err := buildCurvePlot(a)
	if err != nil {
		return nil, err
	}

	wt, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
