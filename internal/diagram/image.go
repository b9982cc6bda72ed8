package diagram

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gorcc/internal/column"
)

// ExportDiagram exports the two-axis interaction diagram to an image file.
// The format follows the file extension (png, svg or pdf; png by default).
// Demand points are plotted when pu, mux or muy is nonzero.
func ExportDiagram(d *column.InteractionDiagram, pu, mux, muy float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Column Interaction Diagram"
	p.X.Label.Text = "φMn (kN-m)"
	p.Y.Label.Text = "φPn (kN)"
	p.Legend.Top = true

	colors := map[column.Axis]color.RGBA{
		column.Major: {R: 0, G: 0, B: 205, A: 255},
		column.Minor: {R: 178, G: 34, B: 34, A: 255},
	}

	for _, axis := range []column.Axis{column.Major, column.Minor} {
		points := d.Points(axis)
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i] = plotter.XY{X: pt.PhiMn, Y: pt.PhiPn}
		}

		line, scatter, err := plotter.NewLinePoints(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = colors[axis]
		scatter.GlyphStyle.Color = colors[axis]
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, scatter)
		p.Legend.Add("bending "+axis.String(), line, scatter)
	}

	if pu != 0 || mux != 0 || muy != 0 {
		demand, err := plotter.NewScatter(plotter.XYs{
			{X: math.Abs(mux), Y: pu},
			{X: math.Abs(muy), Y: pu},
		})
		if err != nil {
			return err
		}
		demand.GlyphStyle.Color = color.RGBA{R: 255, G: 140, B: 0, A: 255}
		demand.GlyphStyle.Radius = vg.Points(4)
		demand.GlyphStyle.Shape = draw.PyramidGlyph{}
		p.Add(demand)
		p.Legend.Add("demand (Pu, Mu)", demand)
	}

	// Zero-axial reference line.
	maxMn := 0.0
	for _, axis := range []column.Axis{column.Major, column.Minor} {
		for _, pt := range d.Points(axis) {
			maxMn = math.Max(maxMn, pt.PhiMn)
		}
	}
	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: maxMn, Y: 0}})
	if err != nil {
		return err
	}
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
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
