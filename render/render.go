// Package render draws planeclip polygon sets for debugging and writes
// rasterized coverage masks used to cross-check boolean results.
package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/qleary/planeclip"
)

// palette cycles per polygon set. Fills are translucent so overlapping
// stages stay readable.
var palette = []color.Color{
	color.NRGBA{R: 0x46, G: 0x89, B: 0x66, A: 0x80},
	color.NRGBA{R: 0xb0, G: 0x3a, B: 0x2c, A: 0x80},
	color.NRGBA{R: 0x2c, G: 0x52, B: 0xb0, A: 0x80},
	color.NRGBA{R: 0xb0, G: 0x8f, B: 0x2c, A: 0x80},
}

// SavePlot writes a 2D plot of the given polygon sets to filename. The
// image format is deduced from the file extension (.png, .svg, .pdf).
// Each set is drawn in its own color, in argument order, so pipeline
// stages can be overlaid in a single call.
func SavePlot(filename string, sets ...planeclip.PolygonSet) error {
	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	for i, set := range sets {
		for _, poly := range set {
			if len(poly) < 3 {
				continue
			}
			xys := make(plotter.XYs, len(poly))
			for j, v := range poly {
				xys[j].X = v.X
				xys[j].Y = v.Y
			}
			pg, err := plotter.NewPolygon(xys)
			if err != nil {
				return err
			}
			pg.Color = palette[i%len(palette)]
			p.Add(pg)
		}
	}
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, filename)
}
