package render

import (
	"image"

	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/qleary/planeclip"
)

// Rasterize fills set into an alpha mask of the given pixel size. The
// window from min to max in polygon coordinates is mapped onto the full
// image with +y pointing up. Coverage accumulates signed per contour,
// so holes wound opposite to their outer boundary come out empty.
func Rasterize(set planeclip.PolygonSet, min, max r2.Vec, width, height int) *image.Alpha {
	ras := vector.NewRasterizer(width, height)
	sx := float64(width) / (max.X - min.X)
	sy := float64(height) / (max.Y - min.Y)
	for _, poly := range set {
		if len(poly) < 3 {
			continue
		}
		for i, v := range poly {
			x := float32((v.X - min.X) * sx)
			y := float32((max.Y - v.Y) * sy)
			if i == 0 {
				ras.MoveTo(x, y)
				continue
			}
			ras.LineTo(x, y)
		}
		ras.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Coverage estimates the area of set from a rasterized mask, returned
// in the polygons' own units. It is a cross-check for analytically
// computed areas, accurate to roughly one pixel row of the window.
func Coverage(set planeclip.PolygonSet, min, max r2.Vec, width, height int) float64 {
	mask := Rasterize(set, min, max, width, height)
	var sum float64
	for _, a := range mask.Pix {
		sum += float64(a)
	}
	sum /= 255
	cell := (max.X - min.X) / float64(width) * ((max.Y - min.Y) / float64(height))
	return sum * cell
}
