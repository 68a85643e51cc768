package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/rocketscienceinc/catanview/internal/board"
)

// SVGSurface - writes drawing operations as SVG elements. Coordinates are
// rounded to whole units.
type SVGSurface struct {
	canvas *svg.SVG
}

func NewSVGSurface(w io.Writer, width, height int) *SVGSurface {
	canvas := svg.New(w)
	canvas.Start(width, height)

	return &SVGSurface{canvas: canvas}
}

// Close - terminates the document; nothing may be drawn afterwards.
func (that *SVGSurface) Close() {
	that.canvas.End()
}

func (that *SVGSurface) Fill(width, height float64, color string) {
	that.canvas.Rect(0, 0, round(width), round(height), "fill:"+color)
}

func (that *SVGSurface) Polygon(points []board.Point, fill, stroke string, lineWidth float64) {
	xs := make([]int, 0, len(points))
	ys := make([]int, 0, len(points))

	for _, p := range points {
		xs = append(xs, round(p.X))
		ys = append(ys, round(p.Y))
	}

	that.canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g;stroke-linejoin:round", fill, stroke, lineWidth))
}

func (that *SVGSurface) Disc(center board.Point, radius float64, color string) {
	that.canvas.Circle(round(center.X), round(center.Y), round(radius), "fill:"+color)
}

func (that *SVGSurface) Line(from, to board.Point, color string, lineWidth float64) {
	that.canvas.Line(
		round(from.X), round(from.Y), round(to.X), round(to.Y),
		fmt.Sprintf("stroke:%s;stroke-width:%g;stroke-linecap:round", color, lineWidth),
	)
}

func (that *SVGSurface) Text(at board.Point, text, color string, size float64) {
	that.canvas.Text(
		round(at.X), round(at.Y), text,
		fmt.Sprintf("fill:%s;font-size:%gpx;font-family:serif;text-anchor:middle;dominant-baseline:central", color, size),
	)
}

func round(v float64) int {
	return int(math.Round(v))
}
