package render

import "github.com/rocketscienceinc/catanview/internal/board"

// Surface - a 2D drawing target. Colors are CSS hex strings.
type Surface interface {
	Fill(width, height float64, color string)
	Polygon(points []board.Point, fill, stroke string, lineWidth float64)
	Disc(center board.Point, radius float64, color string)
	Line(from, to board.Point, color string, lineWidth float64)
	Text(at board.Point, text, color string, size float64)
}
