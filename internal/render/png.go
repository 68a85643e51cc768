package render

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rocketscienceinc/catanview/internal/board"
)

var numberFont = mustParseFont(goregular.TTF)

// PNGSurface - rasterizes drawing operations; call Encode once drawing is done.
type PNGSurface struct {
	dc *gg.Context
}

func NewPNGSurface(width, height int) *PNGSurface {
	return &PNGSurface{dc: gg.NewContext(width, height)}
}

func (that *PNGSurface) Encode(w io.Writer) error {
	if err := that.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	return nil
}

func (that *PNGSurface) Fill(width, height float64, color string) {
	that.dc.SetHexColor(color)
	that.dc.DrawRectangle(0, 0, width, height)
	that.dc.Fill()
}

func (that *PNGSurface) Polygon(points []board.Point, fill, stroke string, lineWidth float64) {
	if len(points) == 0 {
		return
	}

	that.dc.NewSubPath()
	that.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		that.dc.LineTo(p.X, p.Y)
	}
	that.dc.ClosePath()

	that.dc.SetHexColor(fill)
	that.dc.FillPreserve()
	that.dc.SetHexColor(stroke)
	that.dc.SetLineWidth(lineWidth)
	that.dc.Stroke()
}

func (that *PNGSurface) Disc(center board.Point, radius float64, color string) {
	that.dc.SetHexColor(color)
	that.dc.DrawCircle(center.X, center.Y, radius)
	that.dc.Fill()
}

func (that *PNGSurface) Line(from, to board.Point, color string, lineWidth float64) {
	that.dc.SetHexColor(color)
	that.dc.SetLineWidth(lineWidth)
	that.dc.SetLineCapRound()
	that.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	that.dc.Stroke()
}

func (that *PNGSurface) Text(at board.Point, text, color string, size float64) {
	that.dc.SetFontFace(truetype.NewFace(numberFont, &truetype.Options{Size: size}))
	that.dc.SetHexColor(color)
	that.dc.DrawStringAnchored(text, at.X, at.Y, 0.5, 0.5)
}

func mustParseFont(ttf []byte) *truetype.Font {
	font, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("unable to parse font: %w", err))
	}

	return font
}
