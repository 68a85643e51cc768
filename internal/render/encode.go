package render

import (
	"io"

	"github.com/rocketscienceinc/catanview/internal/entity"
)

// WriteSVG - renders snapshot as a standalone SVG document.
func (that *Renderer) WriteSVG(w io.Writer, snapshot *entity.Snapshot) {
	surface := NewSVGSurface(w, round(that.opts.CanvasWidth), round(that.opts.CanvasHeight))
	that.Render(surface, snapshot)
	surface.Close()
}

// WritePNG - renders snapshot as a PNG image.
func (that *Renderer) WritePNG(w io.Writer, snapshot *entity.Snapshot) error {
	surface := NewPNGSurface(round(that.opts.CanvasWidth), round(that.opts.CanvasHeight))
	that.Render(surface, snapshot)

	return surface.Encode(w)
}
