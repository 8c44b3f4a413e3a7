//go:build ebiten

package render

import (
	"image/color"

	"heat-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads palette-indexed cells into a single image.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for sim, using its palette when it has one.
func NewGridPainter(sim core.Sim) *GridPainter {
	size := sim.Size()
	gp := &GridPainter{w: size.W, h: size.H, buf: make([]byte, 4*size.Area())}
	gp.img = ebiten.NewImage(size.W, size.H)
	if p, ok := sim.(PaletteProvider); ok {
		gp.palette = p.Palette()
	} else {
		gp.palette = grayscale()
	}
	return gp
}

// Blit uploads the provided cells into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
