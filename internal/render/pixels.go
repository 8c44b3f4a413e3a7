package render

import "image/color"

// PaletteProvider is implemented by sims whose Cells are palette indices.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// fillPaletteRGBA converts palette indices into RGBA pixels. Indices past the
// end of the palette clamp to its last entry; an empty palette clears buf to
// transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	last := len(palette) - 1
	for i, c := range cells {
		base := i * 4
		if last < 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		idx := int(c)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// grayscale is used when a sim does not provide its own palette.
func grayscale() []color.RGBA {
	p := make([]color.RGBA, 256)
	for i := range p {
		v := uint8(i)
		p[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return p
}
