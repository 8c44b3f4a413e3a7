package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 255}, {R: 9, G: 8, B: 7, A: 255}}
	cells := []uint8{0, 1, 5}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	want := []byte{1, 2, 3, 255, 9, 8, 7, 255, 9, 8, 7, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf=%v, expected %v", buf, want)
		}
	}
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := []byte{5, 5, 5, 5}
	fillPaletteRGBA(buf, []uint8{3}, nil)
	for _, b := range buf {
		if b != 0 {
			t.Fatalf("buf=%v, expected zeros", buf)
		}
	}
}

func TestGrayscale(t *testing.T) {
	p := grayscale()
	if len(p) != 256 || p[0] != (color.RGBA{A: 255}) || p[255] != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatal("unexpected grayscale ramp")
	}
}
