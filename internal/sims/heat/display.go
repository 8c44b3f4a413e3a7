package heat

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
)

const paletteSize = 256

var heatPalette = buildHeatPalette()

// Palette exposes the blue-to-red ramp used for rendering temperatures.
func (s *Sim) Palette() []color.RGBA {
	return heatPalette
}

// Hue runs from 240 (cold, blue) down to 0 (hot, red).
func buildHeatPalette() []color.RGBA {
	palette := make([]color.RGBA, paletteSize)
	for i := range palette {
		frac := float64(i) / float64(paletteSize-1)
		hue := 240 * (1 - frac)
		r, g, b, err := colorconv.HSVToRGB(hue, 1, 1)
		if err != nil {
			palette[i] = color.RGBA{A: 255}
			continue
		}
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

// paletteIndex maps t into the palette over [lo, hi]. NaN maps to the cold end.
func paletteIndex(t, lo, hi float32) uint8 {
	if hi <= lo || math.IsNaN(float64(t)) {
		return 0
	}
	frac := (t - lo) / (hi - lo)
	if frac <= 0 {
		return 0
	}
	if frac >= 1 {
		return paletteSize - 1
	}
	return uint8(frac * (paletteSize - 1))
}

func (s *Sim) rebuildDisplay() {
	cells := s.ActiveLayer().Grid.Cells()
	lo, hi := s.cfg.Params.DisplayMin, s.cfg.Params.DisplayMax
	for i := range s.display {
		if i >= len(cells) {
			s.display[i] = 0
			continue
		}
		s.display[i] = paletteIndex(cells[i].Temperature, lo, hi)
	}
}
