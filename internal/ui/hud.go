//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"heat-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls     []controlState
	setter       core.FloatParameterSetter
	panelOffsetX int
}

type controlState struct {
	control   core.ParameterControl
	value     float64
	hasValue  bool
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

const (
	panelPadding = 12
	lineHeight   = 16
	controlRow   = 30
	buttonSize   = 22
	buttonGap    = 6
)

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range provider.ParameterControls() {
			top := panelPadding + 24 + i*controlRow
			y := top + (controlRow-buttonSize)/2
			plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, controlState{control: ctrl, top: top, minusRect: minus, plusRect: plus})
		}
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the cached snapshot and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	for i := range h.controls {
		st := &h.controls[i]
		st.hasValue = false
		if p, ok := h.snapshot.Lookup(st.control.Key); ok {
			if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
				st.value, st.hasValue = v, true
			}
		}
	}
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		st := &h.controls[i]
		if !st.hasValue {
			continue
		}
		switch {
		case pt.In(st.minusRect):
			h.adjust(st, -1)
		case pt.In(st.plusRect):
			h.adjust(st, 1)
		}
	}
}

func (h *HUD) adjust(st *controlState, direction float64) {
	target := st.control.Clamp(st.value + direction*st.control.Step)
	if math.Abs(target-st.value) < 1e-9 {
		return
	}
	if h.setter.SetFloatParameter(st.control.Key, target) {
		st.value = target
	}
}

// Draw paints the HUD panel at offsetX, scaled to the simulation height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, fmt.Sprintf("%s controls", h.sim.Name()), face, panelPadding, panelPadding+12, titleColor)
	for _, st := range h.controls {
		y := st.top + controlRow/2 + 4
		text.Draw(h.panel, st.control.Label, face, panelPadding, y, textColor)
		value := "--"
		if st.hasValue {
			value = strconv.FormatFloat(st.value, 'f', -1, 64)
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, st.minusRect.Min.X-buttonGap-w, y, textColor)
		h.drawButton(st.minusRect, "-")
		h.drawButton(st.plusRect, "+")
	}

	y := panelPadding + 24 + len(h.controls)*controlRow + lineHeight
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, titleColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, fmt.Sprintf("%s: %s", p.Label, p.Value), face, panelPadding+8, y, dimColor)
			y += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.Scale(54.0/255, 56.0/255, 64.0/255, 1)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, textColor)
}
