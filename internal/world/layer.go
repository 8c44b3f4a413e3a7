package world

import (
	"fmt"

	"heat-ca/internal/core"
)

// LayerType tags what a layer represents. It only groups grids; it never
// changes how a grid diffuses.
type LayerType int8

const (
	LayerBackground LayerType = -1
	LayerEmpty      LayerType = 0
	LayerGas        LayerType = 1
	LayerGasPipe    LayerType = 2
	LayerLiquid     LayerType = 3
	LayerLiquidPipe LayerType = 4
	LayerNPC        LayerType = 5
	LayerSolid      LayerType = 6
)

var layerTypeNames = map[LayerType]string{
	LayerBackground: "background",
	LayerEmpty:      "empty",
	LayerGas:        "gas",
	LayerGasPipe:    "gas-pipe",
	LayerLiquid:     "liquid",
	LayerLiquidPipe: "liquid-pipe",
	LayerNPC:        "npc",
	LayerSolid:      "solid",
}

func (t LayerType) String() string {
	if name, ok := layerTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("layer(%d)", int8(t))
}

// Layer is a named grid. Layers never exchange heat with each other.
type Layer struct {
	ID   uint32
	Name string
	Type LayerType
	Grid *core.Grid
}

// Painter populates a freshly allocated grid.
type Painter func(g *core.Grid)

// LayerBuilder collects the options for a single layer.
type LayerBuilder struct {
	name      string
	layerType LayerType
	size      core.Size
	fill      core.Cell
	hasFill   bool
	painters  []Painter
}

// NewLayerBuilder returns a builder for an empty-typed layer.
func NewLayerBuilder() *LayerBuilder {
	return &LayerBuilder{layerType: LayerEmpty}
}

// WithName sets the layer name.
func (b *LayerBuilder) WithName(name string) *LayerBuilder {
	b.name = name
	return b
}

// WithType sets the layer type.
func (b *LayerBuilder) WithType(t LayerType) *LayerBuilder {
	b.layerType = t
	return b
}

// WithSize sets the layer dimensions.
func (b *LayerBuilder) WithSize(size core.Size) *LayerBuilder {
	b.size = size
	return b
}

// WithFill sets the cell every position starts from. Defaults to core.DefaultCell.
func (b *LayerBuilder) WithFill(c core.Cell) *LayerBuilder {
	b.fill = c
	b.hasFill = true
	return b
}

// WithPainter appends a painter that runs after the fill, in registration order.
func (b *LayerBuilder) WithPainter(p Painter) *LayerBuilder {
	if p != nil {
		b.painters = append(b.painters, p)
	}
	return b
}

// Build allocates the layer grid and runs the painters.
func (b *LayerBuilder) Build(id uint32) (*Layer, error) {
	grid, err := core.NewGrid(b.size.W, b.size.H)
	if err != nil {
		return nil, fmt.Errorf("build layer %q: %w", b.name, err)
	}
	if b.hasFill {
		grid.Fill(b.fill)
	}
	for _, paint := range b.painters {
		paint(grid)
	}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("build layer %q: %w", b.name, err)
	}
	name := b.name
	if name == "" {
		name = fmt.Sprintf("%s layer", b.layerType)
	}
	return &Layer{ID: id, Name: name, Type: b.layerType, Grid: grid}, nil
}
