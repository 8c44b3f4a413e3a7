package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyGrid is returned when a grid is requested with zero or negative area.
	ErrEmptyGrid = errors.New("grid must have positive width and height")
	// ErrNonFiniteCell is returned by Validate when a cell holds NaN or Inf.
	ErrNonFiniteCell = errors.New("cell holds a non-finite value")
	// ErrGridTooLarge is returned when width*height overflows or exceeds MaxCells.
	ErrGridTooLarge = errors.New("grid area too large")
)

// Cell is the unit of heat storage. Cells carry no identity beyond their
// grid coordinate.
type Cell struct {
	Temperature  float32
	Conductivity float32
}

// DefaultCell returns a cell at 0 degrees with unit conductivity.
func DefaultCell() Cell {
	return Cell{Temperature: 0, Conductivity: 1}
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Grid stores a dense 2D array of heat cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates a grid filled with DefaultCell values.
func NewGrid(w, h int) (*Grid, error) {
	if err := (Size{W: w, H: h}).Check(); err != nil {
		return nil, fmt.Errorf("new grid: %w", err)
	}
	g := &Grid{W: w, H: h, data: make([]Cell, w*h)}
	g.Fill(DefaultCell())
	return g, nil
}

// MustNewGrid is like NewGrid but panics on malformed dimensions.
func MustNewGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Cells exposes the backing slice so world generation can populate values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Coord is the inverse of Index.
func (g *Grid) Coord(i int) (int, int) { return i % g.W, i / g.W }

// InBounds reports whether (x, y) has a backing cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H && g.Index(x, y) < len(g.data)
}

// Cell returns the cell at (x, y). ok is false when no cell backs the coordinate.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.data[g.Index(x, y)], true
}

// At returns a pointer to the cell at (x, y), or nil when out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.data[g.Index(x, y)]
}

// Temperature reads the temperature at (x, y). Out-of-bounds reads return 0.
func (g *Grid) Temperature(x, y int) float32 {
	c, _ := g.Cell(x, y)
	return c.Temperature
}

// Fill overwrites every cell with c.
func (g *Grid) Fill(c Cell) {
	for i := range g.data {
		g.data[i] = c
	}
}

// Neighbors appends the in-bounds axis-aligned neighbors of (x, y) to buf in
// west, east, north, south order. Corners yield 2, edges 3, interior cells 4.
// A coordinate without a backing cell yields nothing.
func (g *Grid) Neighbors(x, y int, buf []Point) []Point {
	if !g.InBounds(x, y) {
		return buf
	}
	if g.InBounds(x-1, y) {
		buf = append(buf, Point{X: x - 1, Y: y})
	}
	if g.InBounds(x+1, y) {
		buf = append(buf, Point{X: x + 1, Y: y})
	}
	if g.InBounds(x, y-1) {
		buf = append(buf, Point{X: x, Y: y - 1})
	}
	if g.InBounds(x, y+1) {
		buf = append(buf, Point{X: x, Y: y + 1})
	}
	return buf
}

// Validate reports the first cell holding a NaN or infinite value. It is
// meant for construction time; the diffusion loop never checks.
func (g *Grid) Validate() error {
	for i, c := range g.data {
		if !finite(c.Temperature) || !finite(c.Conductivity) {
			x, y := g.Coord(i)
			return fmt.Errorf("cell (%d,%d) = %+v: %w", x, y, c, ErrNonFiniteCell)
		}
	}
	return nil
}

// Temperatures copies the temperature field into dst, growing it if needed.
func (g *Grid) Temperatures(dst []float32) []float32 {
	if cap(dst) < len(g.data) {
		dst = make([]float32, len(g.data))
	}
	dst = dst[:len(g.data)]
	for i, c := range g.data {
		dst[i] = c.Temperature
	}
	return dst
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
