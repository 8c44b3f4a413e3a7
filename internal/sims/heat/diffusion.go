package heat

import (
	"time"

	"heat-ca/internal/core"
)

// TransferCoefficient scales every pairwise transfer. It is a design
// constant; the simulation does not expose it as a parameter.
const TransferCoefficient float32 = 0.5

// Transfer computes the heat exchanged between self and other over dt. The
// first value is added to self and the second to other; they always sum to
// zero. The trailing 0.5 halves the exchange because Diffuse evaluates every
// adjacency from both endpoints.
func Transfer(self, other core.Cell, dt time.Duration, coeff float32) (float32, float32) {
	avgConductivity := (self.Conductivity + other.Conductivity) / 2
	tempDiff := other.Temperature - self.Temperature
	delta := avgConductivity * tempDiff * float32(dt.Seconds()) * coeff * 0.5
	return delta, -delta
}

// Diffuser runs the gather/apply update and keeps its scratch buffers
// between ticks. The accumulator is zeroed at the start of every Step.
type Diffuser struct {
	coeff float32
	acc   []float32
	nbuf  []core.Point
}

// NewDiffuser returns a Diffuser using TransferCoefficient.
func NewDiffuser() *Diffuser {
	return &Diffuser{coeff: TransferCoefficient, nbuf: make([]core.Point, 0, 4)}
}

// Diffuse runs one tick on g with a fresh accumulator and an explicit
// coefficient.
func Diffuse(g *core.Grid, dt time.Duration, coeff float32) {
	d := &Diffuser{coeff: coeff, nbuf: make([]core.Point, 0, 4)}
	d.Step(g, dt)
}

// Step advances g by one fired tick of length dt.
//
// Gather reads only pre-tick temperatures: every cell takes the self role
// once per neighbor, so each undirected adjacency is evaluated twice. Apply
// then commits the summed deltas in a single sweep.
func (d *Diffuser) Step(g *core.Grid, dt time.Duration) {
	cells := g.Cells()
	n := len(cells)
	if cap(d.acc) < n {
		d.acc = make([]float32, n)
	}
	acc := d.acc[:n]
	for i := range acc {
		acc[i] = 0
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			self := cells[i]
			d.nbuf = g.Neighbors(x, y, d.nbuf[:0])
			for _, p := range d.nbuf {
				j := g.Index(p.X, p.Y)
				ds, dn := Transfer(self, cells[j], dt, d.coeff)
				acc[i] += ds
				acc[j] += dn
			}
		}
	}

	for i, delta := range acc {
		if delta != 0 {
			cells[i].Temperature += delta
		}
	}
}
