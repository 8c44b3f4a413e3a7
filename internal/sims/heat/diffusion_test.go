package heat

import (
	"math"
	"slices"
	"testing"
	"time"

	"heat-ca/internal/core"
	rng "heat-ca/pkg/core"
)

func TestTransferLiteralScenario(t *testing.T) {
	a := core.Cell{Temperature: 100, Conductivity: 1}
	b := core.Cell{Temperature: 0, Conductivity: 1}
	da, db := Transfer(a, b, time.Second, 1.0)
	if da != -50 || db != 50 {
		t.Fatalf("Transfer(A,B) = (%v, %v), expected (-50, 50)", da, db)
	}
}

func TestTransferAntisymmetric(t *testing.T) {
	r := rng.NewRNG(7)
	for i := 0; i < 500; i++ {
		a := core.Cell{Temperature: r.Float32Range(-500, 500), Conductivity: r.Float32Range(-1, 4)}
		b := core.Cell{Temperature: r.Float32Range(-500, 500), Conductivity: r.Float32Range(-1, 4)}
		dt := time.Duration(r.IntN(2000)) * time.Millisecond
		coeff := r.Float32Range(0, 2)
		da, db := Transfer(a, b, dt, coeff)
		if da+db != 0 {
			t.Fatalf("Transfer(%+v,%+v,%v,%v) = (%v,%v) does not sum to zero", a, b, dt, coeff, da, db)
		}
	}
}

func TestTransferFlowsHotToCold(t *testing.T) {
	hot := core.Cell{Temperature: 80, Conductivity: 1}
	cold := core.Cell{Temperature: 20, Conductivity: 1}
	dh, dc := Transfer(hot, cold, 200*time.Millisecond, TransferCoefficient)
	if dh >= 0 || dc <= 0 {
		t.Fatalf("hot gained or cold lost: (%v, %v)", dh, dc)
	}
}

func TestTransferNegativeConductivityReverses(t *testing.T) {
	hot := core.Cell{Temperature: 80, Conductivity: -1}
	cold := core.Cell{Temperature: 20, Conductivity: -1}
	dh, _ := Transfer(hot, cold, time.Second, 1)
	if dh <= 0 {
		t.Fatalf("negative conductivity should reverse flow, got %v", dh)
	}
}

func TestTransferUsesAverageConductivity(t *testing.T) {
	a := core.Cell{Temperature: 10, Conductivity: 0}
	b := core.Cell{Temperature: 0, Conductivity: 2}
	da, _ := Transfer(a, b, time.Second, 1)
	if da != -5 {
		t.Fatalf("expected -5 with average conductivity 1, got %v", da)
	}
}

func randomGrid(t *testing.T, w, h int, seed int64) *core.Grid {
	t.Helper()
	g := core.MustNewGrid(w, h)
	r := rng.NewRNG(seed)
	for i := range g.Cells() {
		g.Cells()[i] = core.Cell{
			Temperature:  r.Float32Range(-100, 200),
			Conductivity: r.Float32Range(0, 1),
		}
	}
	return g
}

func TestDiffuseZeroTimeIsIdentity(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGrid(t, 7, 5, seed)
		before := append([]core.Cell(nil), g.Cells()...)
		Diffuse(g, 0, TransferCoefficient)
		for i, c := range g.Cells() {
			if math.Float32bits(c.Temperature) != math.Float32bits(before[i].Temperature) {
				t.Fatalf("seed %d cell %d changed from %v to %v with dt=0", seed, i, before[i].Temperature, c.Temperature)
			}
		}
	}
}

func TestDiffuseZeroTimeKeepsNegativeZero(t *testing.T) {
	g := core.MustNewGrid(2, 1)
	g.Cells()[0].Temperature = float32(math.Copysign(0, -1))
	g.Cells()[1].Temperature = 3
	Diffuse(g, 0, TransferCoefficient)
	if math.Float32bits(g.Cells()[0].Temperature) != math.Float32bits(float32(math.Copysign(0, -1))) {
		t.Fatal("dt=0 tick altered the sign bit of a zero temperature")
	}
}

func TestDiffuseSingleCellUnchanged(t *testing.T) {
	g := core.MustNewGrid(1, 1)
	g.Cells()[0].Temperature = 42
	Diffuse(g, time.Second, TransferCoefficient)
	if g.Temperature(0, 0) != 42 {
		t.Fatalf("isolated cell changed to %v", g.Temperature(0, 0))
	}
}

func TestDiffusePairMatchesDoubleVisit(t *testing.T) {
	g := core.MustNewGrid(2, 1)
	g.Cells()[0].Temperature = 100
	g.Cells()[1].Temperature = 0
	Diffuse(g, time.Second, 0.25)
	// Each endpoint evaluates the edge once: 2 * (1 * -100 * 1 * 0.25 * 0.5).
	if g.Temperature(0, 0) != 75 || g.Temperature(1, 0) != 25 {
		t.Fatalf("pair after one tick = (%v, %v), expected (75, 25)", g.Temperature(0, 0), g.Temperature(1, 0))
	}
}

func TestIsolatedPairConverges(t *testing.T) {
	g := core.MustNewGrid(2, 1)
	g.Cells()[0].Temperature = 100
	g.Cells()[1].Temperature = -20
	d := NewDiffuser()
	dt := core.DefaultTickInterval

	prevGap := g.Temperature(0, 0) - g.Temperature(1, 0)
	for tick := 0; tick < 200; tick++ {
		d.Step(g, dt)
		gap := g.Temperature(0, 0) - g.Temperature(1, 0)
		if gap < 0 {
			t.Fatalf("tick %d: pair oscillated past equality (gap %v)", tick, gap)
		}
		if gap > prevGap {
			t.Fatalf("tick %d: gap grew from %v to %v", tick, prevGap, gap)
		}
		if prevGap > 1e-3 && gap >= prevGap {
			t.Fatalf("tick %d: gap stalled at %v", tick, gap)
		}
		prevGap = gap
	}
	if prevGap > 1e-3 {
		t.Fatalf("pair did not converge, gap %v", prevGap)
	}
}

func TestBoundaryAsymmetry(t *testing.T) {
	for _, n := range []int{3, 5, 7} {
		g := core.MustNewGrid(n, n)
		g.Fill(core.Cell{Temperature: 20, Conductivity: 1})
		c := n / 2
		g.At(c, c).Temperature = 100
		before := g.Temperatures(nil)

		Diffuse(g, core.DefaultTickInterval, TransferCoefficient)

		change := func(x, y int) float64 {
			return math.Abs(float64(g.Temperature(x, y) - before[g.Index(x, y)]))
		}
		corner := change(0, 0)
		for _, p := range g.Neighbors(c, c, nil) {
			if change(p.X, p.Y) <= corner {
				t.Fatalf("n=%d: neighbor %v changed %v, corner changed %v", n, p, change(p.X, p.Y), corner)
			}
		}
	}
}

func TestCornerExchangesSlowerThanInterior(t *testing.T) {
	cool := core.Cell{Temperature: 0, Conductivity: 1}
	corner := core.MustNewGrid(5, 5)
	corner.Fill(cool)
	corner.At(0, 0).Temperature = 100
	interior := core.MustNewGrid(5, 5)
	interior.Fill(cool)
	interior.At(2, 2).Temperature = 100

	Diffuse(corner, core.DefaultTickInterval, TransferCoefficient)
	Diffuse(interior, core.DefaultTickInterval, TransferCoefficient)

	lostCorner := 100 - corner.Temperature(0, 0)
	lostInterior := 100 - interior.Temperature(2, 2)
	if lostCorner >= lostInterior {
		t.Fatalf("corner lost %v, interior lost %v; corner should lose less", lostCorner, lostInterior)
	}
}

func TestEndToEndThreeByThree(t *testing.T) {
	g := core.MustNewGrid(3, 3)
	g.Fill(core.Cell{Temperature: 20, Conductivity: 1})
	g.At(1, 1).Temperature = 100

	clock := core.NewClock(core.DefaultTickInterval)
	d := NewDiffuser()
	fired := 0
	for frame := 0; fired < 5 && frame < 1000; frame++ {
		clock.Tick(16 * time.Millisecond)
		if clock.ConsumeDue() {
			d.Step(g, clock.Interval())
			fired++
		}
	}
	if fired != 5 {
		t.Fatalf("fired %d ticks, expected 5", fired)
	}
	if g.Temperature(1, 1) >= 100 {
		t.Fatalf("center %v, expected < 100", g.Temperature(1, 1))
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			if g.Temperature(x, y) <= 20 {
				t.Fatalf("cell (%d,%d) = %v, expected > 20", x, y, g.Temperature(x, y))
			}
		}
	}
}

func TestDiffuseConservesEnergy(t *testing.T) {
	g := randomGrid(t, 12, 9, 3)
	before := GridStats(g).Total
	d := NewDiffuser()
	for i := 0; i < 50; i++ {
		d.Step(g, core.DefaultTickInterval)
	}
	after := GridStats(g).Total
	if math.Abs(after-before) > 1e-2*math.Max(1, math.Abs(before)) {
		t.Fatalf("total energy drifted from %v to %v", before, after)
	}
}

func TestDiffuseMirrorSymmetric(t *testing.T) {
	g := core.MustNewGrid(5, 1)
	temps := []float32{10, 40, 90, 40, 10}
	for i, v := range temps {
		g.Cells()[i].Temperature = v
	}
	Diffuse(g, core.DefaultTickInterval, TransferCoefficient)
	for x := 0; x < 2; x++ {
		l, r := g.Temperature(x, 0), g.Temperature(4-x, 0)
		if math.Abs(float64(l-r)) > 1e-4 {
			t.Fatalf("mirror cells %d and %d diverged: %v vs %v", x, 4-x, l, r)
		}
	}
}

func TestDiffuserMatchesFreshAccumulator(t *testing.T) {
	a := randomGrid(t, 6, 6, 11)
	b := randomGrid(t, 6, 6, 11)
	d := NewDiffuser()
	for i := 0; i < 10; i++ {
		d.Step(a, core.DefaultTickInterval)
		Diffuse(b, core.DefaultTickInterval, TransferCoefficient)
	}
	if !slices.Equal(a.Temperatures(nil), b.Temperatures(nil)) {
		t.Fatal("reused accumulator diverged from a fresh one")
	}
}
