package heat

import (
	"fmt"
	"math"
	"time"

	"heat-ca/internal/core"
	"heat-ca/internal/world"
	rng "heat-ca/pkg/core"
	"heat-ca/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Stats summarizes a temperature field.
type Stats struct {
	Min   float64
	Max   float64
	Mean  float64
	Total float64
}

// Sim diffuses heat over every layer of a world. Each layer has its own
// Diffuser; layers never exchange heat.
type Sim struct {
	cfg Config

	world     *world.World
	diffusers []*Diffuser
	active    int
	ticks     uint64

	display []uint8
	temps   []float32
}

// New returns a heat simulation with the provided dimensions using defaults.
func New(w, h int) (*Sim, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds the world for cfg seeded with cfg.Seed.
func NewWithConfig(cfg Config) (*Sim, error) {
	if cfg.Interval <= 0 {
		cfg.Interval = core.DefaultTickInterval
	}
	s := &Sim{cfg: cfg}
	if err := s.generate(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "heat" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Interval is the simulated time covered by one Step.
func (s *Sim) Interval() time.Duration { return s.cfg.Interval }

// Ticks counts the steps run since the last Reset.
func (s *Sim) Ticks() uint64 { return s.ticks }

// World exposes the layers being diffused.
func (s *Sim) World() *world.World { return s.world }

// ActiveLayer returns the layer shown through Cells and Temperatures.
func (s *Sim) ActiveLayer() *world.Layer { return s.world.Layers()[s.active] }

// CycleLayer switches the active layer to the next one.
func (s *Sim) CycleLayer() {
	s.active = (s.active + 1) % len(s.world.Layers())
	s.rebuildDisplay()
}

// Cells exposes the palette indices of the active layer.
func (s *Sim) Cells() []uint8 { return s.display }

// Temperatures returns a snapshot of the active layer's temperatures.
func (s *Sim) Temperatures() []float32 {
	s.temps = s.ActiveLayer().Grid.Temperatures(s.temps)
	return s.temps
}

// Stats summarizes the active layer.
func (s *Sim) Stats() Stats {
	return GridStats(s.ActiveLayer().Grid)
}

// Reset regenerates the world. A zero seed falls back to the config seed.
// On failure the previous world is kept.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	if err := s.generate(effective); err != nil {
		logger.Log.WithError(err).Error("Heat reset failed; keeping previous world")
	}
}

// Step diffuses every layer once with dt equal to the configured interval.
func (s *Sim) Step() {
	for i, layer := range s.world.Layers() {
		s.diffusers[i].Step(layer.Grid, s.cfg.Interval)
	}
	s.ticks++
	s.rebuildDisplay()

	if logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		st := s.Stats()
		logger.Log.WithFields(logrus.Fields{
			"tick":  s.ticks,
			"layer": s.ActiveLayer().Name,
			"min":   st.Min,
			"max":   st.Max,
			"total": st.Total,
		}).Debug("Heat tick")
	}
}

func (s *Sim) generate(seed int64) error {
	r := rng.NewRNG(seed)
	p := s.cfg.Params
	fill := core.Cell{Temperature: p.Temperature, Conductivity: p.Conductivity}

	background := world.NewLayerBuilder().WithFill(fill)
	solid := world.NewLayerBuilder().
		WithFill(fill).
		WithPainter(insulatorPainter(r, p)).
		WithPainter(hotspotPainter(r, p))

	w, err := world.Standard(s.Size(), background, solid).Generate()
	if err != nil {
		return fmt.Errorf("heat world: %w", err)
	}

	s.world = w
	s.diffusers = make([]*Diffuser, len(w.Layers()))
	for i := range s.diffusers {
		s.diffusers[i] = NewDiffuser()
	}
	s.active = len(w.Layers()) - 1
	s.ticks = 0
	if len(s.display) != s.Size().Area() {
		s.display = make([]uint8, s.Size().Area())
	}
	s.rebuildDisplay()
	return nil
}

func hotspotPainter(r *rng.RNG, p Params) world.Painter {
	return func(g *core.Grid) {
		radius := p.HotspotRadius
		r2 := radius * radius
		for n := 0; n < p.HotspotCount; n++ {
			cx := r.IntN(g.W)
			cy := r.IntN(g.H)
			temp := r.Float32Range(p.HotspotTemperature-p.HotspotJitter, p.HotspotTemperature+p.HotspotJitter)
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					if dx*dx+dy*dy > r2 {
						continue
					}
					if c := g.At(cx+dx, cy+dy); c != nil {
						c.Temperature = temp
					}
				}
			}
		}
	}
}

func insulatorPainter(r *rng.RNG, p Params) world.Painter {
	return func(g *core.Grid) {
		if p.InsulatorChance <= 0 {
			return
		}
		cells := g.Cells()
		for i := range cells {
			if r.Chance(p.InsulatorChance) {
				cells[i].Conductivity = p.InsulatorConductivity
			}
		}
	}
}

// GridStats summarizes the temperatures of g.
func GridStats(g *core.Grid) Stats {
	cells := g.Cells()
	if len(cells) == 0 {
		return Stats{}
	}
	st := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, c := range cells {
		t := float64(c.Temperature)
		st.Total += t
		st.Min = math.Min(st.Min, t)
		st.Max = math.Max(st.Max, t)
	}
	st.Mean = st.Total / float64(len(cells))
	return st
}

func init() {
	core.Register("heat", func(cfg map[string]string) core.Sim {
		s, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			logger.Log.WithError(err).Fatal("Unable to build heat simulation")
		}
		return s
	})
}
