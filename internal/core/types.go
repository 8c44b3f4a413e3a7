package core

import (
	"fmt"
	"math"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// MaxCells bounds the number of cells a single grid may hold. A Cell is
// two float32 values, so the backing slice stays addressable.
const MaxCells = math.MaxInt / 8

// Check reports whether a grid of this size can be allocated. It returns
// ErrEmptyGrid for a zero or negative side and ErrGridTooLarge when W*H
// would overflow or exceed MaxCells.
func (s Size) Check() error {
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("grid %dx%d: %w", s.W, s.H, ErrEmptyGrid)
	}
	if s.H > MaxCells/s.W {
		return fmt.Errorf("grid %dx%d: %w", s.W, s.H, ErrGridTooLarge)
	}
	return nil
}

// Area returns W*H, or 0 when the size fails Check.
func (s Size) Area() int {
	if s.Check() != nil {
		return 0
	}
	return s.W * s.H
}

// Sim defines the minimal contract a grid simulation must implement so the
// host loop can drive and draw it. Step runs exactly one fired tick; rate
// gating is the caller's job.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered simulations in lexical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
