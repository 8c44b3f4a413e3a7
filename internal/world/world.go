package world

import (
	"errors"
	"fmt"

	"heat-ca/internal/core"
	"heat-ca/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrNoLayers is returned when Generate is called without any layers queued.
var ErrNoLayers = errors.New("world has no layers")

// World owns a set of independent layers sharing one size.
type World struct {
	size   core.Size
	layers []*Layer
	state  GenerationState
}

// Size returns the shared layer dimensions.
func (w *World) Size() core.Size { return w.size }

// Layers returns the layers in build order.
func (w *World) Layers() []*Layer { return w.layers }

// State reports the generation state.
func (w *World) State() GenerationState { return w.state }

// Layer returns the first layer of the given type, or nil.
func (w *World) Layer(t LayerType) *Layer {
	for _, l := range w.layers {
		if l.Type == t {
			return l
		}
	}
	return nil
}

// Drop releases every layer. The world is back to idle afterwards.
func (w *World) Drop() {
	w.layers = nil
	w.state = GenerationIdle
}

// Builder queues layers and generates a World from them.
type Builder struct {
	size    core.Size
	pending []*LayerBuilder
	state   GenerationState
}

// NewBuilder returns a builder for a world of the given size.
func NewBuilder(size core.Size) *Builder {
	return &Builder{size: size}
}

// State reports the builder's generation state.
func (b *Builder) State() GenerationState { return b.state }

// Add queues a layer. Its size is forced to the world size.
func (b *Builder) Add(lb *LayerBuilder) *Builder {
	b.pending = append(b.pending, lb.WithSize(b.size))
	return b
}

// Generate builds every queued layer in order.
func (b *Builder) Generate() (*World, error) {
	b.state = GenerationInitializing
	if err := b.size.Check(); err != nil {
		b.state = GenerationIdle
		return nil, fmt.Errorf("generate world: %w", err)
	}
	if len(b.pending) == 0 {
		b.state = GenerationIdle
		return nil, ErrNoLayers
	}

	b.state = GenerationGenerating
	w := &World{size: b.size, layers: make([]*Layer, 0, len(b.pending))}
	for i, lb := range b.pending {
		layer, err := lb.Build(uint32(i))
		if err != nil {
			b.state = GenerationIdle
			return nil, err
		}
		logger.Log.WithFields(logrus.Fields{
			"layer": layer.Name,
			"type":  layer.Type.String(),
			"w":     layer.Grid.W,
			"h":     layer.Grid.H,
		}).Info("Built layer")
		w.layers = append(w.layers, layer)
	}
	b.state = GenerationDone
	w.state = GenerationDone
	return w, nil
}

// Standard returns a builder preloaded with the background and solid layers.
func Standard(size core.Size, background, solid *LayerBuilder) *Builder {
	b := NewBuilder(size)
	b.Add(background.WithType(LayerBackground).WithName("Background Layer"))
	b.Add(solid.WithType(LayerSolid).WithName("Solid Layer"))
	return b
}
