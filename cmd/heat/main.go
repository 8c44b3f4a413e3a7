//go:build ebiten

package main

import (
	"errors"
	"flag"

	"heat-ca/internal/app"
	"heat-ca/internal/core"
	_ "heat-ca/internal/sims/heat"
	"heat-ca/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	logger.Init()

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Log.WithFields(logrus.Fields{"sim": cfg.Sim, "available": core.SimNames()}).Fatal("Unknown simulation")
	}

	sim := factory(cfg.SimConfig())
	game := app.New(sim, cfg)
	size := sim.Size()

	logger.Log.WithFields(logrus.Fields{
		"sim":      sim.Name(),
		"w":        size.W,
		"h":        size.H,
		"interval": cfg.Interval,
		"tps":      cfg.TPS,
	}).Info("Starting viewer")

	ebiten.SetWindowTitle("heat-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.WithError(err).Fatal("Viewer stopped")
	}
}
