package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"heat-ca/internal/app"
	"heat-ca/internal/sims/heat"
	"heat-ca/pkg/logger"

	"github.com/sirupsen/logrus"
)

type durationList []time.Duration

func (l *durationList) String() string {
	parts := make([]string, len(*l))
	for i, d := range *l {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}

func (l *durationList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		d, err := time.ParseDuration(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("interval %q: %w", part, err)
		}
		*l = append(*l, d)
	}
	return nil
}

type outcome struct {
	res heat.ScenarioResult
	err error
}

func main() {
	logger.Init()

	frames := flag.Int("frames", 600, "host frames to simulate per scenario")
	frameDelta := flag.Duration("frame", time.Second/60, "elapsed time per host frame")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var intervals durationList
	flag.Var(&intervals, "intervals", "comma-separated tick intervals to sweep (default 50ms..2s)")
	var overrides app.KVList
	flag.Var(&overrides, "set", "heat parameter override in key=value form (repeatable)")
	flag.Parse()

	if len(intervals) == 0 {
		intervals = durationList{50 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond, 500 * time.Millisecond, time.Second, 2 * time.Second}
	}
	base := heat.FromMap(overrides.Map())

	logger.Log.WithFields(logrus.Fields{
		"scenarios": len(intervals),
		"workers":   *workers,
		"frames":    *frames,
		"frame":     *frameDelta,
		"w":         base.Width,
		"h":         base.Height,
	}).Info("Sweeping tick intervals")

	jobs := make(chan time.Duration)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for interval := range jobs {
				cfg := base
				cfg.Interval = interval
				res, err := heat.RunScenario(cfg, *frames, *frameDelta)
				results <- outcome{res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, interval := range intervals {
			jobs <- interval
		}
		close(jobs)
	}()

	start := time.Now()
	var all []heat.ScenarioResult
	for out := range results {
		if out.err != nil {
			logger.Log.WithError(out.err).Fatal("Scenario failed")
		}
		all = append(all, out.res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Interval < all[j].Interval })

	for _, res := range all {
		entry := logger.Log.WithFields(logrus.Fields{
			"interval":  res.Interval,
			"ticks":     res.TicksFired,
			"min":       fmt.Sprintf("%.3f", res.Final.Min),
			"max":       fmt.Sprintf("%.3f", res.Final.Max),
			"drift":     fmt.Sprintf("%.3g", res.EnergyDrift),
			"overshoot": res.Overshoot,
		})
		if res.Overshoot {
			entry.Warn("Scenario overshot")
			continue
		}
		entry.Info("Scenario stable")
	}
	logger.Log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("Sweep done")
}
