package main

import (
	"time"

	"github.com/rlauff/hanabi/cmd/hanabi/shared"
	"github.com/rlauff/hanabi/internal/sim"
	"github.com/rlauff/hanabi/internal/strategy"
)

// BenchCmd runs a batch of games and prints aggregate statistics
type BenchCmd struct {
	Games    int    `kong:"default='10000',help='Number of games to simulate'"`
	Strategy string `kong:"default='robert',help='Strategy for both seats'"`
	Seed     *int64 `kong:"help='Deterministic base seed (optional)'"`
	Workers  int    `kong:"default='0',help='Parallel workers, 0 for one per CPU'"`
	Weights  string `kong:"default='weights.hcl',help='Heuristic weights file'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *BenchCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
		logger.Info("using random seed", "seed", seed)
	}

	params, err := strategy.LoadParams(c.Weights)
	if err != nil {
		return err
	}

	simulator := sim.New(sim.Config{
		Games:    c.Games,
		Strategy: c.Strategy,
		Seed:     seed,
		Workers:  c.Workers,
		Logger:   logger,
		Params:   params,
	})

	ctx := shared.SetupSignalHandler(logger)

	start := time.Now()
	stats, err := simulator.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("benchmark finished", "games", c.Games, "elapsed", time.Since(start))

	sim.PrintSummary(stats, c.Strategy)
	return nil
}
