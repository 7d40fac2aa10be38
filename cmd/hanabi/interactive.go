package main

import (
	"time"

	"github.com/rlauff/hanabi/cmd/hanabi/shared"
	"github.com/rlauff/hanabi/internal/randutil"
	"github.com/rlauff/hanabi/internal/strategy"
	"github.com/rlauff/hanabi/internal/tui"
)

// InteractiveCmd runs a game with a human in seat 0
type InteractiveCmd struct {
	Partner string `kong:"default='robert',help='Bot strategy for the other seat'"`
	Seed    *int64 `kong:"help='Deterministic seed (optional)'"`
	Weights string `kong:"default='weights.hcl',help='Heuristic weights file'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *InteractiveCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	params, err := strategy.LoadParams(c.Weights)
	if err != nil {
		return err
	}

	model, err := tui.New(seed, c.Partner, strategy.Options{
		RNG:    randutil.New(seed),
		Logger: logger,
		Params: params,
	}, logger)
	if err != nil {
		return err
	}
	return model.Run()
}
