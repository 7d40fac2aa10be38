package main

import (
	"fmt"
	"time"

	"github.com/rlauff/hanabi/cmd/hanabi/shared"
	"github.com/rlauff/hanabi/internal/display"
	"github.com/rlauff/hanabi/internal/game"
	"github.com/rlauff/hanabi/internal/sim"
	"github.com/rlauff/hanabi/internal/strategy"
)

// PlayCmd plays one game and prints every move as it happens
type PlayCmd struct {
	Strategy string `kong:"default='robert',help='Strategy for both seats'"`
	Seed     *int64 `kong:"help='Deterministic seed (optional)'"`
	Weights  string `kong:"default='weights.hcl',help='Heuristic weights file'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	logger.Info("playing one game", "strategy", c.Strategy, "seed", seed)

	params, err := strategy.LoadParams(c.Weights)
	if err != nil {
		return err
	}

	simulator := sim.New(sim.Config{
		Strategy: c.Strategy,
		Logger:   logger,
		Params:   params,
	})

	result, err := simulator.PlayGame(seed, func(mover int, mv game.Move, res game.MoveResult, g *game.Game) {
		fmt.Println(display.Move(mover, mv, res))
		fmt.Println("  " + display.Fireworks(g.Fireworks()))
		fmt.Println("  " + display.Status(g.HintsRemaining(), g.MistakesMade(), g.DeckRemaining(), g.Score()))
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(display.HeaderStyle.Render(fmt.Sprintf(" final score %d in %d turns, %d mistakes ",
		result.Score, result.Turns, result.Mistakes)))
	return nil
}
