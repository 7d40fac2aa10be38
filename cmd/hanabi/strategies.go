package main

import (
	"fmt"

	"github.com/rlauff/hanabi/internal/strategy"
)

// StrategiesCmd prints the registered strategies
type StrategiesCmd struct{}

func (c *StrategiesCmd) Run() error {
	for _, name := range strategy.Names() {
		fmt.Printf("%-12s %s\n", name, strategy.Describe(name))
	}
	return nil
}
