package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Bench       BenchCmd         `cmd:"" help:"Benchmark a strategy over many games"`
	Play        PlayCmd          `cmd:"" help:"Watch a strategy play a single game"`
	Interactive InteractiveCmd   `cmd:"" help:"Play a game yourself against a bot partner"`
	Strategies  StrategiesCmd    `cmd:"" help:"List the available strategies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hanabi"),
		kong.Description("Cooperative fireworks card game simulator and strategy benchmark"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
