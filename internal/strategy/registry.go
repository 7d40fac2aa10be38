package strategy

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rlauff/hanabi/internal/game"
)

// Options carries everything a strategy constructor might want. Each
// field is used by the strategies that need it and ignored by the rest.
type Options struct {
	RNG    *rand.Rand
	Logger *log.Logger
	Params Params
}

type factory struct {
	description string
	build       func(Options) Strategy
}

// Strategy is the agent contract re-exported for callers that only deal
// in this package.
type Strategy = game.Strategy

var registry = map[string]factory{
	"robert": {
		description: "weighted heuristic scoring of every candidate move",
		build: func(o Options) Strategy {
			return NewRobert(o.Params, o.Logger)
		},
	},
	"rules": {
		description: "fixed priority ladder of plays, saves and clues",
		build: func(o Options) Strategy {
			return NewRules()
		},
	},
	"oracle": {
		description: "sees both hands and the deck, an upper bound",
		build: func(o Options) Strategy {
			return NewOracle()
		},
	},
	"random": {
		description: "uniform over legal moves",
		build: func(o Options) Strategy {
			return NewRandom(o.RNG)
		},
	},
	"random-play": {
		description: "plays a random slot every turn",
		build: func(o Options) Strategy {
			return NewRandomPlay(o.RNG)
		},
	},
}

// New builds the named strategy
func New(name string, opts Options) (Strategy, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q, have: %s", name, strings.Join(Names(), ", "))
	}
	return f.build(opts), nil
}

// Names lists the registered strategy names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description of a registered strategy
func Describe(name string) string {
	return registry[name].description
}
