// Package sim drives batches of games for benchmarking and single games
// for watching a strategy play.
package sim

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/rlauff/hanabi/internal/game"
	"github.com/rlauff/hanabi/internal/randutil"
	"github.com/rlauff/hanabi/internal/statistics"
	"github.com/rlauff/hanabi/internal/strategy"
)

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Strategy string
	Seed     int64
	Workers  int // 0 means one per CPU
	Logger   *log.Logger
	Params   strategy.Params
}

// Simulator runs game simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Simulator{config: config}
}

// Run plays the configured number of games and returns the aggregate.
// Game i is seeded with base seed plus i, so any single game can be
// replayed from the benchmark seed alone. Results are folded in game
// order regardless of which worker finished first, keeping the aggregate
// identical across worker counts.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]statistics.GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := 0; i < s.config.Games; i++ {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			result, err := s.playGame(s.config.Seed+int64(i), nil)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// Observer receives every move of a watched game after it is applied
type Observer func(mover int, mv game.Move, res game.MoveResult, g *game.Game)

// PlayGame runs a single game at the given seed, reporting each move to
// the observer if one is set.
func (s *Simulator) PlayGame(seed int64, observe Observer) (statistics.GameResult, error) {
	return s.playGame(seed, observe)
}

func (s *Simulator) playGame(seed int64, observe Observer) (statistics.GameResult, error) {
	rng := randutil.New(seed)
	opts := strategy.Options{
		RNG:    rng,
		Logger: s.config.Logger,
		Params: s.config.Params,
	}

	seats := make([]strategy.Strategy, 2)
	for seat := range seats {
		st, err := strategy.New(s.config.Strategy, opts)
		if err != nil {
			return statistics.GameResult{}, err
		}
		seats[seat] = st
	}

	g := game.New(rng, seats[0], seats[1])
	for seat, st := range seats {
		if observer, ok := st.(game.SnapshotObserver); ok {
			observer.AttachSnapshot(seat, g.Snapshot)
		}
	}

	turns := 0
	for {
		if _, over := g.Over(); over {
			break
		}
		mover := g.CurrentPlayer()
		mv, res := g.Advance()
		turns++
		if observe != nil {
			observe(mover, mv, res, g)
		}
	}

	return statistics.GameResult{
		Score:    g.Score(),
		Turns:    turns,
		Mistakes: g.MistakesMade(),
		Seed:     seed,
	}, nil
}

// PrintSummary prints a summary of benchmark results
func PrintSummary(stats *statistics.Statistics, strategyName string) {
	mean := stats.Mean()
	median := stats.Median()
	stdDev := stats.StdDev()
	stdErr := stats.StdError()
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("\n=== RESULTS for %s ===\n", strategyName)
	fmt.Printf("Games played: %d\n", stats.Games)

	fmt.Printf("\n=== STATISTICAL RESULTS ===\n")
	fmt.Printf("Mean: %.4f points\n", mean)
	fmt.Printf("Median: %.1f points\n", median)
	fmt.Printf("Std Dev: %.4f\n", stdDev)
	fmt.Printf("Std Error: %.4f\n", stdErr)
	fmt.Printf("95%% CI: [%.4f, %.4f] points\n", low, high)
	fmt.Printf("Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Printf("\n=== OUTCOME ANALYSIS ===\n")
	fmt.Printf("Perfect games: %d (%.2f%%)\n", stats.Perfect, stats.PerfectRate()*100)
	fmt.Printf("Lost to mistakes: %d (%.2f%%)\n", stats.Lost, stats.LossRate()*100)
	fmt.Printf("Mean turns: %.1f (max %d)\n", stats.MeanTurns(), stats.MaxTurns)
	fmt.Printf("Mean mistakes: %.2f\n", stats.MeanMistakes())

	fmt.Printf("\n=== SCORE DISTRIBUTION ===\n")
	for score, n := range stats.Histogram {
		if n == 0 {
			continue
		}
		fmt.Printf("%2d: %s %d\n", score, bar(n, stats.Games), n)
	}
}

// bar renders a crude proportional bar for the histogram
func bar(n, total int) string {
	const width = 40
	filled := n * width / total
	if n > 0 && filled == 0 {
		filled = 1
	}
	out := make([]byte, filled)
	for i := range out {
		out[i] = '#'
	}
	return string(out)
}
