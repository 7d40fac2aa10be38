package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/rlauff/hanabi/internal/game"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	Score    int   // Fireworks total at game end (0-25)
	Turns    int   // Moves made before the game ended
	Mistakes int   // Failed plays, 3 means the game was lost
	Seed     int64 // RNG seed for this game (for replay)
}

// Lost reports whether the game ended by the third mistake
func (r GameResult) Lost() bool {
	return r.Mistakes >= game.MaxMistakes
}

// Statistics aggregates results across a benchmark run
type Statistics struct {
	Games     int
	SumScore  float64
	SumScore2 float64   // Sum of squares for variance calculation
	Values    []float64 // All scores, for median/percentile calculation

	// Outcome analytics
	Histogram [game.PerfectScore + 1]int // Games per final score
	Perfect   int                        // Games that reached the maximum score
	Lost      int                        // Games ended by the third mistake
	LostScore float64                    // Score total from lost games

	// Pace analytics
	SumTurns    int
	SumMistakes int
	MaxTurns    int
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	score := float64(result.Score)
	s.Games++
	s.SumScore += score
	s.SumScore2 += score * score
	s.Values = append(s.Values, score)

	if result.Score >= 0 && result.Score <= game.PerfectScore {
		s.Histogram[result.Score]++
	}
	if result.Score == game.PerfectScore {
		s.Perfect++
	}
	if result.Lost() {
		s.Lost++
		s.LostScore += score
	}

	s.SumTurns += result.Turns
	s.SumMistakes += result.Mistakes
	if result.Turns > s.MaxTurns {
		s.MaxTurns = result.Turns
	}
}

// Merge folds another aggregate into this one. Values keep append order;
// median and percentiles sort before reading, so order never matters.
func (s *Statistics) Merge(o *Statistics) {
	s.Games += o.Games
	s.SumScore += o.SumScore
	s.SumScore2 += o.SumScore2
	s.Values = append(s.Values, o.Values...)
	for i := range s.Histogram {
		s.Histogram[i] += o.Histogram[i]
	}
	s.Perfect += o.Perfect
	s.Lost += o.Lost
	s.LostScore += o.LostScore
	s.SumTurns += o.SumTurns
	s.SumMistakes += o.SumMistakes
	if o.MaxTurns > s.MaxTurns {
		s.MaxTurns = o.MaxTurns
	}
}

// Mean returns the arithmetic mean score per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumScore / float64(s.Games)
}

// Variance returns the sample variance of the scores
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumScore2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the scores
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the score at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PerfectRate returns the fraction of games that scored the maximum
func (s *Statistics) PerfectRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Perfect) / float64(s.Games)
}

// LossRate returns the fraction of games ended by the third mistake
func (s *Statistics) LossRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Lost) / float64(s.Games)
}

// MeanTurns returns the average game length in moves
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumTurns) / float64(s.Games)
}

// MeanMistakes returns the average failed plays per game
func (s *Statistics) MeanMistakes() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumMistakes) / float64(s.Games)
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	histTotal := 0
	for _, n := range s.Histogram {
		histTotal += n
	}
	if histTotal != s.Games {
		return fmt.Errorf("histogram total (%d) does not match games count (%d)",
			histTotal, s.Games)
	}

	if s.Perfect != s.Histogram[game.PerfectScore] {
		return fmt.Errorf("perfect count (%d) does not match histogram bucket (%d)",
			s.Perfect, s.Histogram[game.PerfectScore])
	}

	if s.Lost > s.Games {
		return fmt.Errorf("lost games (%d) exceed total games (%d)", s.Lost, s.Games)
	}

	return nil
}
