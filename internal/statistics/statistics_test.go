package statistics

import (
	"math"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdDev() != 0 {
		t.Errorf("Expected stddev of 0 for empty stats, got %f", stats.StdDev())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.Percentile(0.5) != 0 {
		t.Errorf("Expected percentile of 0 for empty stats, got %f", stats.Percentile(0.5))
	}
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := &Statistics{}
	result := GameResult{
		Score:    17,
		Turns:    52,
		Mistakes: 1,
		Seed:     12345,
	}

	stats.Add(result)

	if stats.Games != 1 {
		t.Errorf("Expected 1 game, got %d", stats.Games)
	}
	if stats.Mean() != 17 {
		t.Errorf("Expected mean of 17, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.Median() != 17 {
		t.Errorf("Expected median of 17, got %f", stats.Median())
	}
	if stats.Histogram[17] != 1 {
		t.Errorf("Expected histogram bucket 17 to hold 1 game, got %d", stats.Histogram[17])
	}
	if stats.Lost != 0 {
		t.Errorf("Expected no lost games, got %d", stats.Lost)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_MultipleValues(t *testing.T) {
	stats := &Statistics{}

	results := []GameResult{
		{Score: 25, Turns: 60, Mistakes: 0},
		{Score: 20, Turns: 55, Mistakes: 1},
		{Score: 10, Turns: 40, Mistakes: 3},
		{Score: 15, Turns: 50, Mistakes: 2},
		{Score: 5, Turns: 30, Mistakes: 3},
	}
	for _, r := range results {
		stats.Add(r)
	}

	if stats.Games != 5 {
		t.Errorf("Expected 5 games, got %d", stats.Games)
	}
	if stats.Mean() != 15 {
		t.Errorf("Expected mean of 15, got %f", stats.Mean())
	}
	if stats.Median() != 15 {
		t.Errorf("Expected median of 15, got %f", stats.Median())
	}
	if stats.Perfect != 1 {
		t.Errorf("Expected 1 perfect game, got %d", stats.Perfect)
	}
	if stats.Lost != 2 {
		t.Errorf("Expected 2 lost games, got %d", stats.Lost)
	}
	if stats.MaxTurns != 60 {
		t.Errorf("Expected max turns of 60, got %d", stats.MaxTurns)
	}
	if stats.MeanTurns() != 47 {
		t.Errorf("Expected mean turns of 47, got %f", stats.MeanTurns())
	}

	// sample variance of {25,20,10,15,5} around 15 is 62.5
	if math.Abs(stats.Variance()-62.5) > 1e-9 {
		t.Errorf("Expected variance of 62.5, got %f", stats.Variance())
	}
	if math.Abs(stats.StdDev()-math.Sqrt(62.5)) > 1e-9 {
		t.Errorf("Expected stddev of sqrt(62.5), got %f", stats.StdDev())
	}

	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_ConfidenceInterval(t *testing.T) {
	stats := &Statistics{}
	for i := 0; i < 100; i++ {
		stats.Add(GameResult{Score: 15 + (i%2)*2}) // alternating 15 and 17
	}

	low, high := stats.ConfidenceInterval95()
	mean := stats.Mean()
	if mean != 16 {
		t.Errorf("Expected mean of 16, got %f", mean)
	}
	if low >= mean || high <= mean {
		t.Errorf("Expected CI to bracket the mean, got [%f, %f] around %f", low, high, mean)
	}
	if math.Abs((high-low)/2-1.96*stats.StdError()) > 1e-9 {
		t.Errorf("Expected CI margin of 1.96 standard errors")
	}
}

func TestStatistics_Percentiles(t *testing.T) {
	stats := &Statistics{}
	for score := 0; score <= 25; score++ {
		stats.Add(GameResult{Score: score})
	}

	if stats.Percentile(0) != 0 {
		t.Errorf("Expected P0 of 0, got %f", stats.Percentile(0))
	}
	if stats.Percentile(1) != 25 {
		t.Errorf("Expected P100 of 25, got %f", stats.Percentile(1))
	}
	if stats.Percentile(0.5) != stats.Median() {
		t.Errorf("Expected P50 to equal median")
	}
}

func TestStatistics_Merge(t *testing.T) {
	a := &Statistics{}
	b := &Statistics{}
	combined := &Statistics{}

	for i, score := range []int{25, 3, 12, 18, 0, 22} {
		r := GameResult{Score: score, Turns: 40 + i, Mistakes: i % 4}
		if i%2 == 0 {
			a.Add(r)
		} else {
			b.Add(r)
		}
		combined.Add(r)
	}

	a.Merge(b)

	if a.Games != combined.Games {
		t.Errorf("Expected %d games after merge, got %d", combined.Games, a.Games)
	}
	if a.Mean() != combined.Mean() {
		t.Errorf("Expected merged mean %f, got %f", combined.Mean(), a.Mean())
	}
	if a.Median() != combined.Median() {
		t.Errorf("Expected merged median %f, got %f", combined.Median(), a.Median())
	}
	if a.Perfect != combined.Perfect {
		t.Errorf("Expected %d perfect games, got %d", combined.Perfect, a.Perfect)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Expected valid merged stats, got %v", err)
	}
}

func TestStatistics_ValidateCatchesMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Score: 10})
	stats.Games = 2 // corrupt the count

	if err := stats.Validate(); err == nil {
		t.Error("Expected validation to fail on corrupted games count")
	}
}

func TestGameResult_Lost(t *testing.T) {
	if (GameResult{Mistakes: 2}).Lost() {
		t.Error("Expected 2 mistakes to not count as lost")
	}
	if !(GameResult{Mistakes: 3}).Lost() {
		t.Error("Expected 3 mistakes to count as lost")
	}
}
