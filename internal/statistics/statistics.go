// Package statistics aggregates round outcomes for simulation runs.
package statistics

import (
	"fmt"
	"math"
	"strings"
)

// RoundResult represents the outcome of a single blackjack round for
// the tracked player.
type RoundResult struct {
	Net      int   // Chips won (positive) or lost (negative) this round
	Wagered  int   // Total amount staked including doubles and splits
	Hands    int   // Final hand count (2 after a split)
	Wins     int   // Hands won outright
	Losses   int   // Hands forfeited
	Pushes   int   // Hands tied with the dealer
	Naturals int   // Two-card 21s
	Busts    int   // Hands that went over 21
	Seed     int64 // RNG seed for this round (for replay)
}

// Statistics tracks aggregate results across simulated rounds.
type Statistics struct {
	Rounds  int
	Net     int
	Wagered int
	SumNet  float64
	SumNet2 float64 // Sum of squares for variance calculation

	Wins     int
	Losses   int
	Pushes   int
	Naturals int
	Busts    int
	Splits   int

	MaxWin  int
	MaxLoss int
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	net := float64(result.Net)
	s.Rounds++
	s.Net += result.Net
	s.Wagered += result.Wagered
	s.SumNet += net
	s.SumNet2 += net * net

	s.Wins += result.Wins
	s.Losses += result.Losses
	s.Pushes += result.Pushes
	s.Naturals += result.Naturals
	s.Busts += result.Busts
	if result.Hands > 1 {
		s.Splits++
	}

	if result.Net > s.MaxWin {
		s.MaxWin = result.Net
	}
	if result.Net < s.MaxLoss {
		s.MaxLoss = result.Net
	}
}

// Merge folds another statistics block into this one
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Net += other.Net
	s.Wagered += other.Wagered
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2

	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Naturals += other.Naturals
	s.Busts += other.Busts
	s.Splits += other.Splits

	if other.MaxWin > s.MaxWin {
		s.MaxWin = other.MaxWin
	}
	if other.MaxLoss < s.MaxLoss {
		s.MaxLoss = other.MaxLoss
	}
}

// Mean returns the arithmetic mean of net chips per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of net chips per round
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of net chips per round
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// HouseEdge returns the house's take as a fraction of total amount
// wagered (positive means the house is winning).
func (s *Statistics) HouseEdge() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return -float64(s.Net) / float64(s.Wagered)
}

// Summary renders a human-readable report of the run
func (s *Statistics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rounds:     %d\n", s.Rounds)
	fmt.Fprintf(&b, "Net:        %+d chips (%+.3f/round, stddev %.2f)\n", s.Net, s.Mean(), s.StdDev())
	fmt.Fprintf(&b, "Wagered:    %d chips (house edge %+.2f%%)\n", s.Wagered, s.HouseEdge()*100)
	fmt.Fprintf(&b, "Hands:      %d won, %d lost, %d pushed\n", s.Wins, s.Losses, s.Pushes)
	fmt.Fprintf(&b, "Naturals:   %d\n", s.Naturals)
	fmt.Fprintf(&b, "Busts:      %d\n", s.Busts)
	fmt.Fprintf(&b, "Splits:     %d\n", s.Splits)
	fmt.Fprintf(&b, "Best/worst: %+d / %+d chips\n", s.MaxWin, s.MaxLoss)
	return b.String()
}
