package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	var s Statistics
	s.Add(RoundResult{Net: 10, Wagered: 10, Hands: 1, Wins: 1})
	s.Add(RoundResult{Net: -10, Wagered: 10, Hands: 1, Losses: 1, Busts: 1})
	s.Add(RoundResult{Net: 0, Wagered: 10, Hands: 1, Pushes: 1})
	s.Add(RoundResult{Net: -20, Wagered: 20, Hands: 2, Losses: 2})

	assert.Equal(t, 4, s.Rounds)
	assert.Equal(t, -20, s.Net)
	assert.Equal(t, 50, s.Wagered)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 3, s.Losses)
	assert.Equal(t, 1, s.Pushes)
	assert.Equal(t, 1, s.Busts)
	assert.Equal(t, 1, s.Splits, "multi-hand rounds count as splits")
	assert.Equal(t, 10, s.MaxWin)
	assert.Equal(t, -20, s.MaxLoss)
	assert.InDelta(t, -5.0, s.Mean(), 1e-9)
}

func TestVariance(t *testing.T) {
	var s Statistics
	for _, net := range []int{10, -10, 10, -10} {
		s.Add(RoundResult{Net: net, Wagered: 10, Hands: 1})
	}
	assert.InDelta(t, 0.0, s.Mean(), 1e-9)
	// Sample variance of {10,-10,10,-10} is 400/3
	assert.InDelta(t, 400.0/3.0, s.Variance(), 1e-9)
	assert.InDelta(t, 11.547, s.StdDev(), 0.001)
}

func TestVarianceDegenerate(t *testing.T) {
	var s Statistics
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())

	s.Add(RoundResult{Net: 5, Wagered: 5, Hands: 1})
	assert.Equal(t, 0.0, s.Variance(), "single sample has no variance")
}

func TestMerge(t *testing.T) {
	var a, b Statistics
	a.Add(RoundResult{Net: 10, Wagered: 10, Hands: 1, Wins: 1})
	b.Add(RoundResult{Net: -30, Wagered: 20, Hands: 2, Losses: 2})
	b.Add(RoundResult{Net: 15, Wagered: 10, Hands: 1, Wins: 1, Naturals: 1})

	a.Merge(&b)
	assert.Equal(t, 3, a.Rounds)
	assert.Equal(t, -5, a.Net)
	assert.Equal(t, 40, a.Wagered)
	assert.Equal(t, 2, a.Wins)
	assert.Equal(t, 1, a.Naturals)
	assert.Equal(t, 15, a.MaxWin)
	assert.Equal(t, -30, a.MaxLoss)
}

func TestHouseEdge(t *testing.T) {
	var s Statistics
	s.Add(RoundResult{Net: -2, Wagered: 100, Hands: 1, Losses: 1})
	assert.InDelta(t, 0.02, s.HouseEdge(), 1e-9)
}

func TestSummary(t *testing.T) {
	var s Statistics
	s.Add(RoundResult{Net: 15, Wagered: 10, Hands: 1, Wins: 1, Naturals: 1})

	out := s.Summary()
	assert.Contains(t, out, "Rounds:     1")
	assert.Contains(t, out, "+15 chips")
	assert.Contains(t, out, "Naturals:   1")
}
