// Package simulator plays large batches of blackjack rounds with a bot
// strategy at the table and aggregates the outcomes.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/twentyone/internal/bot"
	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
	"github.com/lox/twentyone/internal/statistics"
)

// reshuffleThreshold is the card count at which a worker's dealer swaps
// in a fresh shoe, roughly one deck.
const reshuffleThreshold = 52

// Config holds configuration for running simulations
type Config struct {
	Rounds    int
	Strategy  string
	Seed      int64
	Decks     int
	Bet       int
	Chips     int
	Workers   int
	Timeout   time.Duration
	Rules     game.Rules
	Logger    *log.Logger
	BotLogger zerolog.Logger
	Clock     quartz.Clock
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a new simulator, filling in defaults for anything the
// configuration leaves zero.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Decks <= 0 {
		config.Decks = 6
	}
	if config.Bet <= 0 {
		config.Bet = 10
	}
	if config.Chips <= 0 {
		config.Chips = 1000
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	if config.Rules == (game.Rules{}) {
		config.Rules = game.DefaultRules()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregated results. Rounds
// are divided across workers, each with its own seeded shoe and
// dealer, so runs with the same configuration are reproducible.
// Cancelling the context stops the workers between rounds.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, s.config.Workers)

	perWorker := s.config.Rounds / s.config.Workers
	remainder := s.config.Rounds % s.config.Workers

	for w := 0; w < s.config.Workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		if rounds == 0 {
			continue
		}

		// Independent seed per worker to avoid RNG contention
		seed := s.config.Seed + int64(w)

		g.Go(func() error {
			stats, err := s.runWorker(ctx, seed, rounds)
			if err != nil {
				return err
			}
			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}
	return total, nil
}

// runWorker plays its share of rounds on a private table and returns
// the worker's aggregate.
func (s *Simulator) runWorker(ctx context.Context, seed int64, rounds int) (*statistics.Statistics, error) {
	agent, err := bot.New(s.config.Strategy, s.config.Bet, s.config.BotLogger)
	if err != nil {
		return nil, err
	}

	rng := randutil.New(seed)
	shoe := deck.NewShoe(rng, s.config.Decks)
	shoe.Shuffle()

	d := game.NewDealer(shoe, s.config.Rules, agent,
		game.WithLogger(s.config.Logger),
		game.WithRNG(rng),
		game.WithAutoReshuffle(s.config.Decks, reshuffleThreshold))
	p := game.NewPlayer("sim", s.config.Chips)
	d.AddPlayer(p)

	stats := &statistics.Statistics{}
	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Reset the bankroll so a losing streak cannot starve the
		// flat bet partway through a run.
		p.Chips = s.config.Chips

		result, err := s.playRoundWithTimeout(d)
		if err != nil {
			return nil, fmt.Errorf("round %d (seed %d): %w", round+1, seed, err)
		}
		stats.Add(toRoundResult(result.Players[0], seed))
	}
	return stats, nil
}

// playRoundWithTimeout runs a single round with hang protection. A bot
// that loops on a rejected action would otherwise stall the whole run.
func (s *Simulator) playRoundWithTimeout(d *game.Dealer) (*game.RoundResult, error) {
	type roundOutcome struct {
		result *game.RoundResult
		err    error
	}
	done := make(chan roundOutcome, 1)

	go func() {
		result, err := d.PlayRound(true)
		done <- roundOutcome{result, err}
	}()

	timedOut := make(chan struct{})
	timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case out := <-done:
		return out.result, out.err
	case <-timedOut:
		return nil, fmt.Errorf("hang detected, no result after %v", s.config.Timeout)
	}
}

// toRoundResult flattens an engine round result for the tracked player
// into the statistics record.
func toRoundResult(pr game.PlayerRoundResult, seed int64) statistics.RoundResult {
	out := statistics.RoundResult{
		Net:     pr.Net,
		Wagered: pr.Wagered,
		Hands:   len(pr.Hands),
		Seed:    seed,
	}
	for _, h := range pr.Hands {
		switch h.Outcome {
		case game.OutcomeWin:
			out.Wins++
		case game.OutcomeBlackjack:
			out.Wins++
			out.Naturals++
		case game.OutcomePush:
			out.Pushes++
		case game.OutcomeBust:
			out.Losses++
			out.Busts++
		case game.OutcomeLoss:
			out.Losses++
		}
	}
	return out
}
