package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
	"github.com/lox/twentyone/internal/tui"
)

type PlayCmd struct {
	Config string `default:"table.hcl" help:"Table configuration file (HCL)"`
	Seed   int64  `default:"0" help:"RNG seed (0 for random)"`
	Debug  bool   `help:"Write engine debug logs to twentyone.log"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// The engine log cannot share the terminal with the TUI, so debug
	// output goes to a file.
	logger := log.New(io.Discard)
	if c.Debug {
		f, err := os.OpenFile("twentyone.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{Level: log.DebugLevel})
	}

	rng := randutil.New(seed)
	shoe := deck.NewShoe(rng, cfg.Table.Decks)
	shoe.Shuffle()

	agent := tui.NewAgent(cfg.Table.Bet)
	dealer := game.NewDealer(shoe, cfg.GameRules(), agent,
		game.WithLogger(logger),
		game.WithRNG(rng),
		game.WithAutoReshuffle(cfg.Table.Decks, cfg.Table.ReshuffleThreshold))
	for _, p := range cfg.Table.Players {
		dealer.AddPlayer(game.NewPlayer(p.Name, p.Chips))
	}

	return tui.New(dealer, agent, logger).Run()
}
