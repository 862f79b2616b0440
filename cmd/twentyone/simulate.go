package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"

	"github.com/lox/twentyone/cmd/twentyone/shared"
	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/simulator"
)

type SimulateCmd struct {
	Rounds   int           `default:"100000" help:"Number of rounds to simulate"`
	Strategy string        `default:"basic" enum:"basic,threshold,random" help:"Strategy: basic, threshold, random"`
	Seed     int64         `default:"0" help:"RNG seed (0 for random)"`
	Config   string        `default:"table.hcl" help:"Table configuration file (HCL)"`
	Workers  int           `default:"0" help:"Worker count (0 for one per CPU)"`
	Timeout  time.Duration `default:"5s" help:"Per-round hang timeout"`
	Debug    bool          `help:"Verbose logging"`
	JSON     bool          `name:"json" help:"Structured JSON logs"`
}

func (c *SimulateCmd) Run() error {
	var logger zerolog.Logger
	if c.JSON {
		logger = shared.SetupStructuredLogger(c.Debug)
	} else {
		logger = shared.SetupLogger(c.Debug)
	}
	ctx := shared.SetupSignalHandler(logger)

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

	engineLogger := log.New(io.Discard)
	if c.Debug {
		engineLogger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	}

	sim := simulator.New(simulator.Config{
		Rounds:    c.Rounds,
		Strategy:  c.Strategy,
		Seed:      seed,
		Decks:     cfg.Table.Decks,
		Bet:       cfg.Table.Bet,
		Chips:     cfg.Table.Players[0].Chips,
		Workers:   c.Workers,
		Timeout:   c.Timeout,
		Rules:     cfg.GameRules(),
		Logger:    engineLogger,
		BotLogger: logger,
	})

	logger.Info().
		Int("rounds", c.Rounds).
		Str("strategy", c.Strategy).
		Int64("seed", seed).
		Msg("starting simulation")

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	duration := time.Since(start)

	logger.Info().
		Dur("duration", duration).
		Float64("rounds_per_sec", float64(stats.Rounds)/duration.Seconds()).
		Msg("simulation complete")

	fmt.Println()
	fmt.Print(stats.Summary())
	return nil
}
