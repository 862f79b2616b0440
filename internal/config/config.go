// Package config loads table and house-rule configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/twentyone/internal/game"
)

// Config represents the complete table configuration
type Config struct {
	Table *TableSettings `hcl:"table,block"`
	Rules *RulesSettings `hcl:"rules,block"`
}

// TableSettings configures the table itself
type TableSettings struct {
	Decks              int            `hcl:"decks,optional"`
	Bet                int            `hcl:"bet,optional"`
	ReshuffleThreshold int            `hcl:"reshuffle_threshold,optional"`
	Players            []PlayerConfig `hcl:"player,block"`
}

// PlayerConfig seats one player with a starting bankroll
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Chips int    `hcl:"chips,optional"`
}

// RulesSettings overrides individual house rules. Pointer fields
// distinguish "not set" from an explicit false.
type RulesSettings struct {
	StandOnSoft17           *bool    `hcl:"stand_on_soft_17,optional"`
	BlackjackPayout         *float64 `hcl:"blackjack_payout,optional"`
	SplittingEnabled        *bool    `hcl:"splitting,optional"`
	DoublingEnabled         *bool    `hcl:"doubling,optional"`
	DoubleAfterSplitEnabled *bool    `hcl:"double_after_split,optional"`
}

// Default returns the configuration used when no file is present: a
// six-deck shoe, one player and the standard house rules.
func Default() *Config {
	return &Config{
		Table: &TableSettings{
			Decks:              6,
			Bet:                10,
			ReshuffleThreshold: 52,
			Players: []PlayerConfig{
				{Name: "Player", Chips: 1000},
			},
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults rather than an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Table == nil {
		config.Table = Default().Table
	}
	if config.Table.Decks == 0 {
		config.Table.Decks = 6
	}
	if config.Table.Bet == 0 {
		config.Table.Bet = 10
	}
	if config.Table.ReshuffleThreshold == 0 {
		config.Table.ReshuffleThreshold = 52
	}
	if len(config.Table.Players) == 0 {
		config.Table.Players = []PlayerConfig{{Name: "Player", Chips: 1000}}
	}
	for i := range config.Table.Players {
		if config.Table.Players[i].Chips == 0 {
			config.Table.Players[i].Chips = 1000
		}
	}

	return &config, nil
}

// GameRules converts the rules block into engine rules, with the
// standard rules filling any gap.
func (c *Config) GameRules() game.Rules {
	rules := game.DefaultRules()
	if c.Rules == nil {
		return rules
	}
	if c.Rules.StandOnSoft17 != nil {
		rules.StandOnSoft17 = *c.Rules.StandOnSoft17
	}
	if c.Rules.BlackjackPayout != nil {
		rules.BlackjackPayout = *c.Rules.BlackjackPayout
	}
	if c.Rules.SplittingEnabled != nil {
		rules.SplittingEnabled = *c.Rules.SplittingEnabled
	}
	if c.Rules.DoublingEnabled != nil {
		rules.DoublingEnabled = *c.Rules.DoublingEnabled
	}
	if c.Rules.DoubleAfterSplitEnabled != nil {
		rules.DoubleAfterSplitEnabled = *c.Rules.DoubleAfterSplitEnabled
	}
	return rules
}

// Validate validates the table configuration
func (c *Config) Validate() error {
	if c.Table == nil {
		return fmt.Errorf("table block is required")
	}
	if c.Table.Decks < 1 || c.Table.Decks > 8 {
		return fmt.Errorf("decks must be between 1 and 8, got %d", c.Table.Decks)
	}
	if c.Table.Bet <= 0 {
		return fmt.Errorf("bet must be positive, got %d", c.Table.Bet)
	}
	if c.Table.ReshuffleThreshold < 0 || c.Table.ReshuffleThreshold >= c.Table.Decks*52 {
		return fmt.Errorf("reshuffle threshold %d must be below the shoe size %d",
			c.Table.ReshuffleThreshold, c.Table.Decks*52)
	}
	if len(c.Table.Players) == 0 {
		return fmt.Errorf("at least one player must be configured")
	}

	seen := make(map[string]bool)
	for _, p := range c.Table.Players {
		if p.Name == "" {
			return fmt.Errorf("player name must not be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("player %s: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if p.Chips < c.Table.Bet {
			return fmt.Errorf("player %s: chips %d cannot cover the %d bet", p.Name, p.Chips, c.Table.Bet)
		}
	}

	if c.Rules != nil && c.Rules.BlackjackPayout != nil && *c.Rules.BlackjackPayout < 0 {
		return fmt.Errorf("blackjack payout must not be negative, got %v", *c.Rules.BlackjackPayout)
	}

	return nil
}
