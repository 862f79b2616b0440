// Package game implements the blackjack round engine: hand evaluation,
// house rules, and the dealer state machine that runs a complete round
// of betting, dealing, player turns, the dealer's draw and settlement.
//
// Player decisions are obtained through the Agent interface, so the
// engine is agnostic to whether it is driven by a human at a terminal,
// a scripted strategy or a test double.
package game
