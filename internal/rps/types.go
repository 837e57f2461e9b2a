// internal/rps/types.go
//
// Core type definitions for the rock-paper-scissors engine.
// Defines:
//   - Choice: one of the three hand shapes.
//   - Outcome: result of a round from the player's side.
//   - Round: one resolved player-versus-computer comparison.

package rps

// Choice is a hand shape, stored as its canonical lowercase label.
type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

// Choices is the closed, ordered vocabulary. Draw indexes into it.
var Choices = [...]Choice{Rock, Paper, Scissors}

// String returns the canonical label.
func (c Choice) String() string { return string(c) }

// Outcome is the result of a round for the player.
type Outcome string

const (
	Win  Outcome = "win"
	Lose Outcome = "lose"
	Tie  Outcome = "tie"
)

// Round pairs both choices with the resolved outcome.
// Rounds only exist for validated player input.
type Round struct {
	Player   Choice
	Computer Choice
	Outcome  Outcome
}
