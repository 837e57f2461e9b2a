// internal/rps/engine.go
//
// Decision logic for a single rock-paper-scissors round.
// Responsibilities:
//   - Draw the computer's choice uniformly from the vocabulary.
//   - Normalize raw console text (trim, lowercase).
//   - Parse normalized text into a Choice.
//   - Resolve two choices into Win/Lose/Tie.
//
// Notes:
//   - Everything here is pure apart from Draw, which consumes the Source.
//   - beats is a three-cycle: every pair of distinct choices has one winner.

package rps

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/roshambo/internal/rng"
)

// beats maps each choice to the one it defeats.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// Draw returns a uniformly random choice.
func Draw(src rng.Source) Choice {
	return Choices[src.IntN(len(Choices))]
}

// Normalize trims surrounding whitespace, line terminator included, and
// lowercases the rest. Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(raw))
}

// ParseChoice maps a normalized label to its Choice.
// The second result is false for anything outside the vocabulary; this is an
// expected outcome, not an error.
func ParseChoice(normalized string) (Choice, bool) {
	c := Choice(normalized)
	if _, ok := beats[c]; !ok {
		return "", false
	}
	return c, true
}

// Resolve decides the round from the player's perspective.
func Resolve(player, computer Choice) Outcome {
	switch {
	case player == computer:
		return Tie
	case beats[player] == computer:
		return Win
	default:
		return Lose
	}
}
