// Package messages holds the user-facing text of the console games.
//
// Text is looked up by symbolic key through an x/text catalog so the game
// code never carries literal strings.
package messages

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// BaseLocale is the locale every key is registered in.
var BaseLocale = language.English

// Message keys.
const (
	Welcome       = "guess.welcome"
	ComputerReady = "guess.computer_ready"
	YouChose      = "guess.you_chose"
	YouWin        = "guess.win"
	YouLose       = "guess.lose"
	Tie           = "guess.tie"
	InvalidChoice = "guess.invalid_choice"
)

var english = map[string]string{
	Welcome:       "Welcome to the Guessing Game!",
	ComputerReady: "Computer has chose now it's your turn!",
	YouChose:      "You chose: %s",
	YouWin:        "You win!",
	YouLose:       "You lose!",
	Tie:           "It's a tie!",
	InvalidChoice: "Invalid choice. Please choose rock, paper, or scissors.",
}

var defaultCatalog = mustBuild()

// Keys returns every registered key.
func Keys() []string {
	out := make([]string, 0, len(english))
	for k := range english {
		out = append(out, k)
	}
	return out
}

// NewPrinter returns a printer bound to the game catalog.
func NewPrinter() *message.Printer {
	return message.NewPrinter(BaseLocale, message.Catalog(defaultCatalog))
}

func mustBuild() *catalog.Builder {
	b, err := build()
	if err != nil {
		panic(err)
	}
	return b
}

func build() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(BaseLocale))
	for key, msg := range english {
		if err := b.SetString(BaseLocale, key, msg); err != nil {
			return nil, fmt.Errorf("register %s: %w", key, err)
		}
	}
	return b, nil
}
