// internal/rps/game.go
//
// Game runs one console round: greet, draw, read, validate, resolve, report.
// The computer's choice is drawn before the player's line is read.

package rps

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/message"

	"github.com/robalobadob/roshambo/internal/console"
	"github.com/robalobadob/roshambo/internal/messages"
	"github.com/robalobadob/roshambo/internal/rng"
)

// Game bundles the injected random source, output sink and text printer.
type Game struct {
	src rng.Source
	out io.Writer
	p   *message.Printer
}

// NewGame constructs a Game. A nil printer falls back to messages.NewPrinter.
func NewGame(src rng.Source, out io.Writer, p *message.Printer) *Game {
	if p == nil {
		p = messages.NewPrinter()
	}
	return &Game{src: src, out: out, p: p}
}

var outcomeKeys = map[Outcome]string{
	Win:  messages.YouWin,
	Lose: messages.YouLose,
	Tie:  messages.Tie,
}

// Play runs a single round reading the player's line from in.
//
// Returns:
//   - (*Round, nil) once an outcome has been printed.
//   - (nil, nil) if the line was not a valid choice; the guidance message is printed.
//   - (nil, err) if in could not be read; nothing further is printed.
func (g *Game) Play(in io.Reader) (*Round, error) {
	if err := g.say(messages.Welcome); err != nil {
		return nil, err
	}

	computer := Draw(g.src)
	log.Debug().Str("computer", computer.String()).Msg("computer choice drawn")
	if err := g.say(messages.ComputerReady); err != nil {
		return nil, err
	}

	line, err := console.ReadLine(in)
	if err != nil {
		return nil, err
	}

	normalized := Normalize(line)
	player, ok := ParseChoice(normalized)
	if !ok {
		log.Debug().Str("input", normalized).Msg("rejected player input")
		return nil, g.say(messages.InvalidChoice)
	}

	if err := g.say(messages.YouChose, player); err != nil {
		return nil, err
	}
	r := &Round{Player: player, Computer: computer, Outcome: Resolve(player, computer)}
	log.Debug().
		Str("player", r.Player.String()).
		Str("computer", r.Computer.String()).
		Str("outcome", string(r.Outcome)).
		Msg("round resolved")
	if err := g.say(outcomeKeys[r.Outcome]); err != nil {
		return nil, err
	}
	return r, nil
}

// say prints one catalog message followed by a newline.
func (g *Game) say(key string, args ...any) error {
	if _, err := fmt.Fprintln(g.out, g.p.Sprintf(key, args...)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
