package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/roshambo/internal/config"
	"github.com/robalobadob/roshambo/internal/logger"
	"github.com/robalobadob/roshambo/internal/messages"
	"github.com/robalobadob/roshambo/internal/rng"
	"github.com/robalobadob/roshambo/internal/rps"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "guessgame: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg)

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to read player choice")
	}
}

// run plays one round. Invalid input is not an error.
func run(cfg config.Config, in io.Reader, out io.Writer) error {
	g := rps.NewGame(rng.New(cfg.Seed), out, messages.NewPrinter())
	r, err := g.Play(in)
	if err != nil {
		return err
	}
	if r != nil {
		log.Info().Str("outcome", string(r.Outcome)).Msg("round finished")
	}
	return nil
}
