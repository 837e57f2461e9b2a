package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/roshambo/internal/config"
	"github.com/robalobadob/roshambo/internal/logger"
	"github.com/robalobadob/roshambo/internal/randnum"
	"github.com/robalobadob/roshambo/internal/rng"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "randnum: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg)

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to print sample")
	}
}

func run(cfg config.Config, out io.Writer) error {
	s := randnum.Draw(rng.New(cfg.Seed))
	log.Debug().Uint64("seed", cfg.Seed).Msg("sample drawn")
	return s.Print(out)
}
