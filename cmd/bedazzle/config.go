package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls the demo scenarios.
type Config struct {
	TurboLevel  int     `env:"BEDAZZLE_TURBO_LEVEL"  envDefault:"2"`
	Laps        int     `env:"BEDAZZLE_LAPS"         envDefault:"50"`
	TrackLength float64 `env:"BEDAZZLE_TRACK_LENGTH" envDefault:"5.8"`
	TrackTurns  int     `env:"BEDAZZLE_TRACK_TURNS"  envDefault:"18"`
	Verbose     bool    `env:"BEDAZZLE_VERBOSE"`
}

// LoadConfig reads the environment, then lets args override it.
func LoadConfig(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs := flag.NewFlagSet("bedazzle", flag.ContinueOnError)
	fs.IntVar(&cfg.TurboLevel, "turbo", cfg.TurboLevel, "Turbo upgrade level")
	fs.IntVar(&cfg.Laps, "laps", cfg.Laps, "Race laps for the pit stop strategy")
	fs.Float64Var(&cfg.TrackLength, "track-length", cfg.TrackLength, "Track length in kilometers")
	fs.IntVar(&cfg.TrackTurns, "track-turns", cfg.TrackTurns, "Number of turns of the track")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Log every decorator application to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
