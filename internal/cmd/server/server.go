// Package server parses dice server flags and launches the gRPC service.
package server

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/dicer/internal/platform/cmd"
	diceserver "github.com/louisbranch/dicer/internal/services/dice/app"
)

// Config holds dice server command configuration.
type Config struct {
	Port int `env:"DICER_SERVER_PORT" envDefault:"8080"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The dice gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the dice gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(ctx context.Context) error {
		return diceserver.Run(ctx, cfg.Port)
	})
}
