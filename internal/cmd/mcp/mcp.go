// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/dicer/internal/platform/cmd"
	mcpservice "github.com/louisbranch/dicer/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Addr      string `env:"DICER_ADDR"`
	HTTPAddr  string `env:"DICER_MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	Transport string `env:"DICER_MCP_TRANSPORT" envDefault:"stdio"`
	MaxDice   uint64 `env:"DICER_MAX_DICE"      envDefault:"10000"`

	// AuthSecret enables bearer token checks on the HTTP transport.
	AuthSecret     string `env:"DICER_MCP_JWT_SECRET"`
	MaxConnections int    `env:"DICER_MCP_MAX_CONNECTIONS" envDefault:"64"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "dice server address; empty rolls in-process")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.Uint64Var(&cfg.MaxDice, "max-dice", cfg.MaxDice, "Maximum dice per expression for in-process rolls")
	fs.IntVar(&cfg.MaxConnections, "max-connections", cfg.MaxConnections, "Maximum concurrent HTTP connections")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{
			GRPCAddr:  cfg.Addr,
			Transport: mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:  cfg.HTTPAddr,
			MaxDice:   cfg.MaxDice,

			AuthSecret:     cfg.AuthSecret,
			MaxConnections: cfg.MaxConnections,
		})
	})
}
