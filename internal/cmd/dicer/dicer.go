// Package dicer parses the dice CLI flags and prints roll results.
package dicer

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strconv"
	"strings"

	entrypoint "github.com/louisbranch/dicer/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/dicer/internal/platform/grpc"
	"github.com/louisbranch/dicer/internal/platform/timeouts"
	"github.com/louisbranch/dicer/internal/services/dice/api/grpc/diceservice"
	"github.com/louisbranch/dicer/internal/services/dice/roller"
)

type diceRoller interface {
	Roll(ctx context.Context, req roller.Request) (roller.Result, error)
}

// Config holds dicer command configuration.
type Config struct {
	Expression string
	Verbose    bool
	Debug      bool
	Output     string
	// Seed replays a roll when set.
	Seed    *int64
	Addr    string `env:"DICER_ADDR"`
	MaxDice uint64 `env:"DICER_MAX_DICE" envDefault:"10000"`
}

// ParseConfig parses environment and flags into Config. The expression may be
// given with -d/-dicer or as positional arguments.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	var seed string
	fs.StringVar(&cfg.Expression, "d", "", "The string expression of the dice roll (shorthand)")
	fs.StringVar(&cfg.Expression, "dicer", "", "The string expression of the dice roll")
	fs.BoolVar(&cfg.Verbose, "v", false, "Prints more details (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Prints more details")
	fs.BoolVar(&cfg.Debug, "debug", false, "Log pipeline stages to stderr")
	fs.StringVar(&cfg.Output, "output", OutputText, "Output format: text, json or yaml")
	fs.StringVar(&seed, "seed", "", "Seed to replay a previous roll")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Dice server address; empty rolls locally")
	fs.Uint64Var(&cfg.MaxDice, "max-dice", cfg.MaxDice, "Maximum dice per expression (0 disables the limit)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.Expression == "" && fs.NArg() > 0 {
		cfg.Expression = strings.Join(fs.Args(), " ")
	}
	if strings.TrimSpace(cfg.Expression) == "" {
		return Config{}, errors.New("a dice expression is required (-d \"2d6+3\")")
	}
	if !validOutput(cfg.Output) {
		return Config{}, fmt.Errorf("output %q is not supported", cfg.Output)
	}
	if seed != "" {
		value, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse seed %q: %w", seed, err)
		}
		cfg.Seed = &value
	}
	return cfg, nil
}

// Run rolls cfg.Expression locally or on a dice server and writes the result
// to out. Debug records go to errOut.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDicer, func(ctx context.Context) error {
		r, closeFn, err := newRoller(ctx, cfg, errOut)
		if err != nil {
			return err
		}
		defer closeFn()

		rollCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()
		result, err := r.Roll(rollCtx, roller.Request{Expression: cfg.Expression, Seed: cfg.Seed})
		if err != nil {
			return err
		}
		return writeResult(out, cfg.Output, cfg.Verbose, result)
	})
}

func newRoller(ctx context.Context, cfg Config, errOut io.Writer) (diceRoller, func(), error) {
	if cfg.Addr == "" {
		opts := []roller.Option{roller.WithMaxDice(cfg.MaxDice)}
		if cfg.Debug {
			opts = append(opts, roller.WithLogger(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))))
		}
		return roller.New(opts...), func() {}, nil
	}

	logf := func(format string, args ...any) {
		if cfg.Debug {
			log.Printf("dice %s", fmt.Sprintf(format, args...))
		}
	}
	conn, err := platformgrpc.DialWithHealth(ctx, cfg.Addr, diceservice.ServiceName, timeouts.GRPCDial, logf)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to dice server at %s: %w", cfg.Addr, err)
	}
	closeFn := func() {
		if err := conn.Close(); err != nil {
			log.Printf("close dice server connection: %v", err)
		}
	}
	return diceservice.NewClient(conn), closeFn, nil
}
