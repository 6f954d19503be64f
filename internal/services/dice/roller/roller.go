// Package roller runs dice expressions on behalf of the transport layers.
//
// It owns seed resolution and maps expression errors to platform error codes
// so the gRPC service, the MCP tools and the CLI all report the same failures.
package roller

import (
	"context"
	"log/slog"
	"strings"

	"github.com/louisbranch/dicer/internal/core/dice"
	apperrors "github.com/louisbranch/dicer/internal/platform/errors"
	platformotel "github.com/louisbranch/dicer/internal/platform/otel"
	"github.com/louisbranch/dicer/internal/random"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/dicer/internal/services/dice/roller"

// SeedSource reports where the seed used for a roll came from.
type SeedSource string

const (
	// SeedSourceClient marks a seed supplied with the request.
	SeedSourceClient SeedSource = "CLIENT"
	// SeedSourceServer marks a seed generated for the request.
	SeedSourceServer SeedSource = "SERVER"
)

// Request is a single roll request.
type Request struct {
	Expression string
	// Seed replays a previous roll when set.
	Seed *int64
}

// Result describes a completed roll.
type Result struct {
	Expression string
	Normalized string
	Terms      []string
	Seed       int64
	SeedSource SeedSource
	Outcome    dice.Outcome
}

// Option configures a Roller.
type Option func(*Roller)

// WithMaxDice caps the dice rolled per expression. Zero disables the cap.
func WithMaxDice(n uint64) Option {
	return func(r *Roller) {
		r.maxDice = n
	}
}

// WithLogger forwards pipeline debug records to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Roller) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Roller rolls expressions with a fresh source per call and is safe for
// concurrent use.
type Roller struct {
	maxDice uint64
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New creates a Roller.
func New(opts ...Option) *Roller {
	r := &Roller{maxDice: dice.DefaultMaxDice}
	for _, opt := range opts {
		opt(r)
	}
	r.tracer = platformotel.Tracer(tracerName)
	return r
}

// Roll validates and evaluates req.Expression.
func (r *Roller) Roll(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := r.tracer.Start(ctx, "dice.Roll", trace.WithAttributes(
		attribute.String("dice.expression", req.Expression),
	))
	defer span.End()

	result, err := r.roll(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return Result{}, err
	}
	span.SetAttributes(
		attribute.String("dice.normalized", result.Normalized),
		attribute.Int64("dice.seed", result.Seed),
		attribute.String("dice.seed_source", string(result.SeedSource)),
		attribute.Int64("dice.total", result.Outcome.Total),
	)
	return result, nil
}

func (r *Roller) roll(req Request) (Result, error) {
	expression := strings.TrimSpace(req.Expression)
	if expression == "" {
		return Result{}, apperrors.New(apperrors.CodeExpressionMissing, "expression is required")
	}

	normalized, err := dice.Normalize(expression)
	if err != nil {
		return Result{}, FromParseError(err)
	}

	seed, fromClient, err := random.ResolveSeed(req.Seed)
	if err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeUnknown, "resolve seed", err)
	}
	seedSource := SeedSourceServer
	if fromClient {
		seedSource = SeedSourceClient
	}

	opts := []dice.Option{
		dice.WithSource(dice.NewSource(seed)),
		dice.WithMaxDice(r.maxDice),
	}
	if r.logger != nil {
		opts = append(opts, dice.WithLogger(r.logger))
	}
	outcome, err := dice.Roll(normalized, opts...)
	if err != nil {
		return Result{}, FromParseError(err)
	}

	return Result{
		Expression: req.Expression,
		Normalized: normalized,
		Terms:      dice.Segment(normalized),
		Seed:       seed,
		SeedSource: seedSource,
		Outcome:    outcome,
	}, nil
}

// Normalize returns the canonical form of expression and its signed terms.
func (r *Roller) Normalize(ctx context.Context, expression string) (string, []string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := r.tracer.Start(ctx, "dice.Normalize", trace.WithAttributes(
		attribute.String("dice.expression", expression),
	))
	defer span.End()

	if strings.TrimSpace(expression) == "" {
		err := apperrors.New(apperrors.CodeExpressionMissing, "expression is required")
		span.SetStatus(otelcodes.Error, err.Error())
		return "", nil, err
	}
	normalized, err := dice.Normalize(expression)
	if err != nil {
		err = FromParseError(err)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return "", nil, err
	}
	span.SetAttributes(attribute.String("dice.normalized", normalized))
	return normalized, dice.Segment(normalized), nil
}
