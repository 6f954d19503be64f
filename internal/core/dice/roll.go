package dice

import (
	"fmt"
	"log/slog"

	"github.com/louisbranch/dicer/internal/random"
)

// DefaultMaxDice caps the number of dice a single expression may roll.
const DefaultMaxDice = 10000

// Option configures Roll.
type Option func(*options)

type options struct {
	source  Source
	logger  *slog.Logger
	maxDice uint64
}

// WithSource rolls with src instead of a freshly seeded source.
func WithSource(src Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithLogger receives debug records for each pipeline stage.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxDice overrides DefaultMaxDice. Zero disables the limit.
func WithMaxDice(n uint64) Option {
	return func(o *options) {
		o.maxDice = n
	}
}

// Roll normalizes, segments, parses and evaluates expression.
//
// No die is drawn unless the whole expression is valid. Without WithSource,
// Roll seeds a private source from crypto/rand.
//
// Example:
//
//	outcome, err := Roll("2d6+3")
//	// outcome.Minimum == 5, outcome.Maximum == 15
func Roll(expression string, opts ...Option) (Outcome, error) {
	o := options{logger: discardLogger, maxDice: DefaultMaxDice}
	for _, opt := range opts {
		opt(&o)
	}

	entities, err := parse(expression, o.logger)
	if err != nil {
		return Outcome{}, err
	}
	if err := checkDiceCount(entities, o.maxDice); err != nil {
		return Outcome{}, err
	}

	src := o.source
	if src == nil {
		seed, err := random.NewSeed()
		if err != nil {
			return Outcome{}, fmt.Errorf("seed dice source: %w", err)
		}
		src = NewSource(seed)
	}
	return evaluate(entities, src, o.logger), nil
}

// Parse validates expression and returns its entities without rolling.
// An expression with no terms is a MalformedTerm error.
func Parse(expression string) ([]Entity, error) {
	return parse(expression, discardLogger)
}

func parse(expression string, logger *slog.Logger) ([]Entity, error) {
	normalized, err := Normalize(expression)
	if err != nil {
		return nil, err
	}
	terms := Segment(normalized)
	if len(terms) == 0 {
		return nil, parseError(MalformedTerm, expression)
	}
	logger.Debug("expression segmented",
		slog.String("input", expression),
		slog.String("normalized", normalized),
		slog.Any("terms", terms),
	)
	return ParseTerms(terms)
}

func checkDiceCount(entities []Entity, limit uint64) error {
	if limit == 0 {
		return nil
	}
	var count uint64
	for _, entity := range entities {
		if entity.Kind != KindDice {
			continue
		}
		count += uint64(entity.Count)
		if count > limit {
			return &ParseError{
				Kind:  TooManyDice,
				Input: entity.String(),
				Err:   fmt.Errorf("expression rolls more than %d dice", limit),
			}
		}
	}
	return nil
}
