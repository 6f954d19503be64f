package dice

import (
	"io"
	"log/slog"
)

// Outcome is the evaluated result of an expression.
//
// Minimum <= Total <= Maximum always holds.
type Outcome struct {
	Total   int64
	Minimum int64
	Maximum int64
	// Rolls lists the individual draws for each dice term, in expression order.
	Rolls []TermRoll
}

// TermRoll captures the draws made for one dice entity.
type TermRoll struct {
	Entity  Entity
	Results []int
	// Total is the signed contribution of the term.
	Total int64
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Evaluate rolls every dice entity with src and accumulates the outcome.
// Entities are assumed valid; use ParseTerm or Parse to build them.
func Evaluate(entities []Entity, src Source) Outcome {
	return evaluate(entities, src, discardLogger)
}

func evaluate(entities []Entity, src Source, logger *slog.Logger) Outcome {
	var outcome Outcome
	for _, entity := range entities {
		minimum, maximum := entity.bounds()
		outcome.Minimum += minimum
		outcome.Maximum += maximum

		if entity.Kind == KindConstant {
			outcome.Total += entity.Sign.apply(int64(entity.Value))
			continue
		}

		results := make([]int, entity.Count)
		var sum int64
		for i := range results {
			value := rollDie(src, entity.Sides)
			results[i] = value
			sum += int64(value)
		}
		total := entity.Sign.apply(sum)
		outcome.Total += total
		outcome.Rolls = append(outcome.Rolls, TermRoll{
			Entity:  entity,
			Results: results,
			Total:   total,
		})
		logger.Debug("dice term rolled",
			slog.String("term", entity.String()),
			slog.Any("results", results),
			slog.Int64("total", total),
		)
	}
	logger.Debug("expression evaluated",
		slog.Int64("total", outcome.Total),
		slog.Int64("minimum", outcome.Minimum),
		slog.Int64("maximum", outcome.Maximum),
	)
	return outcome
}
