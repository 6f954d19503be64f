package diceservice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/dicer/internal/core/dice"
	apperrors "github.com/louisbranch/dicer/internal/platform/errors"
	"github.com/louisbranch/dicer/internal/services/dice/roller"
	"google.golang.org/protobuf/types/known/structpb"
)

// Payload field names.
const (
	fieldExpression = "expression"
	fieldNormalized = "normalized"
	fieldTerms      = "terms"
	fieldSeed       = "seed"
	fieldSeedSource = "seed_source"
	fieldTotal      = "total"
	fieldMinimum    = "minimum"
	fieldMaximum    = "maximum"
	fieldRolls      = "rolls"
	fieldTerm       = "term"
	fieldResults    = "results"
)

func stringField(in *structpb.Struct, name string) string {
	return in.GetFields()[name].GetStringValue()
}

func hasField(in *structpb.Struct, name string) bool {
	_, ok := in.GetFields()[name]
	return ok
}

func int64Field(in *structpb.Struct, name string) (int64, error) {
	raw := strings.TrimSpace(stringField(in, name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", name, err)
	}
	return value, nil
}

func stringList(values []string) []any {
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = v
	}
	return list
}

func readStringList(in *structpb.Struct, name string) []string {
	values := in.GetFields()[name].GetListValue().GetValues()
	list := make([]string, 0, len(values))
	for _, v := range values {
		list = append(list, v.GetStringValue())
	}
	return list
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// encodeRollRequest builds the Roll request payload.
func encodeRollRequest(req roller.Request) (*structpb.Struct, error) {
	payload := map[string]any{fieldExpression: req.Expression}
	if req.Seed != nil {
		payload[fieldSeed] = formatInt64(*req.Seed)
	}
	return structpb.NewStruct(payload)
}

// decodeRollRequest reads a Roll request payload.
func decodeRollRequest(in *structpb.Struct) (roller.Request, error) {
	req := roller.Request{Expression: stringField(in, fieldExpression)}
	if !hasField(in, fieldSeed) {
		return req, nil
	}
	seed, err := int64Field(in, fieldSeed)
	if err != nil {
		return roller.Request{}, apperrors.Wrap(apperrors.CodeSeedInvalid, "invalid seed", err)
	}
	req.Seed = &seed
	return req, nil
}

// encodeRollResponse builds the Roll response payload.
func encodeRollResponse(result roller.Result) (*structpb.Struct, error) {
	rolls := make([]any, 0, len(result.Outcome.Rolls))
	for _, roll := range result.Outcome.Rolls {
		results := make([]any, len(roll.Results))
		for i, v := range roll.Results {
			results[i] = v
		}
		rolls = append(rolls, map[string]any{
			fieldTerm:    roll.Entity.String(),
			fieldResults: results,
			fieldTotal:   formatInt64(roll.Total),
		})
	}
	return structpb.NewStruct(map[string]any{
		fieldExpression: result.Expression,
		fieldNormalized: result.Normalized,
		fieldTerms:      stringList(result.Terms),
		fieldSeed:       formatInt64(result.Seed),
		fieldSeedSource: string(result.SeedSource),
		fieldTotal:      formatInt64(result.Outcome.Total),
		fieldMinimum:    formatInt64(result.Outcome.Minimum),
		fieldMaximum:    formatInt64(result.Outcome.Maximum),
		fieldRolls:      rolls,
	})
}

// decodeRollResponse reads a Roll response payload.
func decodeRollResponse(in *structpb.Struct) (roller.Result, error) {
	result := roller.Result{
		Expression: stringField(in, fieldExpression),
		Normalized: stringField(in, fieldNormalized),
		Terms:      readStringList(in, fieldTerms),
		SeedSource: roller.SeedSource(stringField(in, fieldSeedSource)),
	}
	var err error
	if result.Seed, err = int64Field(in, fieldSeed); err != nil {
		return roller.Result{}, err
	}
	if result.Outcome.Total, err = int64Field(in, fieldTotal); err != nil {
		return roller.Result{}, err
	}
	if result.Outcome.Minimum, err = int64Field(in, fieldMinimum); err != nil {
		return roller.Result{}, err
	}
	if result.Outcome.Maximum, err = int64Field(in, fieldMaximum); err != nil {
		return roller.Result{}, err
	}

	for _, value := range in.GetFields()[fieldRolls].GetListValue().GetValues() {
		rollPayload := value.GetStructValue()
		entity, err := dice.ParseTerm(stringField(rollPayload, fieldTerm))
		if err != nil {
			return roller.Result{}, fmt.Errorf("field %s: %w", fieldRolls, err)
		}
		total, err := int64Field(rollPayload, fieldTotal)
		if err != nil {
			return roller.Result{}, err
		}
		draws := rollPayload.GetFields()[fieldResults].GetListValue().GetValues()
		results := make([]int, len(draws))
		for i, draw := range draws {
			results[i] = int(draw.GetNumberValue())
		}
		result.Outcome.Rolls = append(result.Outcome.Rolls, dice.TermRoll{
			Entity:  entity,
			Results: results,
			Total:   total,
		})
	}
	return result, nil
}

// encodeNormalizeResponse builds the Normalize response payload.
func encodeNormalizeResponse(normalized string, terms []string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		fieldNormalized: normalized,
		fieldTerms:      stringList(terms),
	})
}
