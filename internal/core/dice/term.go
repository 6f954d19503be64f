package dice

import (
	"strconv"
	"strings"
)

// ParseTerm converts one signed term ("+2d6", "-3") into an Entity.
//
// The body must contain only digits and at most one dice marker. Dice terms
// need a count and side value of at least 1; every number must fit in 32 bits.
func ParseTerm(term string) (Entity, error) {
	if len(term) < 2 {
		return Entity{}, parseError(MalformedTerm, term)
	}
	var sign Sign
	switch term[0] {
	case '+':
		sign = SignPositive
	case '-':
		sign = SignNegative
	default:
		return Entity{}, parseError(MalformedTerm, term)
	}

	body := term[1:]
	for i := 0; i < len(body); i++ {
		if !isDigit(body[i]) && body[i] != 'd' {
			return Entity{}, parseError(MalformedTerm, term)
		}
	}

	countText, sidesText, isDice := strings.Cut(body, "d")
	if !isDice {
		value, err := parseNumber(term, body)
		if err != nil {
			return Entity{}, err
		}
		return NewConstant(sign, value), nil
	}

	count, err := parseNumber(term, countText)
	if err != nil {
		return Entity{}, err
	}
	sides, err := parseNumber(term, sidesText)
	if err != nil {
		return Entity{}, err
	}
	if count == 0 || sides == 0 {
		return Entity{}, parseError(MalformedTerm, term)
	}
	return NewDice(sign, count, sides), nil
}

// ParseTerms parses every term, stopping at the first failure.
func ParseTerms(terms []string) ([]Entity, error) {
	entities := make([]Entity, 0, len(terms))
	for _, term := range terms {
		entity, err := ParseTerm(term)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func parseNumber(term, digits string) (uint32, error) {
	if digits == "" {
		return 0, parseError(MalformedTerm, term)
	}
	value, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, &ParseError{Kind: MalformedTerm, Input: term, Err: err}
	}
	return uint32(value), nil
}
