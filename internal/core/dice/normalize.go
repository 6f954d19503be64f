package dice

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a raw dice expression.
//
// Whitespace is removed, dice markers are lowercased, omitted dice counts
// become an explicit 1 and trailing operators are dropped, so
// "D6 + 3 -" normalizes to "1d6+3". A dice marker must be followed by a side
// count starting with 1-9.
//
// Two digit runs separated only by whitespace ("1d6 2d4") are rejected with
// MalformedTerm rather than merged into one number.
func Normalize(input string) (string, error) {
	for _, r := range input {
		if !allowedRune(r) {
			return "", parseError(InvalidCharacter, string(r))
		}
	}
	expr, err := stripWhitespace(input)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(expr) + 2)
	var prev byte
	emit := func(c byte) {
		b.WriteByte(c)
		prev = c
	}
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if !isDiceMarker(c) {
			emit(c)
			continue
		}
		if !isDigit(prev) {
			emit('1')
		}
		emit('d')
		if i+1 >= len(expr) || expr[i+1] < '1' || expr[i+1] > '9' {
			return "", parseError(InvalidDiceType, diceDeclaration(expr, i))
		}
	}

	return strings.TrimRight(b.String(), "+-"), nil
}

// stripWhitespace removes whitespace from an already validated expression.
func stripWhitespace(input string) (string, error) {
	var b strings.Builder
	b.Grow(len(input))
	last := -1
	gap := false
	for i, r := range input {
		if unicode.IsSpace(r) {
			gap = last >= 0
			continue
		}
		c := byte(r)
		if gap && isDigit(c) && isDigit(input[last]) {
			return "", parseError(MalformedTerm, input[last:i+1])
		}
		gap = false
		last = i
		b.WriteByte(c)
	}
	return b.String(), nil
}

// diceDeclaration returns the marker at i plus the character that follows it.
func diceDeclaration(expr string, i int) string {
	end := i + 2
	if end > len(expr) {
		end = len(expr)
	}
	return expr[i:end]
}

func allowedRune(r rune) bool {
	if r < unicode.MaxASCII && (isDigit(byte(r)) || isDiceMarker(byte(r)) || isOperator(byte(r))) {
		return true
	}
	return unicode.IsSpace(r)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDiceMarker(c byte) bool {
	return c == 'd' || c == 'D'
}

func isOperator(c byte) bool {
	return c == '+' || c == '-'
}
