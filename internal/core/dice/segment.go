package dice

import "strings"

// Segment splits a normalized expression into signed terms.
//
// Each operator closes the term before it and sets the sign of the next one;
// a leading unsigned term is positive. Consecutive operators keep only the
// last sign, so "1d6+-2" yields ["+1d6", "-2"].
//
//	Segment("2d6+3-1d4") // ["+2d6", "+3", "-1d4"]
func Segment(normalized string) []string {
	terms := make([]string, 0, strings.Count(normalized, "+")+strings.Count(normalized, "-")+1)
	sign := byte('+')
	var term strings.Builder
	flush := func() {
		if term.Len() == 0 {
			return
		}
		terms = append(terms, string(sign)+term.String())
		term.Reset()
	}

	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		if isOperator(c) {
			flush()
			sign = c
			continue
		}
		term.WriteByte(c)
	}
	flush()

	return terms
}
