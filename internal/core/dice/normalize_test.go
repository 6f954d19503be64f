package dice

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "multiple dice", input: "3d6+2+1d6-1-1d8+3", want: "3d6+2+1d6-1-1d8+3"},
		{name: "uppercase and spaces", input: "1D20 + 2d4 - 1D6", want: "1d20+2d4-1d6"},
		{name: "trailing operator", input: "2d10-", want: "2d10"},
		{name: "trailing operators", input: "2d10+-", want: "2d10"},
		{name: "space inside dice", input: "2d 6 + 3 - 1", want: "2d6+3-1"},
		{name: "negative modifiers", input: "1d8-2-3", want: "1d8-2-3"},
		{name: "positive modifiers", input: "1d8+2+3", want: "1d8+2+3"},
		{name: "implicit leading count", input: "d6+3", want: "1d6+3"},
		{name: "implicit leading count uppercase", input: "D20", want: "1d20"},
		{name: "implicit count after operator", input: "2+D8", want: "2+1d8"},
		{name: "implicit count negative", input: "-d4", want: "-1d4"},
		{name: "leading whitespace before marker", input: "\t d20\n", want: "1d20"},
		{name: "multi digit sides", input: "1d100", want: "1d100"},
		{name: "zero inside sides", input: "2d60", want: "2d60"},
		{name: "constant only", input: "7", want: "7"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "operator only", input: "+", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantInput string
	}{
		{name: "letters", input: "not a valid dice roll", wantErr: ErrInvalidCharacter, wantInput: "n"},
		{name: "symbol", input: "2d6$+3", wantErr: ErrInvalidCharacter, wantInput: "$"},
		{name: "multiplication", input: "2d6*2", wantErr: ErrInvalidCharacter, wantInput: "*"},
		{name: "non ascii", input: "1d6+π", wantErr: ErrInvalidCharacter, wantInput: "π"},
		{name: "missing sides", input: "1d+4", wantErr: ErrInvalidDiceType, wantInput: "d+"},
		{name: "zero sides", input: "1d0", wantErr: ErrInvalidDiceType, wantInput: "d0"},
		{name: "leading zero sides", input: "1d06", wantErr: ErrInvalidDiceType, wantInput: "d0"},
		{name: "marker at end", input: "2d", wantErr: ErrInvalidDiceType, wantInput: "d"},
		{name: "double marker", input: "dd6", wantErr: ErrInvalidDiceType, wantInput: "dd"},
		{name: "uppercase zero sides", input: "1D0", wantErr: ErrInvalidDiceType, wantInput: "D0"},
		{name: "adjacent dice", input: "1d6 2d4", wantErr: ErrMalformedTerm, wantInput: "6 2"},
		{name: "split constant", input: "1 2", wantErr: ErrMalformedTerm, wantInput: "1 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Normalize(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if parseErr.Input != tt.wantInput {
				t.Fatalf("error input = %q, want %q", parseErr.Input, tt.wantInput)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"d6",
		"2d6 + 3 - d4",
		"1D20 + 2d4 - 1D6",
		"-d8--2",
		"10d10+",
		"4",
		"",
	}
	for _, input := range inputs {
		once, err := Normalize(input)
		if err != nil {
			t.Fatalf("Normalize(%q) error = %v", input, err)
		}
		twice, err := Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(%q) error = %v", once, err)
		}
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}
