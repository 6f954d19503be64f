package dice

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestParseTerm(t *testing.T) {
	tests := []struct {
		term string
		want Entity
	}{
		{term: "+1d6", want: NewDice(SignPositive, 1, 6)},
		{term: "-1d4", want: NewDice(SignNegative, 1, 4)},
		{term: "+2d8", want: NewDice(SignPositive, 2, 8)},
		{term: "+10d100", want: NewDice(SignPositive, 10, 100)},
		{term: "-3", want: NewConstant(SignNegative, 3)},
		{term: "+2", want: NewConstant(SignPositive, 2)},
		{term: "+0", want: NewConstant(SignPositive, 0)},
		{term: "+4294967295", want: NewConstant(SignPositive, 4294967295)},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got, err := ParseTerm(tt.term)
			if err != nil {
				t.Fatalf("ParseTerm(%q) error = %v", tt.term, err)
			}
			if got != tt.want {
				t.Fatalf("ParseTerm(%q) = %+v, want %+v", tt.term, got, tt.want)
			}
			if got.String() != tt.term {
				t.Fatalf("String() = %q, want %q", got.String(), tt.term)
			}
		})
	}
}

func TestParseTermErrors(t *testing.T) {
	terms := []string{
		"",
		"+",
		"1d6",
		"*3",
		"+1d",
		"+d6",
		"+1d62d4",
		"+1x",
		"+1 2",
		"+0d6",
		"+1d0",
		"+4294967296",
		"+1d4294967296",
	}

	for _, term := range terms {
		t.Run(term, func(t *testing.T) {
			_, err := ParseTerm(term)
			if !errors.Is(err, ErrMalformedTerm) {
				t.Fatalf("ParseTerm(%q) error = %v, want %v", term, err, ErrMalformedTerm)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if parseErr.Input != term {
				t.Fatalf("error input = %q, want %q", parseErr.Input, term)
			}
		})
	}
}

func TestParseTermOverflowKeepsCause(t *testing.T) {
	_, err := ParseTerm("+99999999999")
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected *strconv.NumError in chain, got %v", err)
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestParseTerms(t *testing.T) {
	got, err := ParseTerms([]string{"+1d20", "+2", "+3", "+1d6", "+1d6", "-2"})
	if err != nil {
		t.Fatalf("ParseTerms() error = %v", err)
	}
	want := []Entity{
		NewDice(SignPositive, 1, 20),
		NewConstant(SignPositive, 2),
		NewConstant(SignPositive, 3),
		NewDice(SignPositive, 1, 6),
		NewDice(SignPositive, 1, 6),
		NewConstant(SignNegative, 2),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseTerms() = %+v, want %+v", got, want)
	}

	if _, err := ParseTerms([]string{"+1d6", "+x"}); !errors.Is(err, ErrMalformedTerm) {
		t.Fatalf("expected malformed term error, got %v", err)
	}
}

func TestParseDeterministic(t *testing.T) {
	inputs := []string{"2d6+3-1d4", "d20 + 5 - 2", "-d8-d8+1", "12"}
	for _, input := range inputs {
		normalized, err := Normalize(input)
		if err != nil {
			t.Fatalf("Normalize(%q) error = %v", input, err)
		}
		first, err := ParseTerms(Segment(normalized))
		if err != nil {
			t.Fatalf("ParseTerms(%q) error = %v", normalized, err)
		}
		second, err := ParseTerms(Segment(normalized))
		if err != nil {
			t.Fatalf("ParseTerms(%q) error = %v", normalized, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("parse not deterministic for %q: %+v vs %+v", input, first, second)
		}

		rendered := make([]string, 0, len(first))
		for _, entity := range first {
			rendered = append(rendered, entity.String())
		}
		if !reflect.DeepEqual(rendered, Segment(normalized)) {
			t.Fatalf("rendered terms %q, want %q", rendered, Segment(normalized))
		}
	}
}
