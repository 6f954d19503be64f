// Package errors provides structured error handling for transport layers.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Expression errors
	CodeDiceInvalidCharacter Code = "DICE_INVALID_CHARACTER"
	CodeDiceInvalidType      Code = "DICE_INVALID_TYPE"
	CodeDiceMalformedTerm    Code = "DICE_MALFORMED_TERM"
	CodeDiceTooMany          Code = "DICE_TOO_MANY"

	// Request errors
	CodeExpressionMissing Code = "EXPRESSION_MISSING"
	CodeSeedInvalid       Code = "SEED_INVALID"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeDiceInvalidCharacter,
		CodeDiceInvalidType,
		CodeDiceMalformedTerm,
		CodeDiceTooMany,
		CodeExpressionMissing,
		CodeSeedInvalid:
		return codes.InvalidArgument

	default:
		return codes.Internal
	}
}

// UserMessage returns the user-facing description for the code.
func (c Code) UserMessage() string {
	switch c {
	case CodeDiceInvalidCharacter:
		return "The expression may only contain digits, d, +, - and spaces."
	case CodeDiceInvalidType:
		return "Every d must be followed by a number of sides of at least 1."
	case CodeDiceMalformedTerm:
		return "The expression contains a term that is not a number or a dice roll."
	case CodeDiceTooMany:
		return "The expression rolls too many dice."
	case CodeExpressionMissing:
		return "A dice expression is required."
	case CodeSeedInvalid:
		return "The seed must be an integer."
	default:
		return "An unexpected error occurred."
	}
}
