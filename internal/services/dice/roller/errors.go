package roller

import (
	"errors"

	"github.com/louisbranch/dicer/internal/core/dice"
	apperrors "github.com/louisbranch/dicer/internal/platform/errors"
)

// TermMetadataKey names the error metadata entry holding the offending term.
const TermMetadataKey = "Term"

// FromParseError maps a *dice.ParseError to a platform error carrying the
// offending term as metadata. Other errors are wrapped as CodeUnknown.
func FromParseError(err error) error {
	if err == nil {
		return nil
	}
	var parseErr *dice.ParseError
	if !errors.As(err, &parseErr) {
		return apperrors.Wrap(apperrors.CodeUnknown, err.Error(), err)
	}
	return apperrors.WrapWithMetadata(
		codeForKind(parseErr.Kind),
		parseErr.Error(),
		map[string]string{TermMetadataKey: parseErr.Input},
		parseErr,
	)
}

func codeForKind(kind dice.ErrorKind) apperrors.Code {
	switch kind {
	case dice.InvalidCharacter:
		return apperrors.CodeDiceInvalidCharacter
	case dice.InvalidDiceType:
		return apperrors.CodeDiceInvalidType
	case dice.TooManyDice:
		return apperrors.CodeDiceTooMany
	default:
		return apperrors.CodeDiceMalformedTerm
	}
}
