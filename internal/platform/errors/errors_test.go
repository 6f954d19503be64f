package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCode(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{code: CodeDiceInvalidCharacter, want: codes.InvalidArgument},
		{code: CodeDiceInvalidType, want: codes.InvalidArgument},
		{code: CodeDiceMalformedTerm, want: codes.InvalidArgument},
		{code: CodeDiceTooMany, want: codes.InvalidArgument},
		{code: CodeExpressionMissing, want: codes.InvalidArgument},
		{code: CodeSeedInvalid, want: codes.InvalidArgument},
		{code: CodeUnknown, want: codes.Internal},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.GRPCCode(); got != tt.want {
				t.Fatalf("GRPCCode() = %v, want %v", got, tt.want)
			}
			if tt.code.UserMessage() == "" {
				t.Fatal("expected user message")
			}
		})
	}
}

func TestErrorIsMatchesCode(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(CodeDiceMalformedTerm, "bad term", cause)

	if !stderrors.Is(err, New(CodeDiceMalformedTerm, "other message")) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(err, New(CodeDiceInvalidType, "bad term")) {
		t.Fatal("expected different codes not to match")
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if err.Error() != "bad term" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("roll: %w", WithMetadata(CodeDiceTooMany, "too many", map[string]string{"Term": "+99d6"}))
	if got := CodeOf(wrapped); got != CodeDiceTooMany {
		t.Fatalf("CodeOf() = %q, want %q", got, CodeDiceTooMany)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf() = %q, want %q", got, CodeUnknown)
	}
}

func TestToGRPCStatus(t *testing.T) {
	err := WrapWithMetadata(CodeDiceInvalidCharacter, `invalid character "$"`, map[string]string{"Term": "$"}, nil)

	st, ok := status.FromError(err.ToGRPCStatus("en-US", ""))
	if !ok {
		t.Fatal("expected gRPC status")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", st.Code())
	}
	if st.Message() != `invalid character "$"` {
		t.Fatalf("message = %q", st.Message())
	}

	var info *errdetails.ErrorInfo
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			info = d
		case *errdetails.LocalizedMessage:
			localized = d
		}
	}
	if info == nil || info.GetReason() != string(CodeDiceInvalidCharacter) || info.GetDomain() != Domain {
		t.Fatalf("unexpected error info: %+v", info)
	}
	if info.GetMetadata()["Term"] != "$" {
		t.Fatalf("expected term metadata, got %v", info.GetMetadata())
	}
	if localized == nil || localized.GetMessage() != CodeDiceInvalidCharacter.UserMessage() {
		t.Fatalf("unexpected localized message: %+v", localized)
	}
}
