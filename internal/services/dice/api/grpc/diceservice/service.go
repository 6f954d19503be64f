package diceservice

import (
	"context"
	"errors"

	apperrors "github.com/louisbranch/dicer/internal/platform/errors"
	"github.com/louisbranch/dicer/internal/services/dice/roller"
	"golang.org/x/text/language"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Locale tags the localized message attached to error statuses.
var Locale = language.AmericanEnglish.String()

// Service implements DiceServiceServer on top of a roller.
type Service struct {
	roller *roller.Roller
}

// NewService creates a dice service backed by r.
func NewService(r *roller.Roller) *Service {
	return &Service{roller: r}
}

// Roll evaluates the request expression.
func (s *Service) Roll(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "roll request is required")
	}
	if s == nil || s.roller == nil {
		return nil, status.Error(codes.Internal, "dice roller is not configured")
	}

	req, err := decodeRollRequest(in)
	if err != nil {
		return nil, grpcError(err)
	}
	result, err := s.roller.Roll(ctx, req)
	if err != nil {
		return nil, grpcError(err)
	}
	out, err := encodeRollResponse(result)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode roll response: %v", err)
	}
	return out, nil
}

// Normalize returns the canonical expression and its signed terms.
func (s *Service) Normalize(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "normalize request is required")
	}
	if s == nil || s.roller == nil {
		return nil, status.Error(codes.Internal, "dice roller is not configured")
	}

	normalized, terms, err := s.roller.Normalize(ctx, stringField(in, fieldExpression))
	if err != nil {
		return nil, grpcError(err)
	}
	out, err := encodeNormalizeResponse(normalized, terms)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode normalize response: %v", err)
	}
	return out, nil
}

func grpcError(err error) error {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		return domainErr.ToGRPCStatus(Locale, "")
	}
	return status.Error(codes.Internal, err.Error())
}
