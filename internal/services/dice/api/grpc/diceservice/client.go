package diceservice

import (
	"context"
	"fmt"

	apperrors "github.com/louisbranch/dicer/internal/platform/errors"
	"github.com/louisbranch/dicer/internal/services/dice/roller"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls a remote dicer.v1.DiceService.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a client over conn.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Roll sends req to the server and decodes the result.
//
// Errors carrying an ErrorInfo detail are returned as *apperrors.Error so
// callers see the same codes as a local roller.
func (c *Client) Roll(ctx context.Context, req roller.Request) (roller.Result, error) {
	in, err := encodeRollRequest(req)
	if err != nil {
		return roller.Result{}, fmt.Errorf("encode roll request: %w", err)
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, RollMethod, in, out); err != nil {
		return roller.Result{}, errorFromStatus(err)
	}
	result, err := decodeRollResponse(out)
	if err != nil {
		return roller.Result{}, fmt.Errorf("decode roll response: %w", err)
	}
	return result, nil
}

// Normalize asks the server for the canonical form of expression.
func (c *Client) Normalize(ctx context.Context, expression string) (string, []string, error) {
	in, err := structpb.NewStruct(map[string]any{fieldExpression: expression})
	if err != nil {
		return "", nil, fmt.Errorf("encode normalize request: %w", err)
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, NormalizeMethod, in, out); err != nil {
		return "", nil, errorFromStatus(err)
	}
	return stringField(out, fieldNormalized), readStringList(out, fieldTerms), nil
}

func errorFromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != apperrors.Domain {
			continue
		}
		return apperrors.WrapWithMetadata(apperrors.Code(info.GetReason()), st.Message(), info.GetMetadata(), err)
	}
	return err
}
