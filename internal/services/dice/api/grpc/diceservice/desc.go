// Package diceservice exposes the dice roller as the dicer.v1.DiceService
// gRPC API.
//
// Requests and responses travel as google.protobuf.Struct payloads, so the
// service needs no generated stubs. Integer fields that may exceed 2^53 are
// encoded as decimal strings, following the proto3 JSON mapping for int64.
package diceservice

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name, also used for health
// checks.
const ServiceName = "dicer.v1.DiceService"

// Full method names.
const (
	RollMethod      = "/" + ServiceName + "/Roll"
	NormalizeMethod = "/" + ServiceName + "/Normalize"
)

// DiceServiceServer is the server API for dicer.v1.DiceService.
type DiceServiceServer interface {
	Roll(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Normalize(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterDiceServiceServer registers srv on s.
func RegisterDiceServiceServer(s grpc.ServiceRegistrar, srv DiceServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc describes dicer.v1.DiceService for grpc.ServiceRegistrar.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Roll", Handler: rollHandler},
		{MethodName: "Normalize", Handler: normalizeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dicer/v1/dice.proto",
}

func rollHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiceServiceServer).Roll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RollMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiceServiceServer).Roll(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func normalizeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiceServiceServer).Normalize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: NormalizeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiceServiceServer).Normalize(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
