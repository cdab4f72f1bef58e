package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// serviceDesc is written by hand from proto/riskengine/v1/scoring.proto;
// every method takes and returns a Struct.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*scoringServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Predict", Handler: unaryHandler("Predict", scoringServer.Predict)},
		{MethodName: "SubmitQuestionnaire", Handler: unaryHandler("SubmitQuestionnaire", scoringServer.SubmitQuestionnaire)},
		{MethodName: "SubmitWellbeing", Handler: unaryHandler("SubmitWellbeing", scoringServer.SubmitWellbeing)},
		{MethodName: "DetectSeverity", Handler: unaryHandler("DetectSeverity", scoringServer.DetectSeverity)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "riskengine/v1/scoring.proto",
}

type unaryMethod func(scoringServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts call to grpc.MethodHandler, routing through the
// server's interceptor chain when one is installed.
func unaryHandler(name string, call unaryMethod) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + name
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(scoringServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(scoringServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
