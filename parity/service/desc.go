package service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// The service uses the google.protobuf.ListValue well-known type for both
// requests and responses, so there is no generated code: the descriptor below
// is what protoc-gen-go-grpc would emit for
//
//	service ParityService {
//	  rpc Evens(google.protobuf.ListValue) returns (google.protobuf.ListValue);
//	  rpc Odds(google.protobuf.ListValue) returns (google.protobuf.ListValue);
//	}
const (
	serviceName = "parity.ParityService"
	evensMethod = "/" + serviceName + "/Evens"
	oddsMethod  = "/" + serviceName + "/Odds"
)

type ParityServiceServer interface {
	Evens(context.Context, *structpb.ListValue) (*structpb.ListValue, error)
	Odds(context.Context, *structpb.ListValue) (*structpb.ListValue, error)
}

type ParityServiceClient interface {
	Evens(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Odds(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

var ParityServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ParityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evens",
			Handler:    unaryHandler(evensMethod, ParityServiceServer.Evens),
		},
		{
			MethodName: "Odds",
			Handler:    unaryHandler(oddsMethod, ParityServiceServer.Odds),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "parity.proto",
}

type unaryMethod func(ParityServiceServer, context.Context, *structpb.ListValue) (*structpb.ListValue, error)

func unaryHandler(fullMethod string, method unaryMethod) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.ListValue)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return method(srv.(ParityServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}

		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return method(srv.(ParityServiceServer), ctx, req.(*structpb.ListValue))
		}

		return interceptor(ctx, in, info, handler)
	}
}

func RegisterParityServiceServer(s grpc.ServiceRegistrar, srv ParityServiceServer) {
	s.RegisterService(&ParityServiceDesc, srv)
}

type parityServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewParityServiceClient(cc grpc.ClientConnInterface) ParityServiceClient {
	return &parityServiceClient{cc: cc}
}

func (c *parityServiceClient) Evens(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, evensMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *parityServiceClient) Odds(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, oddsMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}
