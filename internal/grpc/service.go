package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const serviceName = "hashid.v1.HashIDService"

// HashIDServiceServer is the server API for hashid.v1.HashIDService.
//
// Requests and responses are google.protobuf.Struct values. Numbers travel as
// decimal strings so uint64 values keep full precision.
//
//	Encode        {namespace, numbers[]}  -> {id}
//	EncodeBatch   {namespace, numbers[]}  -> {ids[]}
//	Decode        {namespace, id}         -> {numbers[]}
//	Validate      {namespace, id}         -> {valid, reason}
//	Parse         {namespace, id}         -> {numbers[], id_length, lottery, guarded, min_length}
//	GenerateSalt  {size}                  -> {salt}
type HashIDServiceServer interface {
	Encode(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EncodeBatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Decode(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Validate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Parse(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GenerateSalt(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(HashIDServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// ServiceDesc describes hashid.v1.HashIDService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*HashIDServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Encode", Handler: unaryHandler("Encode", HashIDServiceServer.Encode)},
		{MethodName: "EncodeBatch", Handler: unaryHandler("EncodeBatch", HashIDServiceServer.EncodeBatch)},
		{MethodName: "Decode", Handler: unaryHandler("Decode", HashIDServiceServer.Decode)},
		{MethodName: "Validate", Handler: unaryHandler("Validate", HashIDServiceServer.Validate)},
		{MethodName: "Parse", Handler: unaryHandler("Parse", HashIDServiceServer.Parse)},
		{MethodName: "GenerateSalt", Handler: unaryHandler("GenerateSalt", HashIDServiceServer.GenerateSalt)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hashid/v1/hashid.proto",
}

// RegisterHashIDServiceServer registers srv on s.
func RegisterHashIDServiceServer(s grpc.ServiceRegistrar, srv HashIDServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + serviceName + "/" + method
}

func unaryHandler(method string, call unaryMethod) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(HashIDServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(HashIDServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
