package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "catalog.v1.ComparisonService"

func method(name string, call func(h *ComparisonHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error)) grpc.MethodDesc {
	return rpc.Unary(ServiceName, name, func(srv interface{}, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
		return call(srv.(*ComparisonHandler), ctx, req)
	})
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*interface{})(nil),
	Methods: []grpc.MethodDesc{
		method("ListComparisons", func(h *ComparisonHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.ListComparisons(ctx, req)
		}),
		method("AddComparison", func(h *ComparisonHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.AddComparison(ctx, req)
		}),
		method("RemoveComparison", func(h *ComparisonHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.RemoveComparison(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/comparison.proto",
}

func RegisterComparisonServiceServer(s grpc.ServiceRegistrar, h *ComparisonHandler) {
	s.RegisterService(&ServiceDesc, h)
}
