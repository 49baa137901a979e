package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "catalog.v1.DiscountService"

func method(name string, call func(h *DiscountHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error)) grpc.MethodDesc {
	return rpc.Unary(ServiceName, name, func(srv interface{}, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
		return call(srv.(*DiscountHandler), ctx, req)
	})
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*interface{})(nil),
	Methods: []grpc.MethodDesc{
		method("CreateDiscount", func(h *DiscountHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.CreateDiscount(ctx, req)
		}),
		method("UpdateDiscount", func(h *DiscountHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.UpdateDiscount(ctx, req)
		}),
		method("ListDiscounts", func(h *DiscountHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.ListDiscounts(ctx, req)
		}),
		method("ApplyDiscount", func(h *DiscountHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.ApplyDiscount(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/discount.proto",
}

func RegisterDiscountServiceServer(s grpc.ServiceRegistrar, h *DiscountHandler) {
	s.RegisterService(&ServiceDesc, h)
}
