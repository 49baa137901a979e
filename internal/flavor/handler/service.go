package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "catalog.v1.FlavorService"

func method(name string, call func(h *FlavorHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error)) grpc.MethodDesc {
	return rpc.Unary(ServiceName, name, func(srv interface{}, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
		return call(srv.(*FlavorHandler), ctx, req)
	})
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*interface{})(nil),
	Methods: []grpc.MethodDesc{
		method("CreateFlavor", func(h *FlavorHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.CreateFlavor(ctx, req)
		}),
		method("GetFlavor", func(h *FlavorHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.GetFlavor(ctx, req)
		}),
		method("RenameFlavor", func(h *FlavorHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.RenameFlavor(ctx, req)
		}),
		method("DeleteFlavor", func(h *FlavorHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.DeleteFlavor(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/flavor.proto",
}

func RegisterFlavorServiceServer(s grpc.ServiceRegistrar, h *FlavorHandler) {
	s.RegisterService(&ServiceDesc, h)
}
