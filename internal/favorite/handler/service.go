package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "catalog.v1.FavoriteService"

func method(name string, call func(h *FavoriteHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error)) grpc.MethodDesc {
	return rpc.Unary(ServiceName, name, func(srv interface{}, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
		return call(srv.(*FavoriteHandler), ctx, req)
	})
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*interface{})(nil),
	Methods: []grpc.MethodDesc{
		method("ListFavorites", func(h *FavoriteHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.ListFavorites(ctx, req)
		}),
		method("AddFavorite", func(h *FavoriteHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.AddFavorite(ctx, req)
		}),
		method("RemoveFavorite", func(h *FavoriteHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.RemoveFavorite(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/favorite.proto",
}

func RegisterFavoriteServiceServer(s grpc.ServiceRegistrar, h *FavoriteHandler) {
	s.RegisterService(&ServiceDesc, h)
}
