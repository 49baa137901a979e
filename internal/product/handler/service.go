package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "catalog.v1.ProductService"

func method(name string, call func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error)) grpc.MethodDesc {
	return rpc.Unary(ServiceName, name, func(srv interface{}, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
		return call(srv.(*ProductHandler), ctx, req)
	})
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*interface{})(nil),
	Methods: []grpc.MethodDesc{
		method("GetProduct", func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.GetProduct(ctx, req)
		}),
		method("ListProducts", func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.ListProducts(ctx, req)
		}),
		method("ListBrandProducts", func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.ListBrandProducts(ctx, req)
		}),
		method("ListSaleProducts", func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.ListSaleProducts(ctx, req)
		}),
		method("SearchProducts", func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.SearchProducts(ctx, req)
		}),
		method("ListProductsPage", func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.ListProductsPage(ctx, req)
		}),
		method("CreateProduct", func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.CreateProduct(ctx, req)
		}),
		method("UpdateProduct", func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.UpdateProduct(ctx, req)
		}),
		method("DeleteProduct", func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.DeleteProduct(ctx, req)
		}),
		method("ReduceStock", func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.ReduceStock(ctx, req)
		}),
		method("ListFlavors", func(h *ProductHandler, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return h.ListFlavors(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/product.proto",
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, h *ProductHandler) {
	s.RegisterService(&ServiceDesc, h)
}
