package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "catalog.v1.FeedbackService"

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*interface{})(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "AddFeedback", func(srv interface{}, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return srv.(*FeedbackHandler).AddFeedback(ctx, req)
		}),
		rpc.Unary(ServiceName, "DeleteFeedback", func(srv interface{}, ctx context.Context, req *structpb.Struct) (proto.Message, error) {
			return srv.(*FeedbackHandler).DeleteFeedback(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/feedback.proto",
}

func RegisterFeedbackServiceServer(s grpc.ServiceRegistrar, h *FeedbackHandler) {
	s.RegisterService(&ServiceDesc, h)
}
