// Package rpc holds the plumbing shared by the catalog gRPC services. Requests
// and responses are google.protobuf.Struct values whose fields mirror the JSON
// shape of the domain types.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Method handles one unary call on srv.
type Method func(srv interface{}, ctx context.Context, req *structpb.Struct) (proto.Message, error)

// Unary adapts fn to a grpc.MethodDesc, honouring the server's interceptor chain.
func Unary(service, name string, fn Method) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return fn(srv, ctx, req.(*structpb.Struct))
			}
			if interceptor == nil {
				return handler(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod is the path a client invokes.
func FullMethod(service, name string) string {
	return "/" + service + "/" + name
}

// Decode copies req into dst through its JSON form.
func Decode(req *structpb.Struct, dst interface{}) error {
	if req == nil {
		return nil
	}
	raw, err := req.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	return nil
}

// Encode converts v, anything that marshals to a JSON object, into a Struct.
func Encode(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := out.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return out, nil
}
