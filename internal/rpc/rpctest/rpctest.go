// Package rpctest runs catalog services over an in-memory gRPC connection.
package rpctest

import (
	"context"
	"net"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Serve starts a server with the production interceptors, lets register add
// services to it and returns a connected client.
func Serve(t *testing.T, register func(s *grpc.Server)) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(auth.ContextInterceptor()))
	register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// AsUser attaches the x-user-id header to ctx.
func AsUser(ctx context.Context, userID string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, auth.UserIDHeader, userID)
}

// Call invokes service/method with fields as the request body and decodes the
// response into out (a proto message such as *structpb.Struct or *emptypb.Empty).
func Call(ctx context.Context, conn *grpc.ClientConn, service, method string, fields map[string]interface{}, out proto.Message) error {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return err
	}
	return conn.Invoke(ctx, rpc.FullMethod(service, method), req, out)
}
