package auth

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// UserIDHeader carries the authenticated user's id. Authentication itself
// happens upstream.
const UserIDHeader = "x-user-id"

type userIDKey struct{}

// WithUserID stores id on ctx.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// GetUserID returns the caller's id, or uuid.Nil for an anonymous caller.
// A malformed header is a validation error.
func GetUserID(ctx context.Context) (uuid.UUID, error) {
	if id, ok := ctx.Value(userIDKey{}).(uuid.UUID); ok {
		return id, nil
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return uuid.Nil, nil
	}
	vals := md.Get(UserIDHeader)
	if len(vals) == 0 || vals[0] == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(vals[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed %s", model.ErrValidation, UserIDHeader)
	}
	return id, nil
}

// RequireUserID is GetUserID for operations that need a signed-in user.
func RequireUserID(ctx context.Context) (uuid.UUID, error) {
	id, err := GetUserID(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, ErrUnauthenticated
	}
	return id, nil
}
