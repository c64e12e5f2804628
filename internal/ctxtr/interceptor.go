package ctxtr

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// AuthFunc reads the user id from the given metadata header. Calls without
// one fail with codes.Unauthenticated before reaching the service.
func AuthFunc(header string) auth.AuthFunc {
	header = normalizeHeader(header)

	return func(ctx context.Context) (context.Context, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "md from incoming request")
		}

		for _, v := range md.Get(header) {
			if userID := strings.TrimSpace(v); userID != "" {
				return WithUserID(ctx, userID), nil
			}
		}

		return nil, status.Errorf(codes.Unauthenticated, "metadata doesn't contain %s", header)
	}
}
