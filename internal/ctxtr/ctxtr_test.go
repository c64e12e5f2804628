package ctxtr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestUserID(t *testing.T) {
	_, err := UserID(context.Background())
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = UserID(WithUserID(context.Background(), ""))
	require.ErrorIs(t, err, ErrUserNotFound)

	id, err := UserID(WithUserID(context.Background(), "u-1"))
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)
}

func TestAuthFunc(t *testing.T) {
	authFn := AuthFunc("X-Owner")

	_, err := authFn(context.Background())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-owner", "  "))
	_, err = authFn(ctx)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-owner", "u-1"))
	ctx, err = authFn(ctx)
	require.NoError(t, err)

	id, err := UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)
}

func TestMiddleware(t *testing.T) {
	var got string
	h := Middleware("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-Id", "u-2")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "u-2", got)

	got = "unchanged"
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, got)
}
