package server

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"studydeck/internal/common"
)

func TestUnaryContextInterceptorPropagatesHeaders(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	interceptor := UnaryContextInterceptor(logger)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"x-request-id", "req-42",
		"x-user-id", "user-7",
	))

	var gotRequestID, gotUserID string
	resp, err := interceptor(ctx, "in", &grpc.UnaryServerInfo{FullMethod: "/studydeck.v1.StudyService/GetDocument"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			gotRequestID = common.RequestIDFromContext(ctx)
			gotUserID = common.UserIDFromContext(ctx)
			return "out", nil
		})
	require.NoError(t, err)

	assert.Equal(t, "out", resp)
	assert.Equal(t, "req-42", gotRequestID)
	assert.Equal(t, "user-7", gotUserID)
}

func TestUnaryContextInterceptorWithoutMetadata(t *testing.T) {
	interceptor := UnaryContextInterceptor(nil)

	resp, err := interceptor(context.Background(), "in", &grpc.UnaryServerInfo{FullMethod: "/x/Y"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			assert.Empty(t, common.RequestIDFromContext(ctx))
			assert.Empty(t, common.UserIDFromContext(ctx))
			return nil, nil
		})
	require.NoError(t, err)
	assert.Nil(t, resp)
}
