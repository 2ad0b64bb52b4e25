package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"studydeck/internal/common"
)

const (
	requestIDHeader = "x-request-id"
	userIDHeader    = "x-user-id"
)

// UnaryContextInterceptor copies the request-id and user-id headers into the
// context so inner layers can tag their logs and trace queued work, and logs
// every completed RPC.
func UnaryContextInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(requestIDHeader); len(vals) > 0 && vals[0] != "" {
				ctx = common.WithRequestID(ctx, vals[0])
			}
			if vals := md.Get(userIDHeader); len(vals) > 0 && vals[0] != "" {
				ctx = common.WithUserID(ctx, vals[0])
			}
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Info("rpc.done",
			"method", info.FullMethod,
			"request_id", common.RequestIDFromContext(ctx),
			"user_id", common.UserIDFromContext(ctx),
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return resp, err
	}
}
