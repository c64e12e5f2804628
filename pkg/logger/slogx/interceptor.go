package slogx

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func LoggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (resp any, err error) {
	start := time.Now()
	logger := Default()

	method := slog.String("method", info.FullMethod)
	logger.Debug(ctx, "start handling grpc method", method)

	resp, err = handler(ctx, req)

	durAttr := slog.Duration("duration", time.Since(start))
	if err != nil {
		logger.Error(
			ctx,
			"finish with error",
			method,
			durAttr,
			slog.String("code", status.Code(err).String()),
			Err(err),
		)
	} else {
		logger.Info(ctx, "finish success", method, durAttr)
	}

	return
}

func StreamLoggingInterceptor(
	srv any,
	ss grpc.ServerStream,
	info *grpc.StreamServerInfo,
	handler grpc.StreamHandler,
) error {
	start := time.Now()
	ctx := ss.Context()

	method := slog.String("method", info.FullMethod)
	Info(ctx, "open grpc stream", method)

	err := handler(srv, ss)

	durAttr := slog.Duration("duration", time.Since(start))
	if err != nil {
		Error(ctx, "stream closed with error", method, durAttr, Err(err))
	} else {
		Info(ctx, "stream closed", method, durAttr)
	}

	return err
}
