package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/evgeniy-krivenko/notebook/internal/api/notes"
	"github.com/evgeniy-krivenko/notebook/internal/api/rest"
	"github.com/evgeniy-krivenko/notebook/internal/config"
	"github.com/evgeniy-krivenko/notebook/internal/ctxtr"
	"github.com/evgeniy-krivenko/notebook/internal/events"
	"github.com/evgeniy-krivenko/notebook/internal/ratelimit"
	"github.com/evgeniy-krivenko/notebook/pkg/grpcx"
	"github.com/evgeniy-krivenko/notebook/pkg/gwserver"
	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	bus := events.NewBus()

	uc, closeStorage, err := newUsecases(ctx, cfg, bus)
	if err != nil {
		return fmt.Errorf("init usecases: %v", err)
	}
	defer closeStorage()

	limiter, err := ratelimit.New(ratelimit.NewOptions(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	if err != nil {
		return fmt.Errorf("init rate limiter: %v", err)
	}

	notesSvc, err := notes.New(notes.NewOptions(uc.notes, uc.categories))
	if err != nil {
		return fmt.Errorf("init notes service: %v", err)
	}

	grpcSrv, err := grpcx.New(grpcx.NewOptions(
		cfg.GRPC.Addr,
		grpcx.WithServices(notesSvc),
		grpcx.WithLogger(slogx.Default()),
		grpcx.WithAuthFunc(ctxtr.AuthFunc(cfg.Auth.UserHeader)),
		grpcx.WithLimiter(limiter),
		grpcx.WithTime(cfg.GRPC.KeepaliveTime),
		grpcx.WithTimeout(cfg.GRPC.KeepaliveTimeout),
		grpcx.WithGrpcOptions(grpc.MaxConcurrentStreams(cfg.GRPC.MaxConcurrentStreams)),
	))
	if err != nil {
		return fmt.Errorf("init grpc server: %v", err)
	}

	restHandler, err := rest.New(rest.NewOptions(
		uc.notes,
		uc.categories,
		rest.WithHealthCheck(uc.ping),
	))
	if err != nil {
		return fmt.Errorf("init rest handler: %v", err)
	}

	httpSrv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		restHandler,
		gwserver.WithLogger(slogx.Default()),
		gwserver.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		gwserver.WithMiddlewares(
			limiter.Middleware,
			ctxtr.Middleware(cfg.Auth.UserHeader),
			slogx.HTTPMiddleware,
		),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return grpcSrv.Run(ctx) })
	eg.Go(func() error { return httpSrv.Run(ctx) })
	eg.Go(func() error { return limiter.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
