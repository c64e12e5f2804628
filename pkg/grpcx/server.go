package grpcx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/ratelimit"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

type logger interface {
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
}

type Service interface {
	RegisterService(grpc.ServiceRegistrar)
}

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options -all-variadic true
type Options struct {
	addr     string    `option:"mandatory" validate:"required,hostname_port"`
	services []Service `validate:"required,min=1"`

	logger logger

	// authFunc runs before every handler when set.
	authFunc auth.AuthFunc
	// limiter runs after authFunc, so it sees the caller identity.
	limiter ratelimit.Limiter

	grpcOptions []grpc.ServerOption

	maxConnIdle time.Duration `default:"5m"`
	time        time.Duration `default:"2h"`
	timeout     time.Duration `default:"20s"`
}

type Server struct {
	opts Options
	srv  *grpc.Server
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("grpc server validate: %v", err)
	}

	if opts.logger == nil {
		opts.logger = &noopLogger{}
	}

	unary := []grpc.UnaryServerInterceptor{
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(recoverPanic)),
		slogx.LoggingInterceptor,
	}
	stream := []grpc.StreamServerInterceptor{
		recovery.StreamServerInterceptor(recovery.WithRecoveryHandlerContext(recoverPanic)),
		slogx.StreamLoggingInterceptor,
	}

	if opts.authFunc != nil {
		unary = append(unary, auth.UnaryServerInterceptor(opts.authFunc))
		stream = append(stream, auth.StreamServerInterceptor(opts.authFunc))
	}

	if opts.limiter != nil {
		unary = append(unary, ratelimit.UnaryServerInterceptor(opts.limiter))
		stream = append(stream, ratelimit.StreamServerInterceptor(opts.limiter))
	}

	grpcOptions := append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: opts.maxConnIdle,
			Time:              opts.time,
			Timeout:           opts.timeout,
		}),
	}, opts.grpcOptions...)

	srv := grpc.NewServer(grpcOptions...)

	for _, svc := range opts.services {
		svc.RegisterService(srv)
	}

	return &Server{opts: opts, srv: srv}, nil
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		return fmt.Errorf("run grpc: %v", err)
	}

	s.opts.logger.Info(
		ctx,
		"run grpc server",
		slog.String("addr", s.opts.addr),
	)

	return s.Serve(ctx, listener)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.srv.GracefulStop()
	}()

	if err := s.srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("listen and server: %v", err)
	}

	return nil
}

func recoverPanic(ctx context.Context, p any) error {
	slogx.Error(ctx, "grpc handler panic", slog.Any("panic", p))
	return status.Error(codes.Internal, "internal error")
}

type noopLogger struct{}

func (n *noopLogger) Info(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
}
