package gwserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

type Logger interface {
	Info(context.Context, string, ...slog.Attr)
}

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options -all-variadic true
type Options struct {
	addr    string       `option:"mandatory" validate:"hostname_port"`
	handler http.Handler `option:"mandatory" validate:"required"`

	// middlewares wrap the handler in order: the last one runs first.
	middlewares       []func(http.Handler) http.Handler
	logger            Logger
	readHeaderTimeout time.Duration `default:"5s" validate:"min=100ms"`
	shutdownTimeout   time.Duration `default:"3s" validate:"min=100ms"`
}

type Server struct {
	Options
	srv *http.Server
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate gw server opts: %v", err)
	}

	handler := opts.handler
	for _, md := range opts.middlewares {
		handler = md(handler)
	}

	return &Server{
		Options: opts,
		srv: &http.Server{
			Addr:              opts.addr,
			Handler:           handler,
			ReadHeaderTimeout: opts.readHeaderTimeout,
		},
	}, nil
}

func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("run http: %v", err)
	}

	if s.logger != nil {
		s.logger.Info(ctx, "run http server", slog.String("addr", s.addr))
	}

	return s.Serve(ctx, lis)
}

// Serve handles requests on lis until ctx is done, then drains in-flight
// requests for at most the shutdown timeout.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.srv.Serve(lis)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %v", err)
	}

	return nil
}
