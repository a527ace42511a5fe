package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	siteerrors "github.com/gdgoc-ctf/site/internal/errors"
	"github.com/gdgoc-ctf/site/pkg/site"
)

const tracerName = "github.com/gdgoc-ctf/site/pkg/server"

// Config configures a Server.
type Config struct {
	// Site is the homepage to serve. Required.
	Site *site.Site

	// Address is the listen address. Defaults to the site's configured one.
	Address string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Logger receives request and lifecycle logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Registry receives the server's metrics and backs /metrics.
	// Defaults to a fresh registry.
	Registry *prometheus.Registry

	// Tracer wraps page renders. Defaults to the global provider's tracer.
	Tracer trace.Tracer
}

// Server serves the homepage.
type Server struct {
	site            *site.Site
	address         string
	shutdownTimeout time.Duration
	logger          *slog.Logger
	metrics         *metrics
	registry        *prometheus.Registry
	tracer          trace.Tracer
	router          chi.Router
}

// New creates a Server. It panics if cfg.Site is nil.
func New(cfg Config) *Server {
	if cfg.Site == nil {
		panic("server: Config.Site is required")
	}
	if cfg.Address == "" {
		cfg.Address = cfg.Site.Config().Address()
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = cfg.Site.Config().ShutdownTimeout()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer(tracerName)
	}

	s := &Server{
		site:            cfg.Site,
		address:         cfg.Address,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          cfg.Logger.With("component", "server"),
		metrics:         newMetrics(cfg.Registry),
		registry:        cfg.Registry,
		tracer:          cfg.Tracer,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(canonicalize)

	r.Get("/", s.handlePage)
	r.Get("/features", s.handleSection)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	prefix := s.site.Config().Static.Prefix
	if prefix == "/" {
		r.NotFound(s.handleStatic("/"))
	} else {
		r.Get(prefix+"*", s.handleStatic(prefix))
	}
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return siteerrors.New("E400").WithDetail(s.address).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return siteerrors.New("E400").Wrap(err)

	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
		s.logger.Info("server shutdown complete")
		return nil
	}
}
