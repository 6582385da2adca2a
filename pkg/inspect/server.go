package inspect

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/niber/pkg/host"
	"github.com/vango-dev/niber/pkg/niber"
	"github.com/vango-dev/niber/pkg/render"
)

// DefaultShutdownTimeout bounds graceful shutdown in Run.
const DefaultShutdownTimeout = 5 * time.Second

// Config configures an inspector.
type Config struct {
	// Runtime is the runtime to inspect. Required.
	Runtime *niber.Runtime

	// Container is the host container the runtime commits into. Required.
	Container *host.Container

	// Render configures the /html output.
	Render render.Config

	// Title is the /html page title. Default: "niber".
	Title string

	// Gatherer backs /metrics. Default: prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Logger receives request and stream logs. Default: slog.Default().
	Logger *slog.Logger

	// TracerName names the tracer used for request spans. Default: "niber".
	TracerName string
}

// Server serves a debug view of one runtime over HTTP.
//
// Runtime and container are not safe for concurrent use, so every handler
// touching them holds mu. Commits triggered by /dispatch are pushed to
// websocket clients on /ws.
type Server struct {
	mu        sync.Mutex
	rt        *niber.Runtime
	container *host.Container
	renderer  *render.Renderer
	title     string
	gatherer  prometheus.Gatherer
	logger    *slog.Logger
	stream    *commitStream
	router    chi.Router
}

// New creates an inspector and subscribes it to the runtime's commits.
func New(config Config) *Server {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Gatherer == nil {
		config.Gatherer = prometheus.DefaultGatherer
	}
	if config.Title == "" {
		config.Title = "niber"
	}

	s := &Server{
		rt:        config.Runtime,
		container: config.Container,
		renderer:  render.NewRenderer(config.Render),
		title:     config.Title,
		gatherer:  config.Gatherer,
		logger:    config.Logger.With("component", "inspect"),
	}
	s.stream = newCommitStream(s.logger)
	s.rt.OnCommit(s.stream.notify)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(Tracing(config.TracerName))

	r.Get("/tree", s.handleTree)
	r.Get("/html", s.handleHTML)
	r.Post("/dispatch", s.handleDispatch)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/ws", s.stream.handle)
	s.router = r

	return s
}

// Handler returns the inspector's router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Clients returns the number of connected websocket clients.
func (s *Server) Clients() int {
	return s.stream.count()
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("inspector listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		s.stream.close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.stream.close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("inspector stopped")
	return nil
}
