package preview

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/themekit/pkg/pageinit"
	"github.com/vango-dev/themekit/pkg/toast"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// StaticPrefix is the URL prefix of the static directory.
const StaticPrefix = "/static"

// Options configures the preview server.
type Options struct {
	// Addr is the listen address. Defaults to "localhost:3000".
	Addr string

	// StaticDir holds main.wasm and wasm_exec.js. Defaults to "static".
	StaticDir string

	// Title is shown in the page header.
	Title string

	// Messages are rendered as toasts, in order.
	Messages []Message

	// Logger is the structured logger. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics configures the request metrics served at MetricsPath.
	Metrics []MetricsOption

	// TracerProvider creates the request spans.
	// If nil, the global OpenTelemetry provider is used.
	TracerProvider trace.TracerProvider
}

func (o Options) withDefaults() Options {
	if o.Addr == "" {
		o.Addr = "localhost:3000"
	}
	if o.StaticDir == "" {
		o.StaticDir = "static"
	}
	if o.Title == "" {
		o.Title = "themekit preview"
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

type pageData struct {
	Title        string
	ToggleID     string
	ToastClass   string
	StaticPrefix string
	Messages     []Message
}

// Handler returns the preview router.
func Handler(opts Options) http.Handler {
	opts = opts.withDefaults()

	m := newMetrics(opts.Metrics)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(tracing(opts.TracerProvider))
	r.Use(m.middleware)
	r.Use(requestLogger(opts.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/", pageHandler(opts))
	r.Head("/", pageHandler(opts))
	r.Get(StaticPrefix+"/*", staticHandler(os.DirFS(opts.StaticDir)))
	r.Head(StaticPrefix+"/*", staticHandler(os.DirFS(opts.StaticDir)))
	r.Method(http.MethodGet, MetricsPath, m.handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

func pageHandler(opts Options) http.HandlerFunc {
	data := pageData{
		Title:        opts.Title,
		ToggleID:     pageinit.DefaultToggleID,
		ToastClass:   toast.MarkerClass,
		StaticPrefix: StaticPrefix,
		Messages:     opts.Messages,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := pageTemplate.Execute(&buf, data); err != nil {
			opts.Logger.Error("render preview page", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(buf.Bytes())
	}
}

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// Server is the preview HTTP server.
type Server struct {
	opts Options
	srv  *http.Server
}

// NewServer creates a server. It does not start listening.
func NewServer(opts Options) *Server {
	opts = opts.withDefaults()
	return &Server{
		opts: opts,
		srv: &http.Server{
			Addr:              opts.Addr,
			Handler:           Handler(opts),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.opts.Logger.Info("preview server listening", "addr", ln.Addr().String(), "static", s.opts.StaticDir)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	return nil
}
