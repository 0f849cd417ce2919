package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	apicontract "github.com/tuanvumaihuynh/product-api/api-contract"
	"github.com/tuanvumaihuynh/product-api/internal/apperr"
	"github.com/tuanvumaihuynh/product-api/internal/config"
	"github.com/tuanvumaihuynh/product-api/internal/http/apierr"
	"github.com/tuanvumaihuynh/product-api/internal/http/metric"
	"github.com/tuanvumaihuynh/product-api/internal/http/middleware"
	"github.com/tuanvumaihuynh/product-api/internal/http/swagger"
	"github.com/tuanvumaihuynh/product-api/internal/service"
	"github.com/tuanvumaihuynh/product-api/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg      config.HTTP
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metric.Metrics

	productSvc service.ProductService
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	productSvc service.ProductService,
) *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Service{
		cfg:        cfg,
		logger:     log.With(slog.String("service", "http")),
		registry:   registry,
		metrics:    metric.New(registry),
		productSvc: productSvc,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	handler, err := s.Handler(ctx)
	if err != nil {
		return nil, err
	}

	return s.RunWithServer(ctx, handler)
}

// Handler builds the router with every middleware and route registered.
func (s *Service) Handler(ctx context.Context) (http.Handler, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.handleResponseError(w, r, apperr.RouteNotFoundErr)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.handleResponseError(w, r, apperr.RouteNotFoundErr)
	})

	if s.cfg.Swagger {
		if _, err := apicontract.Load(ctx); err != nil {
			return nil, fmt.Errorf("load api contract: %w", err)
		}
		swagger.Register(r, apicontract.GetSpecBytes())
	}

	s.RegisterHandlers(r)

	return r, nil
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "http server stopped unexpectedly", slog.Any("error", err))
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	// Recoverer sits inside Trace and Metrics so a recovered panic is still
	// recorded as a 500.
	r.Use(
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.Recoverer(s.logger),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	h := newProductHandler(s.productSvc)

	r.Get("/", welcome)
	r.Get("/health", health)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", s.wrap(h.ListProducts))
		r.Get("/search", s.wrap(h.SearchProducts))
		r.Get("/stats", s.wrap(h.GetProductStats))
		r.Get("/{id}", s.wrap(h.GetProduct))

		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(middleware.APIKey, s.handleResponseError))

			r.Post("/", s.wrap(h.CreateProduct))
			r.Put("/{id}", s.wrap(h.UpdateProduct))
			r.Delete("/{id}", s.wrap(h.DeleteProduct))
		})
	})

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

// handlerFunc is an http.HandlerFunc that reports failures instead of
// writing them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Service) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			s.handleResponseError(w, r, err)
		}
	}
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	attrs := []slog.Attr{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", res.StatusCode),
		slog.Any("error", err),
	}
	if fields := validator.FieldErrors(err); len(fields) > 0 {
		attrs = append(attrs, slog.Any("fields", fields))
	}
	s.logger.LogAttrs(r.Context(), logLevel, "http response error", attrs...)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}

func welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write([]byte("Welcome to the Product API! Go to /api/products to see all products."))
}

func health(w http.ResponseWriter, _ *http.Request) {
	//nolint:errcheck
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
