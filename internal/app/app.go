package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"readinglog/internal/apidocs"
	"readinglog/internal/book"
	"readinglog/internal/config"
	"readinglog/internal/httpx"

	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
	readyTimeout    = 500 * time.Millisecond
	startupPingWait = 15 * time.Second
)

// App represents the application
type App struct {
	config  *config.Config
	logger  *zap.Logger
	store   *Store
	books   *book.Service
	limiter *httpx.RateLimiter
	server  *http.Server
}

// New wires the application around an opened store.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, store *Store) *App {
	a := &App{
		config: cfg,
		logger: logger,
		store:  store,
		books:  book.NewService(store.Books),
	}
	if cfg.RateLimitRPS > 0 {
		a.limiter = httpx.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	a.server = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return a
}

// Handler builds the full middleware chain around the routes.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()

	apidocs.Register(mux)
	mux.HandleFunc("GET /{$}", a.root)
	mux.HandleFunc("GET /healthz", a.healthz)
	mux.HandleFunc("GET /readyz", a.readyz)
	book.NewHTTPHandler(a.books, a.logger).Register(mux)

	middlewares := []func(http.Handler) http.Handler{
		httpx.RecoveryMiddleware(a.logger),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(a.logger),
		httpx.CORSMiddleware(a.config.AllowedOrigins),
		httpx.SecurityHeadersMiddleware(apidocs.Prefix),
	}
	if a.limiter != nil {
		middlewares = append(middlewares, a.limiter.Middleware)
	}
	middlewares = append(middlewares, httpx.RequestSizeLimitMiddleware(a.config.MaxBodyBytes))

	return httpx.Chain(mux, middlewares...)
}

// Run checks the store in the background, serves until ctx is cancelled,
// then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	go a.checkStore(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// checkStore logs whether the store answered. Requests are served either
// way; /readyz reports the live state.
func (a *App) checkStore(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, startupPingWait)
	defer cancel()

	if err := a.books.Ready(pingCtx); err != nil {
		a.logger.Error("store connection failed", zap.String("driver", a.store.Driver), zap.Error(err))
		return
	}
	a.logger.Info("store connected", zap.String("driver", a.store.Driver))
}

// root handles GET /
//
// @Summary Greeting
// @Tags Root
// @Produce plain
// @Success 200 {string} string "Reading Log API is running!"
// @Router / [get]
func (a *App) root(w http.ResponseWriter, r *http.Request) {
	httpx.Text(w, http.StatusOK, "Reading Log API is running!")
}

// healthz handles GET /healthz
//
// @Summary Liveness probe
// @Tags Root
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *App) healthz(w http.ResponseWriter, r *http.Request) {
	httpx.Text(w, http.StatusOK, "ok")
}

// readyz handles GET /readyz
//
// @Summary Readiness probe
// @Tags Root
// @Produce plain
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "store not ready"
// @Router /readyz [get]
func (a *App) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()
	if err := a.books.Ready(ctx); err != nil {
		httpx.Text(w, http.StatusServiceUnavailable, "store not ready")
		return
	}
	httpx.Text(w, http.StatusOK, "ready")
}
