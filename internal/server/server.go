package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/tuxprint/tds-website/internal/config"
	"github.com/tuxprint/tds-website/internal/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// NewRouter creates the chi router with the middleware stack. Routes are
// registered by the handlers module.
func NewRouter(log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(Recoverer(log))

	return r
}

// quietPaths are probed constantly and not worth a log line.
var quietPaths = map[string]bool{
	"/health":  true,
	"/healthz": true,
	"/metrics": true,
}

// RequestLogger logs one line per request through slog.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Scope("http"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if quietPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("remote_ip", r.RemoteAddr),
			}
			if status >= http.StatusInternalServerError {
				log.Error("request failed", attrs...)
				return
			}
			log.Info("request", attrs...)
		})
	}
}

// Recoverer turns a panicking handler into a 500 and logs the panic. A
// response that already has a status keeps it.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Scope("http"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered",
					slog.Any("panic", rec),
					slog.String("uri", r.RequestURI),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				if ww.Status() == 0 {
					ww.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, r *chi.Mux, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
				slog.String("variant", cfg.Variant),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
