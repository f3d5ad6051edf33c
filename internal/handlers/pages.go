package handlers

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tuxprint/tds-website/internal/logger"
	"github.com/tuxprint/tds-website/internal/site"
)

// Handler serves the landing page and its supporting endpoints
type Handler struct {
	renderer *site.Renderer
	assets   fs.FS
	metrics  *Metrics
	log      *slog.Logger
	startAt  time.Time
}

// NewHandler creates a new page handler
func NewHandler(renderer *site.Renderer, assets fs.FS, metrics *Metrics, log *slog.Logger) *Handler {
	return &Handler{
		renderer: renderer,
		assets:   assets,
		metrics:  metrics,
		log:      log.With(logger.Scope("handlers")),
		startAt:  time.Now(),
	}
}

// RegisterRoutes mounts the site routes on the router
func RegisterRoutes(r *chi.Mux, h *Handler) {
	r.Get("/", h.LandingPage)
	r.Handle("/assets/*", h.Assets())
	r.Get("/health", h.Health)
	r.Get("/healthz", h.Healthz)
	r.Handle("/metrics", h.metrics.Handler())
}

// LandingPage renders the page into a buffer first so a failed render never
// produces a half-written 200.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf); err != nil {
		h.metrics.failures.Inc()
		h.log.Error("failed to render landing page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.metrics.renders.WithLabelValues(h.renderer.Variant().Name).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Assets serves files from the layered asset filesystem. Directories are
// reported as missing, so there are no listings.
func (h *Handler) Assets() http.Handler {
	return http.FileServer(http.FS(filesOnly{h.assets}))
}

type filesOnly struct {
	fsys fs.FS
}

func (f filesOnly) Open(name string) (fs.File, error) {
	file, err := f.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Variant string `json:"variant"`
	Uptime  string `json:"uptime"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status:  "ok",
		Version: h.renderer.Version(),
		Variant: h.renderer.Variant().Name,
		Uptime:  time.Since(h.startAt).Round(time.Second).String(),
	})
}

// Healthz returns a simple liveness probe response
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}
