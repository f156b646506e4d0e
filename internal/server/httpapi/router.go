// Package httpapi serves the plain HTTP side of the service: preview
// downloads, health checks and Prometheus metrics.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/server/auth"
	"github.com/dmitrijs2005/filekeeper/internal/server/metrics"
	"github.com/dmitrijs2005/filekeeper/internal/server/services"
)

// Previewer opens a stored file for download.
type Previewer interface {
	Preview(ctx context.Context, id int64, fileID, fileName string) (*services.Preview, error)
}

// Pinger reports whether the metadata store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	Previewer Previewer
	DB        Pinger
	Metrics   *metrics.Metrics
	// Gatherer backs /metrics. Nil means the default registry.
	Gatherer  prometheus.Gatherer
	Logger    logging.Logger
	SecretKey string
	Timeout   time.Duration
}

type handler struct {
	previewer Previewer
	db        Pinger
	logger    logging.Logger
	secret    []byte
	timeout   time.Duration
}

// NewRouter wires all routes.
func NewRouter(o Options) http.Handler {
	h := &handler{
		previewer: o.Previewer,
		db:        o.DB,
		logger:    o.Logger.With("module", "http_server"),
		secret:    []byte(o.SecretKey),
		timeout:   o.Timeout,
	}

	m := o.Metrics
	if m == nil {
		m = metrics.NewUnregistered()
	}

	gatherer := o.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(metricsMiddleware(m))

	r.Get("/health/live", h.live)
	r.Get("/health/ready", h.ready)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1/files", func(r chi.Router) {
		r.Use(h.requireToken)
		r.Get("/preview", h.preview)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "fail", "message": "no database"})
		return
	}
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn(ctx, "readiness check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "fail", "message": "database unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireToken accepts the same access token as the gRPC API, either in the
// access_token header or as a bearer token.
func (h *handler) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(common.AccessTokenHeaderName)
		if token == "" {
			token, _ = strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}
		if _, err := auth.GetUserIDFromToken(token, h.secret); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil && id > 0
}
