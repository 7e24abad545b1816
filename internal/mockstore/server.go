// Package mockstore serves a fixture storefront API for development and tests.
package mockstore

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"shopgrip/internal/logging"
	"shopgrip/internal/storefront"
)

// Catalog is the data source behind the mock API
type Catalog interface {
	storefront.Searcher
	storefront.CartFetcher
}

// Options tunes the mock server
type Options struct {
	// Latency delays every search response, to exercise the loading indicator
	Latency time.Duration
	Logger  *zap.Logger
}

// NewRouter builds the HTTP handler for the mock storefront
func NewRouter(catalog Catalog, opts Options) http.Handler {
	logger := logging.OrNop(opts.Logger).Named("mockstore")
	h := &handlers{catalog: catalog, latency: opts.Latency, logger: logger}

	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(chiMid.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/predictive-search", h.predictiveSearch)
		r.Get("/carts/{id}", h.cart)
	})

	return r
}

type handlers struct {
	catalog Catalog
	latency time.Duration
	logger  *zap.Logger
}

func (h *handlers) predictiveSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 10
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	predictive, _ := strconv.ParseBool(q.Get("predictive"))

	if h.latency > 0 {
		select {
		case <-time.After(h.latency):
		case <-r.Context().Done():
			return
		}
	}

	resp, err := h.catalog.PredictiveSearch(r.Context(), storefront.PredictiveQuery{
		Q:          q.Get("q"),
		Limit:      limit,
		Predictive: predictive,
	})
	if err != nil {
		h.logger.Warn("search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) cart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.catalog.Cart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		var se *storefront.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			writeError(w, http.StatusNotFound, "cart not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "cart lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requestLogger emits one structured log line per request
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMid.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chiMid.GetReqID(r.Context())),
				zap.String("client_request_id", r.Header.Get(storefront.RequestIDHeader)))
		})
	}
}
