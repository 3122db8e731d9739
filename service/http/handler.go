package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/viant/namepool/internal/idgen"
	"github.com/viant/namepool/model/types"
	"github.com/viant/namepool/tracing"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	requestIDHeader = "X-Request-Id"
)

// Allocator is the service surface the handler exposes.
type Allocator interface {
	TotalCapacity() int
	MaxBatch() int
	Remaining() int
	Ready() bool
	InitError() error
	Allocate(ctx context.Context, count int) ([]string, error)
	Sample(count int) []string
}

// Handler routes HTTP requests to an Allocator.
type Handler struct {
	allocator Allocator
	logger    logrus.FieldLogger
	gatherer  prometheus.Gatherer
	origins   []string
	// mux serializes the remaining check with the allocation it guards.
	mux     sync.Mutex
	handler http.Handler
}

type (
	namesResponse struct {
		Names []string `json:"names"`
	}
	errorResponse struct {
		Error string `json:"error"`
	}
	statsResponse struct {
		Total     int    `json:"total"`
		Remaining int    `json:"remaining"`
		Ready     bool   `json:"ready"`
		Error     string `json:"error,omitempty"`
	}
)

// New creates a handler for allocator.
func New(allocator Allocator, options ...Option) *Handler {
	ret := &Handler{allocator: allocator, logger: logrus.New(), origins: []string{"*"}}
	for _, option := range options {
		option(ret)
	}
	routes := http.NewServeMux()
	routes.HandleFunc("/api/generate", ret.generate)
	routes.HandleFunc("/api/sample", ret.sample)
	routes.HandleFunc("/api/stats", ret.stats)
	routes.HandleFunc("/healthz", ret.health)
	if ret.gatherer != nil {
		routes.Handle("/metrics", promhttp.HandlerFor(ret.gatherer, promhttp.HandlerOpts{}))
	}
	routes.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})
	ret.handler = cors.New(cors.Options{
		AllowedOrigins: ret.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	}).Handler(routes)
	return ret
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	requestID := r.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = idgen.New()
	}
	ctx, span := tracing.StartSpan(r.Context(), r.Method+" "+r.URL.Path, tracing.KindServer)
	span.WithAttributes(map[string]string{"request.id": requestID})
	recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	recorder.Header().Set("Cache-Control", "no-store")
	recorder.Header().Set(requestIDHeader, requestID)

	if !allowed(r) {
		recorder.Header().Set("Allow", "GET, HEAD")
		writeJSON(recorder, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	} else {
		h.handler.ServeHTTP(recorder, r.WithContext(ctx))
	}

	span.SetStatusFromHTTPCode(recorder.status)
	span.End()
	h.logger.WithFields(logrus.Fields{
		"method":   r.Method,
		"path":     r.URL.Path,
		"status":   recorder.status,
		"request":  requestID,
		"duration": time.Since(started).String(),
	}).Debug("request served")
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	// a missing or malformed count is treated as 0 and rejected below
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	h.mux.Lock()
	defer h.mux.Unlock()
	if !h.allocator.Ready() {
		message := "history store unavailable: "
		if err := h.allocator.InitError(); err != nil {
			message += err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: message})
		return
	}
	remaining := h.allocator.Remaining()
	if count <= 0 || count > remaining {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("count must be an integer between 1 and %d", remaining)})
		return
	}
	names, err := h.allocator.Allocate(r.Context(), count)
	if err != nil {
		h.logger.WithError(err).WithField("count", count).Warn("allocation failed")
		writeJSON(w, statusOf(err), errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, namesResponse{Names: names})
}

func (h *Handler) sample(w http.ResponseWriter, r *http.Request) {
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))
	names := h.allocator.Sample(count)
	if len(names) == 0 {
		limit := h.allocator.MaxBatch()
		if total := h.allocator.TotalCapacity(); total < limit {
			limit = total
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("count must be an integer between 1 and %d", limit)})
		return
	}
	writeJSON(w, http.StatusOK, namesResponse{Names: names})
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	h.mux.Lock()
	response := statsResponse{
		Total:     h.allocator.TotalCapacity(),
		Remaining: h.allocator.Remaining(),
		Ready:     h.allocator.Ready(),
	}
	if err := h.allocator.InitError(); err != nil {
		response.Error = err.Error()
	}
	h.mux.Unlock()
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// allowed admits GET, HEAD and CORS preflight requests.
func allowed(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		return true
	case http.MethodOptions:
		return r.Header.Get("Access-Control-Request-Method") != ""
	}
	return false
}

// statusOf maps allocation errors: caller mistakes are 400, the rest 500.
func statusOf(err error) int {
	switch types.KindOf(err) {
	case types.KindValidation, types.KindExhausted:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
