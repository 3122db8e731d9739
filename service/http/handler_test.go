package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/namepool"
	"github.com/viant/namepool/model/types"
	"github.com/viant/namepool/model/universe"
	"github.com/viant/namepool/service/backend/memory"
	nphttp "github.com/viant/namepool/service/http"
	"github.com/viant/namepool/service/metrics"
)

func hundred() *universe.Universe {
	var families []string
	for i := 0; i < 10; i++ {
		families = append(families, fmt.Sprintf("F%d", i))
	}
	return universe.New([]string{"A0", "A1", "A2", "A3", "A4"}, []string{"B0", "B1", "B2", "B3", "B4"}, families)
}

func newHandler(t *testing.T) (*nphttp.Handler, *namepool.Service) {
	logger, _ := test.NewNullLogger()
	registry := prometheus.NewRegistry()
	srv, err := namepool.New(context.Background(), nil,
		namepool.WithUniverse(hundred()),
		namepool.WithBackend(memory.New(nil)),
		namepool.WithLogger(logger),
		namepool.WithMetrics(metrics.New(registry)),
	)
	require.NoError(t, err)
	return nphttp.New(srv, nphttp.WithLogger(logger), nphttp.WithGatherer(registry)), srv
}

func serve(handler http.Handler, method, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

func errorOf(t *testing.T, recorder *httptest.ResponseRecorder) string {
	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload.Error
}

func TestHandler_Generate(t *testing.T) {
	handler, _ := newHandler(t)

	var testCases = []struct {
		description string
		target      string
		status      int
		expectError string
		expectCount int
	}{
		{description: "missing count", target: "/api/generate", status: http.StatusBadRequest, expectError: "count must be an integer between 1 and 100"},
		{description: "not a number", target: "/api/generate?count=ten", status: http.StatusBadRequest, expectError: "count must be an integer between 1 and 100"},
		{description: "zero", target: "/api/generate?count=0", status: http.StatusBadRequest, expectError: "count must be an integer between 1 and 100"},
		{description: "too many", target: "/api/generate?count=101", status: http.StatusBadRequest, expectError: "count must be an integer between 1 and 100"},
		{description: "ten", target: "/api/generate?count=10", status: http.StatusOK, expectCount: 10},
		{description: "remaining shrinks", target: "/api/generate?count=91", status: http.StatusBadRequest, expectError: "count must be an integer between 1 and 90"},
		{description: "rest", target: "/api/generate?count=90", status: http.StatusOK, expectCount: 90},
		{description: "exhausted", target: "/api/generate?count=1", status: http.StatusBadRequest, expectError: "count must be an integer between 1 and 0"},
	}
	for _, testCase := range testCases {
		recorder := serve(handler, http.MethodGet, testCase.target)
		assert.Equal(t, testCase.status, recorder.Code, testCase.description)
		assert.Equal(t, "no-store", recorder.Header().Get("Cache-Control"), testCase.description)
		assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"), testCase.description)
		if testCase.expectError != "" {
			assert.Equal(t, testCase.expectError, errorOf(t, recorder), testCase.description)
			continue
		}
		var payload struct {
			Names []string `json:"names"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload), testCase.description)
		assert.Len(t, payload.Names, testCase.expectCount, testCase.description)
	}
}

func TestHandler_Methods(t *testing.T) {
	handler, _ := newHandler(t)
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions} {
		recorder := serve(handler, method, "/api/generate?count=1")
		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code, method)
		assert.Equal(t, "GET, HEAD", recorder.Header().Get("Allow"), method)
	}

	recorder := serve(handler, http.MethodHead, "/api/stats")
	assert.Equal(t, http.StatusOK, recorder.Code)

	request := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	request.Header.Set("Origin", "https://example.com")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.NotEmpty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, recorder.Header().Get("X-Request-Id"))
}

func TestHandler_Stats_Sample_Metrics(t *testing.T) {
	handler, srv := newHandler(t)
	_, err := srv.Allocate(context.Background(), 4)
	require.NoError(t, err)

	recorder := serve(handler, http.MethodGet, "/api/stats")
	require.Equal(t, http.StatusOK, recorder.Code)
	var stats struct {
		Total     int  `json:"total"`
		Remaining int  `json:"remaining"`
		Ready     bool `json:"ready"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &stats))
	assert.Equal(t, 100, stats.Total)
	assert.Equal(t, 96, stats.Remaining)
	assert.True(t, stats.Ready)

	recorder = serve(handler, http.MethodGet, "/api/sample?count=100")
	assert.Equal(t, http.StatusOK, recorder.Code)
	recorder = serve(handler, http.MethodGet, "/api/sample?count=101")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "count must be an integer between 1 and 100", errorOf(t, recorder))
	assert.Equal(t, 96, srv.Remaining(), "sampling does not consume names")

	recorder = serve(handler, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, strings.Contains(recorder.Body.String(), "namepool_names_issued_total 4"))

	recorder = serve(handler, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, recorder.Code)
	recorder = serve(handler, http.MethodGet, "/index.html")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

// stubAllocator lets tests force failures the real service only hits under I/O faults.
type stubAllocator struct {
	ready     bool
	initErr   error
	remaining int
	err       error
}

func (s *stubAllocator) TotalCapacity() int { return 100 }
func (s *stubAllocator) MaxBatch() int      { return 5000 }
func (s *stubAllocator) Remaining() int     { return s.remaining }
func (s *stubAllocator) Ready() bool        { return s.ready }
func (s *stubAllocator) InitError() error   { return s.initErr }
func (s *stubAllocator) Sample(int) []string {
	return nil
}
func (s *stubAllocator) Allocate(context.Context, int) ([]string, error) {
	return nil, s.err
}

func TestHandler_Generate_Failures(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var testCases = []struct {
		description string
		allocator   *stubAllocator
		status      int
		expect      string
	}{
		{
			description: "store unavailable",
			allocator:   &stubAllocator{initErr: types.NewError(types.KindFormat, "history universe size mismatch (names list changed?)")},
			status:      http.StatusInternalServerError,
			expect:      "history store unavailable: history universe size mismatch (names list changed?)",
		},
		{
			description: "retry exhausted",
			allocator:   &stubAllocator{ready: true, remaining: 10, err: types.NewError(types.KindRetryExhausted, "could not persist history (concurrent updates); please retry")},
			status:      http.StatusInternalServerError,
			expect:      "could not persist history (concurrent updates); please retry",
		},
		{
			description: "exhausted by a concurrent writer",
			allocator:   &stubAllocator{ready: true, remaining: 10, err: types.NewError(types.KindExhausted, "not enough unused names remaining (0 left)")},
			status:      http.StatusBadRequest,
			expect:      "not enough unused names remaining (0 left)",
		},
		{
			description: "backend failure",
			allocator:   &stubAllocator{ready: true, remaining: 10, err: types.NewError(types.KindNetwork, "gist PATCH failed (HTTP 500)")},
			status:      http.StatusInternalServerError,
			expect:      "gist PATCH failed (HTTP 500)",
		},
	}
	for _, testCase := range testCases {
		handler := nphttp.New(testCase.allocator, nphttp.WithLogger(logger))
		recorder := serve(handler, http.MethodGet, "/api/generate?count=1")
		assert.Equal(t, testCase.status, recorder.Code, testCase.description)
		assert.Equal(t, testCase.expect, errorOf(t, recorder), testCase.description)
	}
}
