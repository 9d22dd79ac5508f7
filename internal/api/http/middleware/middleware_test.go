package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reqctx "github.com/dtroode/simple-twitter-server/internal/api/http/context"
	"github.com/dtroode/simple-twitter-server/internal/logger"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = reqctx.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestLogging_Handle(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogging(logger.NewWithWriter(0, &buf))

	h := RequestID(l.Handle(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/tweets", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "HTTP request completed")
	assert.Contains(t, out, "request_id=rid-1")
	assert.Contains(t, out, "status=201")
	assert.Contains(t, out, "path=/tweets")
	assert.Contains(t, out, "size=2")
}

func TestRecovery_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewRecovery(logger.NewWithWriter(0, &buf)).Handle(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"internal server error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "boom")
}

func TestMetrics_Handle(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := mux.NewRouter()
	r.Use(m.Handle)
	r.HandleFunc("/tweets/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tweets/"+id, nil))
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/tweets/{id}", "200")))

	expected := `
# HELP twitter_http_requests_total Total number of HTTP requests
# TYPE twitter_http_requests_total counter
twitter_http_requests_total{method="GET",route="/tweets/{id}",status="200"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "twitter_http_requests_total"))
}
