package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-adder/internal/logger"
)

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := NewHandler(nil, testSecurity, logger.Nop())

	var ctxLogger *logger.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromRequest(r)
	})

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	traceID := rr.Header().Get(traceIDHeader)
	_, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.NotNil(t, ctxLogger)
}

func TestWithTraceID_KeepsIncomingID(t *testing.T) {
	h := NewHandler(nil, testSecurity, logger.Nop())
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rr := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_ReplacesMalformedID(t *testing.T) {
	h := NewHandler(nil, testSecurity, logger.Nop())
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	for _, incoming := range []string{"bad id with spaces", "trace\nx", strings.Repeat("a", maxTraceIDSize+1)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, incoming)
		rr := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rr, req)

		got := rr.Header().Get(traceIDHeader)
		assert.NotEqual(t, incoming, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	}
}
