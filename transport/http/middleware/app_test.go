package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonetag/config"
	"zonetag/infras/otel/mocks"
	"zonetag/transport/http/middleware"
)

func newMiddleware() (middleware.AppMiddleware, *mocks.Otel) {
	ot := mocks.NewOtel()
	cfg := &config.Config{}
	cfg.App.Name = "zonetag"

	return middleware.NewAppMiddleware(ot, cfg), ot
}

func TestRequestID(t *testing.T) {
	m, _ := newMiddleware()

	var seen string
	handler := m.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = request.Header.Get("X-Request-ID")
	}))

	t.Run("generated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		id := recorder.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("propagated", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Request-ID", "req-42")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "req-42", recorder.Header().Get("X-Request-ID"))
		assert.Equal(t, "req-42", seen)
	})
}

func TestTracing(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantErrors int
	}{
		{name: "ok", status: http.StatusOK},
		{name: "client error", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ot := newMiddleware()

			handler := m.Tracing(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(tt.status)
			}))

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/zones", nil))

			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, []string{"GET /v1/zones"}, ot.Spans())
			assert.Len(t, ot.Errors(), tt.wantErrors)
		})
	}
}
