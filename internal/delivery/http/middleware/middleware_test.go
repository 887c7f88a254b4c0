package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSPreflight(t *testing.T) {
	called := false
	h := NewCORSMiddleware("").Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/doctors", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestCORSConfiguredOrigin(t *testing.T) {
	h := NewCORSMiddleware("https://app.vitalsync.pe").Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/medicines", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.vitalsync.pe", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestLoggingMiddlewareRecordsStatus(t *testing.T) {
	log, hook := test.NewNullLogger()
	h := NewLoggingMiddleware(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/medicines", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, http.StatusServiceUnavailable, entry.Data["status"])
	assert.Equal(t, "/api/v1/medicines", entry.Data["path"])
}
