package product

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-lookup-service/internal/obs"
	"github.com/murkotick/product-lookup-service/internal/pkg/clock"
)

func TestCORS_AllowedOriginEchoedWithCredentials(t *testing.T) {
	router := newTestRouter(seededReadModel())

	req := httptest.NewRequest(http.MethodGet, "/products/100", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rr.Header().Values("Vary"), "Origin")
}

func TestCORS_DisallowedOriginGetsNoHeaders(t *testing.T) {
	router := newTestRouter(seededReadModel())

	req := httptest.NewRequest(http.MethodGet, "/products/100", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Preflight(t *testing.T) {
	router := newTestRouter(seededReadModel())

	req := httptest.NewRequest(http.MethodOptions, "/products/100", nil)
	req.Header.Set("Origin", "http://frontend")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://frontend", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "3600", rr.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_PreflightFromDisallowedOriginFallsThrough(t *testing.T) {
	router := newTestRouter(seededReadModel())

	req := httptest.NewRequest(http.MethodOptions, "/products/100", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_OptionsWithoutOriginIsNotPreflight(t *testing.T) {
	router := newTestRouter(seededReadModel())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/products/100", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
}

func TestLogging_RecordsLatencyFromClock(t *testing.T) {
	var buf bytes.Buffer
	prev := obs.Logger
	obs.Logger = slog.New(slog.NewJSONHandler(&buf, nil))
	defer func() { obs.Logger = prev }()

	fake := clock.NewFake(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	h := WithLogging(fake, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.Advance(250 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/100", nil))

	assert.Contains(t, buf.String(), `"latency_ms":250`)
	assert.Contains(t, buf.String(), `"status":200`)
}
