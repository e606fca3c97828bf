package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/cache"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/config"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/logger"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/schema"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/server"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/storetest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	cfg := &config.Config{MaxLimit: 1000}
	cfg.CORS.AllowedOrigins = []string{"http://dashboard.local"}
	return cfg
}

func newRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	db := storetest.Open(t, schema.Models()...)
	return server.NewRouter(cfg, db, cache.NewMemory(), zaptest.NewLogger(t))
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newRouter(t, testConfig())

	w := do(r, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, server.HealthStatus, body.Status)
	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
	assert.NotEmpty(t, w.Header().Get(logger.RequestIDHeader))
}

func TestUnknownRoutesAre404(t *testing.T) {
	r := newRouter(t, testConfig())

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/nope"},
		{http.MethodGet, "/"},
		{http.MethodPut, "/api/zones/1"},
		{http.MethodPost, "/api/analytics/dashboard-summary"},
	} {
		w := do(r, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, tc.path)
		assert.JSONEq(t, `{"error":"Route not found"}`, w.Body.String(), tc.path)
	}
}

func TestEndToEnd(t *testing.T) {
	r := newRouter(t, testConfig())

	steps := []struct {
		path, body string
	}{
		{"/api/zones", `{"zone_id":1,"name":"Harbor","population":5000,"avg_income":30000}`},
		{"/api/devices", `{"device_id":1,"type":"AirSensor","zone_id":1,"install_date":"2019-05-01","status":"Active"}`},
		{"/api/alerts", `{"alert_id":1,"device_id":1,"alert_type":"Smog","severity":"Critical","alert_time":"2026-01-01T00:00:00Z"}`},
		{"/api/maintenance", `{"log_id":1,"device_id":1,"technician_name":"Lee","cost":300,"date":"2026-01-05"}`},
	}
	for _, s := range steps {
		w := do(r, http.MethodPost, s.path, s.body)
		require.Equal(t, http.StatusCreated, w.Code, s.path+": "+w.Body.String())
	}

	w := do(r, http.MethodGet, "/api/analytics/dashboard-summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalDevices":1,"activeAlerts":1,"totalMaintenance":1,"avgMaintenanceCost":300}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/analytics/alerts-severity", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"severity":"Critical","count":1}]`, w.Body.String())

	w = do(r, http.MethodGet, "/api/alerts/active", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alert_id":1`)

	w = do(r, http.MethodPost, "/api/zones", `{"zone_id":1,"name":"Harbor","population":5000,"avg_income":30000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Zone ID already exists"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(t, testConfig())
	do(r, http.MethodGet, "/api/health", "")
	do(r, http.MethodGet, "/api/analytics/readings-distribution", "")

	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{endpoint="/api/health",method="GET",status="200"}`)
	assert.Contains(t, body, `analytics_cache_misses_total{operation="readings-distribution"}`)
}

func TestCORS(t *testing.T) {
	r := newRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/zones", nil)
	req.Header.Set("Origin", "http://dashboard.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://dashboard.local", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://elsewhere.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaticDashboard(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("const city = 1"), 0o600))

	cfg := testConfig()
	cfg.HTTP.StaticDir = dir
	r := newRouter(t, cfg)

	w := do(r, http.MethodGet, "/dashboard/app.js", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "city")
}
