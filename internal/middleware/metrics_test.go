package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-workflow/internal/logger"
	"content-workflow/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records count and status per route", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.POST("/api/v1/items/:id/transitions", func(c *gin.Context) {
			c.JSON(http.StatusConflict, gin.H{"error": "invalid transition"})
		})

		counter := metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/items/:id/transitions", "409")
		before := testutil.ToFloat64(counter)
		inFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/items/abc/transitions", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, before+1, testutil.ToFloat64(counter))
		assert.Equal(t, inFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
	})

	t.Run("unmatched routes share one label", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())

		counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")
		before := testutil.ToFloat64(counter)

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})

	t.Run("probes and scrapes are not recorded", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		for path := range unobservedPaths {
			router.GET(path, func(c *gin.Context) { c.Status(http.StatusOK) })
		}

		for path := range unobservedPaths {
			before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", path, "200"))
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, before, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", path, "200")), path)
		}
	})
}

func TestLoggerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	previous := logger.GetLogger()
	logger.SetLogger(logger.New(&buf, slog.LevelDebug))
	t.Cleanup(func() { logger.SetLogger(previous) })

	router := gin.New()
	router.Use(RequestID(), Logger())
	router.GET("/api/v1/items/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "content item not found"})
	})
	router.GET("/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/x", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	router.ServeHTTP(httptest.NewRecorder(), req)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/live", nil))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "HTTP request", entry["msg"])
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Equal(t, float64(404), entry["status"])
	assert.Equal(t, "/api/v1/items/x", entry["path"])
}
