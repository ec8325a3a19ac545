package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"inventario-iuca/pkg/contextkeys"
)

func TestRequestIDRegistraPeticionConLatencia(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	e := echo.New()
	e.Use(RequestID(logger))
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	require.Equal(t, 1, logs.Len())
	campos := logs.All()[0].ContextMap()
	assert.Equal(t, "GET", campos["metodo"])
	assert.Equal(t, int64(http.StatusOK), campos["estado"])
	assert.NotEmpty(t, campos["request_id"])

	latencia, ok := campos["latencia"].(time.Duration)
	require.True(t, ok)
	assert.GreaterOrEqual(t, latencia, time.Duration(0))
}

func TestRequestIDConservaElEncabezadoEntrante(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	e := echo.New()
	e.Use(RequestID(logger))
	e.GET("/ping", func(c echo.Context) error {
		id, _ := c.Request().Context().Value(contextkeys.RequestIDKey).(string)
		return c.String(http.StatusOK, id)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc-123", logs.All()[0].ContextMap()["request_id"])
}
