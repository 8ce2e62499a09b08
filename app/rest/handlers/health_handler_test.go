package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-sync-service/app/circuitbreaker"
)

func tripBreaker(t *testing.T, b *circuitbreaker.Breaker) {
	t.Helper()

	for i := 0; i < circuitbreaker.DefaultFailureThreshold; i++ {
		_ = b.Execute(context.Background(), func(context.Context) error {
			return assert.AnError
		})
	}
	require.Equal(t, circuitbreaker.StateOpen, b.State())
}

func TestHealthCheck_Healthy(t *testing.T) {
	registry := circuitbreaker.NewRegistry(testLogger())
	t.Cleanup(registry.Close)
	registry.GetOrCreate("keycloak", circuitbreaker.Settings{})

	handler := NewHealthHandler(registry, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp DependencyHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Contains(t, resp.Breakers, "keycloak")
}

type failingPinger struct{}

func (failingPinger) HealthCheck(context.Context) error { return assert.AnError }

func TestHealthCheck_DatabaseUnreachableDegrades(t *testing.T) {
	registry := circuitbreaker.NewRegistry(testLogger())
	t.Cleanup(registry.Close)

	handler := NewHealthHandler(registry, failingPinger{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp DependencyHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unreachable", resp.Database)
}

func TestHealthCheck_OpenBreakerDegrades(t *testing.T) {
	registry := circuitbreaker.NewRegistry(testLogger())
	t.Cleanup(registry.Close)
	breaker := registry.GetOrCreate("user-service", circuitbreaker.Settings{})
	tripBreaker(t, breaker)

	handler := NewHealthHandler(registry, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp DependencyHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
}

func TestResetBreaker(t *testing.T) {
	registry := circuitbreaker.NewRegistry(testLogger())
	t.Cleanup(registry.Close)
	breaker := registry.GetOrCreate("keycloak", circuitbreaker.Settings{})
	tripBreaker(t, breaker)

	handler := NewHealthHandler(registry, nil, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/breakers/keycloak/reset", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("keycloak")

	require.NoError(t, handler.ResetBreaker(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, circuitbreaker.StateClosed, breaker.State())
}

func TestResetBreaker_Unknown(t *testing.T) {
	registry := circuitbreaker.NewRegistry(testLogger())
	t.Cleanup(registry.Close)

	handler := NewHealthHandler(registry, nil, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/breakers/nope/reset", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("nope")

	require.NoError(t, handler.ResetBreaker(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
