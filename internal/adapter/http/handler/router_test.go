package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lnledger/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	name string
	err  error
}

func (f *fakeChecker) Ping(_ context.Context) error { return f.err }
func (f *fakeChecker) Name() string                 { return f.name }

func TestRouter_Healthz(t *testing.T) {
	r := SetupRouter(RouterDeps{Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Readyz_AllHealthy(t *testing.T) {
	r := SetupRouter(RouterDeps{
		HealthCheckers: []ports.HealthChecker{
			&fakeChecker{name: "postgresql"},
			&fakeChecker{name: "redis"},
		},
		Logger: zerolog.Nop(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestRouter_Readyz_Degraded(t *testing.T) {
	r := SetupRouter(RouterDeps{
		HealthCheckers: []ports.HealthChecker{
			&fakeChecker{name: "postgresql"},
			&fakeChecker{name: "redis", err: errors.New("connection refused")},
		},
		Logger: zerolog.Nop(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])

	deps := body["dependencies"].(map[string]any)
	redis := deps["redis"].(map[string]any)
	assert.Equal(t, "unhealthy", redis["status"])
	assert.Contains(t, redis["error"], "connection refused")
}
