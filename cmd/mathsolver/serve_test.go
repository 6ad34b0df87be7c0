package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rhuss/mathsolver/pkg/config"
	transporthttp "github.com/rhuss/mathsolver/pkg/transport/http"
)

func TestServerOptionsMountsMetrics(t *testing.T) {
	c := config.Defaults()
	srv := transporthttp.NewServer(solvedEngine(), serverOptions(&c, solvedEngine())...)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mathsolver_requests_in_flight")
}

func TestServerOptionsMetricsDisabled(t *testing.T) {
	c := config.Defaults()
	c.Observability.Metrics.Enabled = false
	srv := transporthttp.NewServer(solvedEngine(), serverOptions(&c, solvedEngine())...)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServerOptionsMCPOnlyWhenEnabled(t *testing.T) {
	c := config.Defaults()
	assert.Len(t, serverOptions(&c, solvedEngine()), 6)

	c.MCP.Enabled = true
	assert.Len(t, serverOptions(&c, solvedEngine()), 7)
}
