package preview

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hautu-waka/wakabuild/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Output.File = filepath.Join(t.TempDir(), "page.html")
	return New(cfg)
}

func TestHandlePage_BeforeFirstGoodBuild(t *testing.T) {
	s := testServer(t)
	rr := httptest.NewRecorder()
	s.routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestHandlePage_ServesBuiltOutput(t *testing.T) {
	s := testServer(t)
	require.NoError(t, os.WriteFile(s.cfg.Output.File, []byte("<html>ok</html>"), 0o644))
	s.mu.Lock()
	s.hasGoodBuild = true
	s.mu.Unlock()

	rr := httptest.NewRecorder()
	s.routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "ok")
}

func TestHandleHealth_ReportsDegradedBuild(t *testing.T) {
	s := testServer(t)
	s.mu.Lock()
	s.hasGoodBuild = true
	s.lastErr = errors.New("records went missing")
	s.mu.Unlock()

	rr := httptest.NewRecorder()
	s.routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	require.Equal(t, "degraded", status["status"])
	require.Equal(t, true, status["has_good_build"])
	require.Contains(t, status["last_error"], "missing")
}

func TestMetricsEndpointRegistered(t *testing.T) {
	s := testServer(t)
	rr := httptest.NewRecorder()
	s.routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
}
