package setup

import (
	"employee-attendance/config"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}

func TestServerWiring(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Env: "test", CORSOrigins: "*"}

	db, err := InitDatabase(filepath.Join(t.TempDir(), "app.db"), logger)
	require.NoError(t, err)
	defer Shutdown(db, logger)

	fiberApp := NewFiberApp(cfg, logger)
	ApplyMiddleware(fiberApp, cfg, logger)
	RegisterRoutes(fiberApp, InitApp(db, logger))

	resp, err := fiberApp.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, err = fiberApp.Test(httptest.NewRequest("GET", "/no-such-route", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
