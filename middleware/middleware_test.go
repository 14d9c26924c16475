package middleware

import (
	"bytes"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(buf *bytes.Buffer) *fiber.App {
	logger := slog.New(slog.NewTextHandler(buf, nil))

	app := fiber.New()
	app.Use(StructuredLogger(logger), Security())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": GetRequestID(c)})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "nope"})
	})
	return app
}

func TestStructuredLogger_AssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)

	id := resp.Header.Get(RequestIDHeader)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)
	assert.Contains(t, buf.String(), "request completed")
	assert.Contains(t, buf.String(), id)
}

func TestStructuredLogger_KeepsIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	incoming := uuid.New().String()
	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(RequestIDHeader, incoming)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, incoming, resp.Header.Get(RequestIDHeader))
}

func TestStructuredLogger_ReplacesMalformedRequestID(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(RequestIDHeader))
}

func TestStructuredLogger_WarnsOnClientError(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "client error")
}

func TestSecurityHeaders(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}
