package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/echo", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(RequestIDLocalKey).(string))
	})

	tests := []struct {
		name   string
		header string
		check  func(t *testing.T, got string)
	}{
		{
			name: "generated when absent",
			check: func(t *testing.T, got string) {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			},
		},
		{
			name:   "caller id is kept",
			header: "test-id-123",
			check: func(t *testing.T, got string) {
				assert.Equal(t, "test-id-123", got)
			},
		},
		{
			name:   "oversized id is replaced",
			header: strings.Repeat("x", 200),
			check: func(t *testing.T, got string) {
				assert.Len(t, got, 36)
			},
		},
		{
			name:   "ids with spaces are replaced",
			header: "abc def",
			check: func(t *testing.T, got string) {
				assert.NotEqual(t, "abc def", got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/echo", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			got := resp.Header.Get(RequestIDHeader)
			assert.Equal(t, got, string(body))
			tt.check(t, got)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
}

func TestLogger_ServerErrorAndScopedEntry(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, time.UTC))

	app.Get("/boom", func(c *fiber.Ctx) error {
		LoggerFromCtx(c).WithField("stage", "handler").Warn("about to fail")
		return c.SendStatus(fiber.StatusInternalServerError)
	})

	req := httptest.NewRequest("GET", "/boom", nil)
	req.Header.Set(RequestIDHeader, "rid-42")
	resp, _ := app.Test(req)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var handlerLine, requestLine map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &handlerLine))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &requestLine))

	assert.Equal(t, "rid-42", handlerLine["request_id"])
	assert.Equal(t, "handler", handlerLine["stage"])
	assert.Equal(t, "warning", handlerLine["level"])

	assert.Equal(t, "rid-42", requestLine["request_id"])
	assert.Equal(t, "error", requestLine["level"])
	assert.Equal(t, float64(500), requestLine["status"])
}
