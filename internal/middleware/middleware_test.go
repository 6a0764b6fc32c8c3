package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	mw := New(newTestLogger())

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(mw.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)

	headerID := resp.Header.Get(RequestIDKey)
	assert.Len(t, headerID, 26)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, headerID, string(body))
}

func TestRequestIDMiddleware_PreservesIncomingID(t *testing.T) {
	mw := New(newTestLogger())

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(mw.GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDKey, "given-id")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "given-id", resp.Header.Get(RequestIDKey))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "given-id", string(body))
}

func TestGetRequestID_WithoutMiddleware(t *testing.T) {
	mw := New(newTestLogger())

	app := fiber.New()
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(mw.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "unknown", string(body))
}

func TestRateLimiter_AllowsWithinBudget(t *testing.T) {
	mw := New(newTestLogger())

	app := fiber.New()
	app.Get("/ping", mw.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRateLimiter_RejectsWhenExhausted(t *testing.T) {
	mw := &middleware{
		rateLimitter: newRateLimiter(0, 0),
		log:          newTestLogger(),
	}

	app := fiber.New()
	app.Get("/ping", mw.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Contains(t, string(body), "Too many requests")
}

func TestGetLimiterFrom_ReusesBucketPerIP(t *testing.T) {
	limiter := newRateLimiter(50, 100)

	first := limiter.GetLimiterFrom("10.0.0.1")
	second := limiter.GetLimiterFrom("10.0.0.1")
	other := limiter.GetLimiterFrom("10.0.0.2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}
