package analyticsHandler

import (
	"ShopAssist/internal/api/analytics"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsService struct {
	overview    *analytics.OverviewResponse
	overviewErr error
	trends      *analytics.TrendsResponse
	trendsErr   error
	sentiment   *analytics.SentimentDistributionResponse
	intents     *analytics.TopIntentsResponse

	gotDays  int
	gotLimit int
}

func (f *fakeAnalyticsService) GetOverview(ctx context.Context, days int) (*analytics.OverviewResponse, error) {
	f.gotDays = days
	return f.overview, f.overviewErr
}

func (f *fakeAnalyticsService) GetConversationTrends(ctx context.Context, days int) (*analytics.TrendsResponse, error) {
	f.gotDays = days
	return f.trends, f.trendsErr
}

func (f *fakeAnalyticsService) GetSentimentDistribution(ctx context.Context, days int) (*analytics.SentimentDistributionResponse, error) {
	f.gotDays = days
	return f.sentiment, nil
}

func (f *fakeAnalyticsService) GetTopIntents(ctx context.Context, days, limit int) (*analytics.TopIntentsResponse, error) {
	f.gotDays = days
	f.gotLimit = limit
	return f.intents, nil
}

type fakeMiddleware struct{}

func (fakeMiddleware) NewRateLimiter(ctx *fiber.Ctx) error {
	return ctx.Next()
}

func (fakeMiddleware) NewRequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error { return c.Next() }
}

func (fakeMiddleware) GetRequestID(ctx *fiber.Ctx) string {
	return "test-request"
}

func newTestApp(service *fakeAnalyticsService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	New(logger, validator.New(), fakeMiddleware{}, service).Start(app.Group("/api/v1"))
	return app
}

func get(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	return resp
}

func TestGetOverview(t *testing.T) {
	service := &fakeAnalyticsService{
		overview: &analytics.OverviewResponse{
			Days:               30,
			TotalConversations: 12,
			ResolutionRate:     76.5,
			AvgSatisfaction:    4.2,
			TotalMessages:      240,
		},
	}
	app := newTestApp(service)

	resp := get(t, app, "/api/v1/analytics/overview?days=30")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 30, service.gotDays)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var got analytics.OverviewResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 12, got.TotalConversations)
	assert.Equal(t, 76.5, got.ResolutionRate)
}

func TestGetOverview_DefaultsDays(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "missing", target: "/api/v1/analytics/overview"},
		{name: "not a number", target: "/api/v1/analytics/overview?days=week"},
		{name: "zero", target: "/api/v1/analytics/overview?days=0"},
		{name: "negative", target: "/api/v1/analytics/overview?days=-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &fakeAnalyticsService{overview: &analytics.OverviewResponse{}}
			app := newTestApp(service)

			resp := get(t, app, tt.target)

			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, 7, service.gotDays)
		})
	}
}

func TestGetOverview_InvalidTimeRange(t *testing.T) {
	service := &fakeAnalyticsService{overviewErr: analytics.ErrInvalidTimeRange}
	app := newTestApp(service)

	resp := get(t, app, "/api/v1/analytics/overview?days=9999")

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Contains(t, string(body), "INVALID_TIME_RANGE")
}

func TestGetConversationTrends(t *testing.T) {
	service := &fakeAnalyticsService{
		trends: &analytics.TrendsResponse{
			Days: 14,
			Trends: []analytics.TrendPoint{
				{Date: "2026-08-18", Conversations: 5, Messages: 40, AvgSatisfaction: 4.5},
			},
		},
	}
	app := newTestApp(service)

	resp := get(t, app, "/api/v1/analytics/trends?days=14")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 14, service.gotDays)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var got analytics.TrendsResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.Trends, 1)
	assert.Equal(t, "2026-08-18", got.Trends[0].Date)
}

func TestGetSentimentDistribution(t *testing.T) {
	service := &fakeAnalyticsService{
		sentiment: &analytics.SentimentDistributionResponse{
			Days: 7,
			Sentiment: []analytics.SentimentBucket{
				{Sentiment: "Positive", Count: 10, AvgScore: 0.82},
			},
		},
	}
	app := newTestApp(service)

	resp := get(t, app, "/api/v1/analytics/sentiment")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, service.gotDays)
}

func TestGetTopIntents(t *testing.T) {
	service := &fakeAnalyticsService{
		intents: &analytics.TopIntentsResponse{
			Days: 7,
			Intents: []analytics.IntentUsage{
				{Intent: "track_order", Count: 42, AvgConfidence: 0.95},
			},
		},
	}
	app := newTestApp(service)

	resp := get(t, app, "/api/v1/analytics/intents?limit=5")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, service.gotLimit)
}

func TestGetTopIntents_LimitOutOfRange(t *testing.T) {
	service := &fakeAnalyticsService{intents: &analytics.TopIntentsResponse{}}
	app := newTestApp(service)

	resp := get(t, app, "/api/v1/analytics/intents?limit=500")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, service.gotLimit)
}
