package analyticsService

import (
	"ShopAssist/internal/api/analytics"
	analyticsRepository "ShopAssist/internal/api/analytics/repository"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMetrics struct {
	overview    analytics.OverviewResponse
	overviewErr error
	trends      []analytics.TrendPoint
	trendsErr   error
	buckets     []analytics.SentimentBucket
	bucketsErr  error
	usages      []analytics.IntentUsage
	usagesErr   error

	gotSince time.Time
	gotLimit int
}

func (f *fakeMetrics) GetOverview(ctx context.Context, since time.Time) (analytics.OverviewResponse, error) {
	f.gotSince = since
	return f.overview, f.overviewErr
}

func (f *fakeMetrics) GetConversationTrends(ctx context.Context, since time.Time) ([]analytics.TrendPoint, error) {
	f.gotSince = since
	return f.trends, f.trendsErr
}

func (f *fakeMetrics) GetSentimentDistribution(ctx context.Context, since time.Time) ([]analytics.SentimentBucket, error) {
	f.gotSince = since
	return f.buckets, f.bucketsErr
}

func (f *fakeMetrics) GetTopIntents(ctx context.Context, since time.Time, limit int) ([]analytics.IntentUsage, error) {
	f.gotSince = since
	f.gotLimit = limit
	return f.usages, f.usagesErr
}

type fakeRepo struct {
	metrics *fakeMetrics
}

func (f *fakeRepo) NewClient(tx bool) (analyticsRepository.Client, error) {
	return analyticsRepository.Client{
		Metrics:  f.metrics,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newServiceFixture() (IAnalyticsService, *fakeMetrics) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	metrics := &fakeMetrics{}
	return NewAnalyticsService(logger, &fakeRepo{metrics: metrics}), metrics
}

func TestGetOverview_DefaultsToSevenDays(t *testing.T) {
	service, metrics := newServiceFixture()
	metrics.overview = analytics.OverviewResponse{
		TotalConversations: 12,
		ResolutionRate:     76.5,
		AvgSatisfaction:    4.2,
		TotalMessages:      240,
	}

	overview, err := service.GetOverview(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 7, overview.Days)
	assert.Equal(t, 12, overview.TotalConversations)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), metrics.gotSince, time.Minute)
}

func TestGetOverview_CustomRange(t *testing.T) {
	service, metrics := newServiceFixture()

	overview, err := service.GetOverview(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, 30, overview.Days)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), metrics.gotSince, time.Minute)
}

func TestGetOverview_InvalidRange(t *testing.T) {
	tests := []struct {
		name string
		days int
	}{
		{name: "negative", days: -1},
		{name: "beyond ten years", days: 3651},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, metrics := newServiceFixture()

			_, err := service.GetOverview(context.Background(), tt.days)

			assert.ErrorIs(t, err, analytics.ErrInvalidTimeRange)
			assert.True(t, metrics.gotSince.IsZero())
		})
	}
}

func TestGetOverview_RepoError(t *testing.T) {
	service, metrics := newServiceFixture()
	metrics.overviewErr = errors.New("connection reset")

	_, err := service.GetOverview(context.Background(), 7)

	assert.ErrorIs(t, err, analytics.ErrQueryFailed)
}

func TestGetConversationTrends(t *testing.T) {
	service, metrics := newServiceFixture()
	metrics.trends = []analytics.TrendPoint{
		{Date: "2026-08-18", Conversations: 5, Messages: 40, AvgSatisfaction: 4.5},
	}

	trends, err := service.GetConversationTrends(context.Background(), 14)

	require.NoError(t, err)
	assert.Equal(t, 14, trends.Days)
	require.Len(t, trends.Trends, 1)
	assert.Equal(t, "2026-08-18", trends.Trends[0].Date)
}

func TestGetConversationTrends_RepoError(t *testing.T) {
	service, metrics := newServiceFixture()
	metrics.trendsErr = errors.New("connection reset")

	_, err := service.GetConversationTrends(context.Background(), 7)

	assert.ErrorIs(t, err, analytics.ErrQueryFailed)
}

func TestGetSentimentDistribution(t *testing.T) {
	service, metrics := newServiceFixture()
	metrics.buckets = []analytics.SentimentBucket{
		{Sentiment: "Positive", Count: 10, AvgScore: 0.82},
		{Sentiment: "Negative", Count: 3, AvgScore: 0.65},
	}

	distribution, err := service.GetSentimentDistribution(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 7, distribution.Days)
	require.Len(t, distribution.Sentiment, 2)
	assert.Equal(t, "Positive", distribution.Sentiment[0].Sentiment)
}

func TestGetSentimentDistribution_RepoError(t *testing.T) {
	service, metrics := newServiceFixture()
	metrics.bucketsErr = errors.New("connection reset")

	_, err := service.GetSentimentDistribution(context.Background(), 7)

	assert.ErrorIs(t, err, analytics.ErrQueryFailed)
}

func TestGetTopIntents_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "zero falls back to default", limit: 0, wantLimit: 10},
		{name: "negative falls back to default", limit: -3, wantLimit: 10},
		{name: "above cap falls back to default", limit: 51, wantLimit: 10},
		{name: "lower bound", limit: 1, wantLimit: 1},
		{name: "upper bound", limit: 50, wantLimit: 50},
		{name: "in range", limit: 25, wantLimit: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, metrics := newServiceFixture()

			_, err := service.GetTopIntents(context.Background(), 7, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, metrics.gotLimit)
		})
	}
}

func TestGetTopIntents(t *testing.T) {
	service, metrics := newServiceFixture()
	metrics.usages = []analytics.IntentUsage{
		{Intent: "track_order", Count: 42, AvgConfidence: 0.95},
	}

	intents, err := service.GetTopIntents(context.Background(), 0, 5)

	require.NoError(t, err)
	assert.Equal(t, 7, intents.Days)
	require.Len(t, intents.Intents, 1)
	assert.Equal(t, "track_order", intents.Intents[0].Intent)
}

func TestGetTopIntents_RepoError(t *testing.T) {
	service, metrics := newServiceFixture()
	metrics.usagesErr = errors.New("connection reset")

	_, err := service.GetTopIntents(context.Background(), 7, 10)

	assert.ErrorIs(t, err, analytics.ErrQueryFailed)
}

func TestResolveTimeRange(t *testing.T) {
	days, since, err := resolveTimeRange(0)
	require.NoError(t, err)
	assert.Equal(t, 7, days)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), since, time.Minute)

	days, _, err = resolveTimeRange(3650)
	require.NoError(t, err)
	assert.Equal(t, 3650, days)

	_, _, err = resolveTimeRange(-1)
	assert.ErrorIs(t, err, analytics.ErrInvalidTimeRange)
}
