package analyticsService

import (
	"ShopAssist/internal/api/analytics"
	contextPkg "ShopAssist/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultDays     = 7
	maxDays         = 3650
	topIntentsLimit = 10
)

func (s *analyticsService) GetOverview(ctx context.Context, days int) (*analytics.OverviewResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	days, since, err := resolveTimeRange(days)
	if err != nil {
		return nil, err
	}

	repo, err := s.analyticsRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	overview, err := repo.Metrics.GetOverview(ctx, since)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"days":       days,
			"error":      err.Error(),
		}).Error("Failed to load overview metrics")
		return nil, analytics.ErrQueryFailed
	}

	overview.Days = days
	return &overview, nil
}

func (s *analyticsService) GetConversationTrends(ctx context.Context, days int) (*analytics.TrendsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	days, since, err := resolveTimeRange(days)
	if err != nil {
		return nil, err
	}

	repo, err := s.analyticsRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	trends, err := repo.Metrics.GetConversationTrends(ctx, since)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"days":       days,
			"error":      err.Error(),
		}).Error("Failed to load conversation trends")
		return nil, analytics.ErrQueryFailed
	}

	return &analytics.TrendsResponse{
		Days:   days,
		Trends: trends,
	}, nil
}

func (s *analyticsService) GetSentimentDistribution(ctx context.Context, days int) (*analytics.SentimentDistributionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	days, since, err := resolveTimeRange(days)
	if err != nil {
		return nil, err
	}

	repo, err := s.analyticsRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	buckets, err := repo.Metrics.GetSentimentDistribution(ctx, since)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"days":       days,
			"error":      err.Error(),
		}).Error("Failed to load sentiment distribution")
		return nil, analytics.ErrQueryFailed
	}

	return &analytics.SentimentDistributionResponse{
		Days:      days,
		Sentiment: buckets,
	}, nil
}

func (s *analyticsService) GetTopIntents(ctx context.Context, days, limit int) (*analytics.TopIntentsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	days, since, err := resolveTimeRange(days)
	if err != nil {
		return nil, err
	}

	if limit < 1 || limit > 50 {
		limit = topIntentsLimit
	}

	repo, err := s.analyticsRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	usages, err := repo.Metrics.GetTopIntents(ctx, since, limit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"days":       days,
			"error":      err.Error(),
		}).Error("Failed to load top intents")
		return nil, analytics.ErrQueryFailed
	}

	return &analytics.TopIntentsResponse{
		Days:    days,
		Intents: usages,
	}, nil
}

func resolveTimeRange(days int) (int, time.Time, error) {
	if days == 0 {
		days = defaultDays
	}
	if days < 0 || days > maxDays {
		return 0, time.Time{}, analytics.ErrInvalidTimeRange
	}
	return days, time.Now().AddDate(0, 0, -days), nil
}
