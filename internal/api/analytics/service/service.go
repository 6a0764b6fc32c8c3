package analyticsService

import (
	"ShopAssist/internal/api/analytics"
	analyticsRepository "ShopAssist/internal/api/analytics/repository"
	"context"

	"github.com/sirupsen/logrus"
)

type IAnalyticsService interface {
	GetOverview(ctx context.Context, days int) (*analytics.OverviewResponse, error)
	GetConversationTrends(ctx context.Context, days int) (*analytics.TrendsResponse, error)
	GetSentimentDistribution(ctx context.Context, days int) (*analytics.SentimentDistributionResponse, error)
	GetTopIntents(ctx context.Context, days, limit int) (*analytics.TopIntentsResponse, error)
}

type analyticsService struct {
	log           *logrus.Logger
	analyticsRepo analyticsRepository.Repository
}

func NewAnalyticsService(
	log *logrus.Logger,
	analyticsRepo analyticsRepository.Repository,
) IAnalyticsService {
	return &analyticsService{
		log:           log,
		analyticsRepo: analyticsRepo,
	}
}
