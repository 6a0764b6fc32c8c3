package analyticsHandler

import (
	analyticsService "ShopAssist/internal/api/analytics/service"
	"ShopAssist/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnalyticsHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	analyticsService analyticsService.IAnalyticsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as analyticsService.IAnalyticsService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		analyticsService: as,
	}
}

func (h *AnalyticsHandler) Start(srv fiber.Router) {
	analytics := srv.Group("/analytics")

	analytics.Get("/overview", h.GetOverview)
	analytics.Get("/trends", h.GetConversationTrends)
	analytics.Get("/sentiment", h.GetSentimentDistribution)
	analytics.Get("/intents", h.GetTopIntents)
}
