package analyticsHandler

import (
	contextPkg "ShopAssist/pkg/context"
	"ShopAssist/pkg/handlerUtil"
	"ShopAssist/pkg/log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AnalyticsHandler) GetOverview(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing analytics overview request")

	days := h.parseDays(ctx)

	response, err := h.analyticsService.GetOverview(c, days)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_overview")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *AnalyticsHandler) GetConversationTrends(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing conversation trends request")

	days := h.parseDays(ctx)

	response, err := h.analyticsService.GetConversationTrends(c, days)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_conversation_trends")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *AnalyticsHandler) GetSentimentDistribution(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing sentiment distribution request")

	days := h.parseDays(ctx)

	response, err := h.analyticsService.GetSentimentDistribution(c, days)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_sentiment_distribution")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *AnalyticsHandler) GetTopIntents(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing top intents request")

	days := h.parseDays(ctx)

	limit, err := strconv.Atoi(ctx.Query("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}

	response, err := h.analyticsService.GetTopIntents(c, days, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_top_intents")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *AnalyticsHandler) parseDays(ctx *fiber.Ctx) int {
	days, err := strconv.Atoi(ctx.Query("days", "7"))
	if err != nil || days < 1 {
		return 7
	}
	return days
}
