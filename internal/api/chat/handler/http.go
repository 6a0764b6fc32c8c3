package chatHandler

import (
	chatService "ShopAssist/internal/api/chat/service"
	"ShopAssist/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chat")

	chat.Post("/messages", h.middleware.NewRateLimiter, h.SendMessage)
	chat.Get("/conversations/:sessionId/messages", h.GetConversationHistory)
	chat.Post("/conversations/:sessionId/end", h.EndConversation)

	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
	chat.Use("/ws", wsMiddleware)
	chat.Get("/ws", websocket.New(h.handleWebSocket))
}
