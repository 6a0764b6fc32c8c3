package config

import (
	"ShopAssist/database/postgres"
	analyticsHandler "ShopAssist/internal/api/analytics/handler"
	analyticsRepository "ShopAssist/internal/api/analytics/repository"
	analyticsService "ShopAssist/internal/api/analytics/service"
	"ShopAssist/internal/api/chat"
	chatHandler "ShopAssist/internal/api/chat/handler"
	chatRepository "ShopAssist/internal/api/chat/repository"
	chatService "ShopAssist/internal/api/chat/service"
	"ShopAssist/internal/middleware"
	"ShopAssist/pkg/formatter"
	"ShopAssist/pkg/intent"
	"ShopAssist/pkg/recommend"
	"ShopAssist/pkg/redis"
	"ShopAssist/pkg/sentiment"
	"ShopAssist/pkg/utils"
	"ShopAssist/pkg/whatsapp"
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	handlers       []handler
	redisServer    redis.IRedis
	whatsappClient whatsapp.IWhatsappChannel
	classifier     intent.IClassifier
	analyzer       sentiment.IAnalyzer
	formatter      formatter.IFormatter
	recommender    recommend.IRecommender
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if os.Getenv("DB_MIGRATE") == "true" {
			if err := postgres.EnsureSchema(db); err != nil {
				return fmt.Errorf("failed to ensure database schema: %w", err)
			}
		}

		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithWhatsappClient pairs the bot with a WhatsApp device. Skipped unless
// WHATSAPP_ENABLED=true since pairing needs an interactive QR scan.
func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		if os.Getenv("WHATSAPP_ENABLED") != "true" {
			return nil
		}

		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

func WithClassifier(classifier intent.IClassifier) ServerOption {
	return func(s *Server) error {
		s.classifier = classifier
		return nil
	}
}

func WithSentimentAnalyzer(analyzer sentiment.IAnalyzer) ServerOption {
	return func(s *Server) error {
		s.analyzer = analyzer
		return nil
	}
}

func WithFormatter(formatter formatter.IFormatter) ServerOption {
	return func(s *Server) error {
		s.formatter = formatter
		return nil
	}
}

func WithRecommender(recommender recommend.IRecommender) ServerOption {
	return func(s *Server) error {
		s.recommender = recommender
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Chat Domain
	chatRepo := chatRepository.New(s.db, s.log)
	chatServices := chatService.NewChatService(s.log, chatRepo, s.redisServer, s.classifier, s.analyzer, s.formatter, s.recommender, s.utils)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	// Analytics Domain
	analyticsRepo := analyticsRepository.New(s.db, s.log)
	analyticsServices := analyticsService.NewAnalyticsService(s.log, analyticsRepo)
	analyticsHandlers := analyticsHandler.New(s.log, s.validator, s.middleware, analyticsServices)

	if s.whatsappClient != nil {
		s.whatsappClient.OnMessage(func(ctx context.Context, sender, text string) (string, error) {
			response, err := chatServices.HandleMessage(ctx, chat.SendMessageRequest{
				Message:   text,
				UserID:    sender,
				SessionID: "wa:" + sender,
				Channel:   "whatsapp",
			})
			if err != nil {
				return "", err
			}
			return response.Reply, nil
		})
	}

	s.setupHealthCheck()
	s.setupMetrics()
	s.handlers = append(s.handlers, chatHandlers, analyticsHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

func (s *Server) setupMetrics() {
	s.engine.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
