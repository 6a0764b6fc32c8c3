package main

import (
	"ShopAssist/internal/config"
	"ShopAssist/pkg/formatter"
	"ShopAssist/pkg/intent"
	"ShopAssist/pkg/log"
	"ShopAssist/pkg/recommend"
	"ShopAssist/pkg/redis"
	"ShopAssist/pkg/sentiment"
	"github.com/joho/godotenv"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()
	classifier := intent.NewClassifier()
	analyzer := sentiment.New()
	replyFormatter := formatter.New()
	recommender := recommend.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithMiddleware(),
		config.WithWhatsappClient(),
		config.WithClassifier(classifier),
		config.WithSentimentAnalyzer(analyzer),
		config.WithFormatter(replyFormatter),
		config.WithRecommender(recommender),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
