package redis

import (
	"ShopAssist/internal/entity"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	sessionConversationTTL = 24 * time.Hour
	popularProductsTTL     = 5 * time.Minute

	sessionKeyPrefix   = "chat:session:"
	popularProductsKey = "chat:popular_products"
)

type IRedis interface {
	SetSessionConversation(ctx context.Context, sessionID, conversationID string) error
	GetSessionConversation(ctx context.Context, sessionID string) (string, error)
	DeleteSessionConversation(ctx context.Context, sessionID string) error
	SetPopularProducts(ctx context.Context, products []entity.Product) error
	GetPopularProducts(ctx context.Context) ([]entity.Product, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func NewWithClient(client *redis.Client) IRedis {
	return &redisClient{client: client}
}

func (r *redisClient) SetSessionConversation(ctx context.Context, sessionID, conversationID string) error {
	key := sessionKeyPrefix + sessionID
	err := r.client.Set(ctx, key, conversationID, sessionConversationTTL).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error caching conversation for key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetSessionConversation(ctx context.Context, sessionID string) (string, error) {
	key := sessionKeyPrefix + sessionID
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("No cached conversation for key %s", key))
		return "", err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting cached conversation for key %s: %v", key, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) DeleteSessionConversation(ctx context.Context, sessionID string) error {
	key := sessionKeyPrefix + sessionID
	if _, err := r.client.Del(ctx, key).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting cached conversation for key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) SetPopularProducts(ctx context.Context, products []entity.Product) error {
	payload, err := jsoniter.Marshal(products)
	if err != nil {
		logrus.Error(fmt.Sprintf("Error marshaling popular products: %v", err))
		return err
	}

	if err := r.client.Set(ctx, popularProductsKey, payload, popularProductsTTL).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching popular products: %v", err))
		return err
	}
	return nil
}

func (r *redisClient) GetPopularProducts(ctx context.Context) ([]entity.Product, error) {
	val, err := r.client.Get(ctx, popularProductsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		logrus.Debug("No cached popular products")
		return nil, err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting cached popular products: %v", err))
		return nil, err
	}

	var products []entity.Product
	if err := jsoniter.Unmarshal(val, &products); err != nil {
		logrus.Error(fmt.Sprintf("Error unmarshaling popular products: %v", err))
		return nil, err
	}
	return products, nil
}
