package chatService

import (
	"ShopAssist/internal/api/chat"
	chatRepository "ShopAssist/internal/api/chat/repository"
	"ShopAssist/pkg/formatter"
	"ShopAssist/pkg/intent"
	"ShopAssist/pkg/recommend"
	redisPkg "ShopAssist/pkg/redis"
	"ShopAssist/pkg/sentiment"
	"ShopAssist/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	HandleMessage(ctx context.Context, req chat.SendMessageRequest) (*chat.SendMessageResponse, error)
	GetConversationHistory(ctx context.Context, sessionID string, page, limit int) (*chat.ConversationHistoryResponse, error)
	EndConversation(ctx context.Context, sessionID string, req chat.EndConversationRequest) (*chat.EndConversationResponse, error)
	WelcomeMessage() string
}

type chatService struct {
	log         *logrus.Logger
	chatRepo    chatRepository.Repository
	redis       redisPkg.IRedis
	classifier  intent.IClassifier
	analyzer    sentiment.IAnalyzer
	formatter   formatter.IFormatter
	recommender recommend.IRecommender
	utils       utils.IUtils
}

func NewChatService(
	log *logrus.Logger,
	chatRepo chatRepository.Repository,
	redis redisPkg.IRedis,
	classifier intent.IClassifier,
	analyzer sentiment.IAnalyzer,
	formatter formatter.IFormatter,
	recommender recommend.IRecommender,
	utils utils.IUtils,
) IChatService {
	return &chatService{
		log:         log,
		chatRepo:    chatRepo,
		redis:       redis,
		classifier:  classifier,
		analyzer:    analyzer,
		formatter:   formatter,
		recommender: recommender,
		utils:       utils,
	}
}
