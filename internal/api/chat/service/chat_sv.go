package chatService

import (
	"ShopAssist/internal/api/chat"
	"ShopAssist/internal/entity"
	contextPkg "ShopAssist/pkg/context"
	"ShopAssist/pkg/metrics"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultChannel = "web"

func (s *chatService) HandleMessage(ctx context.Context, req chat.SendMessageRequest) (*chat.SendMessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	start := time.Now()

	text := strings.TrimSpace(req.Message)
	channel := req.Channel
	if channel == "" {
		channel = defaultChannel
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": req.SessionID,
		"channel":    channel,
	}).Debug("Handling incoming chat message")

	sentimentResult := s.analyzer.Analyze(text)

	// The turn answers even when the conversation store is down; message
	// logging is skipped for this turn in that case.
	conversationID, err := s.getOrCreateConversation(ctx, req.UserID, req.SessionID, channel)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": req.SessionID,
			"error":      err.Error(),
		}).Warn("Conversation resolution failed, answering without message log")
		conversationID = ""
	}

	if conversationID != "" {
		userMessage := entity.Message{
			ConversationID: conversationID,
			SenderType:     entity.SenderUser,
			Text:           text,
			Sentiment:      sentimentResult.Label,
			SentimentScore: sentimentResult.Score,
		}
		if err := s.saveMessage(ctx, userMessage); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":      requestID,
				"conversation_id": conversationID,
			}).Warn("Failed to log user message")
		}
	}

	intentResult := s.classifier.Classify(text)

	reply := s.safeDispatch(ctx, intentResult, text, req.UserID)

	if conversationID != "" {
		botMessage := entity.Message{
			ConversationID: conversationID,
			SenderType:     entity.SenderBot,
			Text:           reply,
			Intent:         intentResult.Intent,
			Confidence:     intentResult.Confidence,
		}
		if err := s.saveMessage(ctx, botMessage); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":      requestID,
				"conversation_id": conversationID,
			}).Warn("Failed to log bot message")
		}
	}

	metrics.MessagesProcessed.WithLabelValues(intentResult.Intent, channel).Inc()
	metrics.MessageDuration.WithLabelValues(intentResult.Intent).Observe(time.Since(start).Seconds())

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"conversation_id": conversationID,
		"intent":          intentResult.Intent,
		"sentiment":       sentimentResult.Label,
	}).Info("Chat message handled")

	return &chat.SendMessageResponse{
		Reply:          reply,
		Intent:         intentResult.Intent,
		Confidence:     intentResult.Confidence,
		Sentiment:      sentimentResult.Label,
		SentimentScore: sentimentResult.Score,
		ConversationID: conversationID,
	}, nil
}

func (s *chatService) WelcomeMessage() string {
	return s.formatter.Welcome()
}

func (s *chatService) GetConversationHistory(ctx context.Context, sessionID string, page, limit int) (*chat.ConversationHistoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := (page - 1) * limit

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	conversation, err := repo.Conversations.GetConversationBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	messages, _, err := repo.Messages.GetMessagesByConversationID(ctx, conversation.ID, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversation.ID,
			"error":           err.Error(),
		}).Error("Failed to load conversation messages")
		return nil, err
	}

	response := &chat.ConversationHistoryResponse{
		ConversationID: conversation.ID,
		SessionID:      conversation.SessionID,
		Channel:        conversation.Channel,
		StartedAt:      conversation.StartedAt,
		TotalMessages:  conversation.TotalMessages,
		Messages:       make([]chat.MessageResponse, 0, len(messages)),
	}
	if !conversation.EndedAt.IsZero() {
		endedAt := conversation.EndedAt
		response.EndedAt = &endedAt
	}

	for _, message := range messages {
		response.Messages = append(response.Messages, chat.MessageResponse{
			ID:             message.ID,
			SenderType:     string(message.SenderType),
			Text:           message.Text,
			Intent:         message.Intent,
			Confidence:     message.Confidence,
			Sentiment:      message.Sentiment,
			SentimentScore: message.SentimentScore,
			CreatedAt:      message.CreatedAt,
		})
	}

	return response, nil
}

func (s *chatService) EndConversation(ctx context.Context, sessionID string, req chat.EndConversationRequest) (*chat.EndConversationResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	conversation, err := repo.Conversations.GetOpenConversationBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, chat.ErrConversationNotFound) {
			return nil, chat.ErrConversationNotActive
		}
		return nil, err
	}

	conversation.EndedAt = time.Now()
	conversation.Resolved = req.Resolved
	conversation.SatisfactionScore = req.SatisfactionScore

	if err := repo.Conversations.EndConversation(ctx, conversation); err != nil {
		return nil, err
	}

	if err := s.redis.DeleteSessionConversation(ctx, sessionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
		}).Debug("Failed to evict cached conversation")
	}

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"conversation_id": conversation.ID,
		"resolved":        conversation.Resolved,
	}).Info("Conversation ended")

	return &chat.EndConversationResponse{
		ConversationID: conversation.ID,
		EndedAt:        conversation.EndedAt,
		TotalMessages:  conversation.TotalMessages,
		Resolved:       conversation.Resolved,
	}, nil
}

func (s *chatService) getOrCreateConversation(ctx context.Context, userID, sessionID, channel string) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if cachedID, err := s.redis.GetSessionConversation(ctx, sessionID); err == nil && cachedID != "" {
		return cachedID, nil
	}

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		return "", err
	}

	conversation, err := repo.Conversations.GetOpenConversationBySession(ctx, sessionID)
	if err == nil {
		if cacheErr := s.redis.SetSessionConversation(ctx, sessionID, conversation.ID); cacheErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
			}).Debug("Failed to cache conversation id")
		}
		return conversation.ID, nil
	}
	if !errors.Is(err, chat.ErrConversationNotFound) {
		return "", err
	}

	now := time.Now()
	conversationID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate conversation id")
		return "", err
	}

	newConversation := entity.Conversation{
		ID:        conversationID,
		UserID:    userID,
		SessionID: sessionID,
		Channel:   channel,
		StartedAt: now,
	}

	if err := repo.Conversations.CreateConversation(ctx, newConversation); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to create conversation in database")
		return "", chat.ErrConversationCreateFailed
	}

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"conversation_id": conversationID,
		"session_id":      sessionID,
		"channel":         channel,
	}).Info("Created new conversation")

	if cacheErr := s.redis.SetSessionConversation(ctx, sessionID, conversationID); cacheErr != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
		}).Debug("Failed to cache conversation id")
	}

	return conversationID, nil
}

func (s *chatService) saveMessage(ctx context.Context, message entity.Message) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(true)
	if err != nil {
		return err
	}
	defer repo.Rollback()

	now := time.Now()
	messageID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate message id")
		return err
	}

	message.ID = messageID
	message.CreatedAt = now

	if err := repo.Messages.CreateMessage(ctx, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": message.ConversationID,
			"error":           err.Error(),
		}).Error("Failed to save message in database")
		return chat.ErrMessageSaveFailed
	}

	if err := repo.Conversations.IncrementMessageCount(ctx, message.ConversationID); err != nil {
		if errors.Is(err, chat.ErrConversationNotFound) {
			return err
		}
		return chat.ErrMessageSaveFailed
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit message transaction")
		return err
	}

	return nil
}
