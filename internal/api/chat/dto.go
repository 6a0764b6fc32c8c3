package chat

import "time"

type SendMessageRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id" validate:"required,min=1,max=128"`
	Channel   string `json:"channel" validate:"omitempty,oneof=web whatsapp"`
}

type SendMessageResponse struct {
	Reply          string  `json:"reply"`
	Intent         string  `json:"intent"`
	Confidence     float64 `json:"confidence"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	ConversationID string  `json:"conversation_id"`
}

type ConversationHistoryResponse struct {
	ConversationID string            `json:"conversation_id"`
	SessionID      string            `json:"session_id"`
	Channel        string            `json:"channel"`
	StartedAt      time.Time         `json:"started_at"`
	EndedAt        *time.Time        `json:"ended_at,omitempty"`
	TotalMessages  int               `json:"total_messages"`
	Messages       []MessageResponse `json:"messages"`
}

type MessageResponse struct {
	ID             string    `json:"id"`
	SenderType     string    `json:"sender_type"`
	Text           string    `json:"message_text"`
	Intent         string    `json:"intent,omitempty"`
	Confidence     float64   `json:"confidence,omitempty"`
	Sentiment      string    `json:"sentiment,omitempty"`
	SentimentScore float64   `json:"sentiment_score,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type EndConversationRequest struct {
	Resolved          bool `json:"resolved"`
	SatisfactionScore int  `json:"satisfaction_score" validate:"omitempty,min=1,max=5"`
}

type EndConversationResponse struct {
	ConversationID string    `json:"conversation_id"`
	EndedAt        time.Time `json:"ended_at"`
	TotalMessages  int       `json:"total_messages"`
	Resolved       bool      `json:"resolved"`
}
