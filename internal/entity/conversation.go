package entity

import "time"

type SenderType string

const (
	SenderUser SenderType = "User"
	SenderBot  SenderType = "Bot"
)

type Conversation struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	SessionID         string    `json:"session_id"`
	Channel           string    `json:"channel"`
	StartedAt         time.Time `json:"started_at"`
	EndedAt           time.Time `json:"ended_at"`
	TotalMessages     int       `json:"total_messages"`
	Resolved          bool      `json:"resolved"`
	SatisfactionScore int       `json:"satisfaction_score"`
}

type Message struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	SenderType     SenderType `json:"sender_type"`
	Text           string     `json:"text"`
	Intent         string     `json:"intent"`
	Confidence     float64    `json:"confidence"`
	Sentiment      string     `json:"sentiment"`
	SentimentScore float64    `json:"sentiment_score"`
	CreatedAt      time.Time  `json:"created_at"`
}
