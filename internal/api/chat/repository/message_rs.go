package chatRepository

import (
	"ShopAssist/internal/entity"
	contextPkg "ShopAssist/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type MessageDB struct {
	ID             sql.NullString  `db:"message_id"`
	ConversationID sql.NullString  `db:"conversation_id"`
	SenderType     sql.NullString  `db:"sender_type"`
	Text           sql.NullString  `db:"message_text"`
	Intent         sql.NullString  `db:"intent"`
	Confidence     sql.NullFloat64 `db:"confidence_score"`
	Sentiment      sql.NullString  `db:"sentiment"`
	SentimentScore sql.NullFloat64 `db:"sentiment_score"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (r *messageRepository) CreateMessage(ctx context.Context, message entity.Message) error {
	requestID := contextPkg.GetRequestID(ctx)

	// Intent and sentiment stay NULL when the sender side never produced them,
	// so the analytics aggregates can filter on them.
	intent := sql.NullString{String: message.Intent, Valid: message.Intent != ""}
	confidence := sql.NullFloat64{Float64: message.Confidence, Valid: message.Intent != ""}
	sentiment := sql.NullString{String: message.Sentiment, Valid: message.Sentiment != ""}
	sentimentScore := sql.NullFloat64{Float64: message.SentimentScore, Valid: message.Sentiment != ""}

	argsKV := map[string]interface{}{
		"message_id":       message.ID,
		"conversation_id":  message.ConversationID,
		"sender_type":      string(message.SenderType),
		"message_text":     message.Text,
		"intent":           intent,
		"confidence_score": confidence,
		"sentiment":        sentiment,
		"sentiment_score":  sentimentScore,
		"created_at":       message.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateMessage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateMessage named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateMessage execution err")
		return err
	}

	return nil
}

func (r *messageRepository) GetMessagesByConversationID(ctx context.Context, conversationID string, limit, offset int) ([]entity.Message, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"conversation_id": conversationID,
		"limit":           limit,
		"offset":          offset,
	}

	query, args, err := sqlx.Named(queryGetMessagesByConversationID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMessagesByConversationID named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	var messagesDB []MessageDB
	if err := r.q.SelectContext(ctx, &messagesDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMessagesByConversationID execution err")
		return nil, 0, err
	}

	countQuery, countArgs, err := sqlx.Named(queryCountMessagesByConversationID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMessagesByConversationID count query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	var total int
	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMessagesByConversationID count execution err")
		return nil, 0, err
	}

	messages := make([]entity.Message, 0, len(messagesDB))
	for _, messageDB := range messagesDB {
		messages = append(messages, r.makeMessage(messageDB))
	}

	return messages, total, nil
}

func (r *messageRepository) makeMessage(messageDB MessageDB) entity.Message {
	return entity.Message{
		ID:             messageDB.ID.String,
		ConversationID: messageDB.ConversationID.String,
		SenderType:     entity.SenderType(messageDB.SenderType.String),
		Text:           messageDB.Text.String,
		Intent:         messageDB.Intent.String,
		Confidence:     messageDB.Confidence.Float64,
		Sentiment:      messageDB.Sentiment.String,
		SentimentScore: messageDB.SentimentScore.Float64,
		CreatedAt:      messageDB.CreatedAt,
	}
}
