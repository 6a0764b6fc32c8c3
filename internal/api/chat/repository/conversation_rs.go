package chatRepository

import (
	"ShopAssist/internal/api/chat"
	"ShopAssist/internal/entity"
	contextPkg "ShopAssist/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ConversationDB struct {
	ID                sql.NullString `db:"conversation_id"`
	UserID            sql.NullString `db:"user_id"`
	SessionID         sql.NullString `db:"session_id"`
	Channel           sql.NullString `db:"channel"`
	StartedAt         time.Time      `db:"started_at"`
	EndedAt           sql.NullTime   `db:"ended_at"`
	TotalMessages     sql.NullInt64  `db:"total_messages"`
	Resolved          sql.NullBool   `db:"resolved"`
	SatisfactionScore sql.NullInt64  `db:"satisfaction_score"`
}

func (r *conversationRepository) CreateConversation(ctx context.Context, conversation entity.Conversation) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"conversation_id": conversation.ID,
		"user_id":         conversation.UserID,
		"session_id":      conversation.SessionID,
		"channel":         conversation.Channel,
		"started_at":      conversation.StartedAt,
	}

	query, args, err := sqlx.Named(queryCreateConversation, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateConversation named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateConversation execution err")
		return err
	}

	return nil
}

func (r *conversationRepository) GetOpenConversationBySession(ctx context.Context, sessionID string) (entity.Conversation, error) {
	return r.getBySession(ctx, queryGetOpenConversationBySession, sessionID)
}

func (r *conversationRepository) GetConversationBySession(ctx context.Context, sessionID string) (entity.Conversation, error) {
	return r.getBySession(ctx, queryGetConversationBySession, sessionID)
}

func (r *conversationRepository) getBySession(ctx context.Context, namedQuery, sessionID string) (entity.Conversation, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var conversationDB ConversationDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetConversationBySession named query preparation err")
		return entity.Conversation{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&conversationDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
			}).Debug("GetConversationBySession no conversation found")
			return entity.Conversation{}, chat.ErrConversationNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetConversationBySession execution err")
		return entity.Conversation{}, err
	}

	return r.makeConversation(conversationDB), nil
}

func (r *conversationRepository) IncrementMessageCount(ctx context.Context, conversationID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"conversation_id": conversationID,
	}

	query, args, err := sqlx.Named(queryIncrementConversationMessages, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementMessageCount named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementMessageCount execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return chat.ErrConversationNotFound
	}

	return nil
}

func (r *conversationRepository) EndConversation(ctx context.Context, conversation entity.Conversation) error {
	requestID := contextPkg.GetRequestID(ctx)

	satisfactionScore := sql.NullInt64{
		Int64: int64(conversation.SatisfactionScore),
		Valid: conversation.SatisfactionScore > 0,
	}

	argsKV := map[string]interface{}{
		"conversation_id":    conversation.ID,
		"ended_at":           conversation.EndedAt,
		"resolved":           conversation.Resolved,
		"satisfaction_score": satisfactionScore,
	}

	query, args, err := sqlx.Named(queryEndConversation, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("EndConversation named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("EndConversation execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return chat.ErrConversationNotActive
	}

	return nil
}

func (r *conversationRepository) makeConversation(conversationDB ConversationDB) entity.Conversation {
	conversation := entity.Conversation{
		ID:                conversationDB.ID.String,
		UserID:            conversationDB.UserID.String,
		SessionID:         conversationDB.SessionID.String,
		Channel:           conversationDB.Channel.String,
		StartedAt:         conversationDB.StartedAt,
		TotalMessages:     int(conversationDB.TotalMessages.Int64),
		Resolved:          conversationDB.Resolved.Bool,
		SatisfactionScore: int(conversationDB.SatisfactionScore.Int64),
	}

	if conversationDB.EndedAt.Valid {
		conversation.EndedAt = conversationDB.EndedAt.Time
	}

	return conversation
}
