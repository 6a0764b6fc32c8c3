package chatRepository

import (
	"ShopAssist/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Orders:        &orderRepository{q: sqlExecutor, log: r.log},
		Products:      &productRepository{q: sqlExecutor, log: r.log},
		Faq:           &faqRepository{q: sqlExecutor, log: r.log},
		Conversations: &conversationRepository{q: sqlExecutor, log: r.log},
		Messages:      &messageRepository{q: sqlExecutor, log: r.log},
		Commit:        commitFunc,
		Rollback:      rollbackFunc,
	}, nil
}

type Client struct {
	Orders interface {
		GetOrderByNumber(ctx context.Context, orderNumber string) (entity.Order, error)
	}

	Products interface {
		SearchProducts(ctx context.Context, query, category string, limit int) ([]entity.Product, error)
		GetPopularProducts(ctx context.Context, limit int) ([]entity.Product, error)
	}

	Faq interface {
		SearchFaq(ctx context.Context, query string) (entity.Faq, error)
		IncrementTimesAsked(ctx context.Context, faqID int64) error
	}

	Conversations interface {
		CreateConversation(ctx context.Context, conversation entity.Conversation) error
		GetOpenConversationBySession(ctx context.Context, sessionID string) (entity.Conversation, error)
		GetConversationBySession(ctx context.Context, sessionID string) (entity.Conversation, error)
		IncrementMessageCount(ctx context.Context, conversationID string) error
		EndConversation(ctx context.Context, conversation entity.Conversation) error
	}

	Messages interface {
		CreateMessage(ctx context.Context, message entity.Message) error
		GetMessagesByConversationID(ctx context.Context, conversationID string, limit, offset int) ([]entity.Message, int, error)
	}

	Commit   func() error
	Rollback func() error
}

type orderRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type productRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type faqRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type conversationRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type messageRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
