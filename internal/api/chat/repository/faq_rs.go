package chatRepository

import (
	"ShopAssist/internal/api/chat"
	"ShopAssist/internal/entity"
	contextPkg "ShopAssist/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type FaqDB struct {
	ID           sql.NullInt64  `db:"faq_id"`
	Question     sql.NullString `db:"question"`
	Answer       sql.NullString `db:"answer"`
	Category     sql.NullString `db:"category"`
	TimesAsked   sql.NullInt64  `db:"times_asked"`
	HelpfulCount sql.NullInt64  `db:"helpful_count"`
}

func (r *faqRepository) SearchFaq(ctx context.Context, searchQuery string) (entity.Faq, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var faqDB FaqDB

	argsKV := map[string]interface{}{
		"pattern": "%" + searchQuery + "%",
	}

	query, args, err := sqlx.Named(querySearchFaq, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchFaq named query preparation err")
		return entity.Faq{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&faqDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug("SearchFaq no matching entry found")
			return entity.Faq{}, chat.ErrFaqNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchFaq execution err")
		return entity.Faq{}, err
	}

	return r.makeFaq(faqDB), nil
}

func (r *faqRepository) IncrementTimesAsked(ctx context.Context, faqID int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"faq_id": faqID,
	}

	query, args, err := sqlx.Named(queryIncrementFaqTimesAsked, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementTimesAsked named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementTimesAsked execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return chat.ErrFaqNotFound
	}

	return nil
}

func (r *faqRepository) makeFaq(faqDB FaqDB) entity.Faq {
	return entity.Faq{
		ID:           faqDB.ID.Int64,
		Question:     faqDB.Question.String,
		Answer:       faqDB.Answer.String,
		Category:     faqDB.Category.String,
		TimesAsked:   int(faqDB.TimesAsked.Int64),
		HelpfulCount: int(faqDB.HelpfulCount.Int64),
	}
}
