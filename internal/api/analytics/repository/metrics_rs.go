package analyticsRepository

import (
	"ShopAssist/internal/api/analytics"
	contextPkg "ShopAssist/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TrendPointDB struct {
	Date            time.Time       `db:"date"`
	Conversations   sql.NullInt64   `db:"conversations"`
	Messages        sql.NullInt64   `db:"messages"`
	AvgSatisfaction sql.NullFloat64 `db:"avg_satisfaction"`
}

type SentimentBucketDB struct {
	Sentiment sql.NullString  `db:"sentiment"`
	Count     sql.NullInt64   `db:"count"`
	AvgScore  sql.NullFloat64 `db:"avg_score"`
}

type IntentUsageDB struct {
	Intent        sql.NullString  `db:"intent"`
	Count         sql.NullInt64   `db:"count"`
	AvgConfidence sql.NullFloat64 `db:"avg_confidence"`
}

func (r *metricsRepository) GetOverview(ctx context.Context, since time.Time) (analytics.OverviewResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"since": since,
	}

	var overview analytics.OverviewResponse

	var totalConversations int
	if err := r.scanRow(ctx, queryCountConversations, argsKV, &totalConversations); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOverview conversation count err")
		return analytics.OverviewResponse{}, err
	}
	overview.TotalConversations = totalConversations

	var resolutionRate sql.NullFloat64
	if err := r.scanRow(ctx, queryResolutionRate, argsKV, &resolutionRate); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOverview resolution rate err")
		return analytics.OverviewResponse{}, err
	}
	overview.ResolutionRate = resolutionRate.Float64

	var avgSatisfaction sql.NullFloat64
	if err := r.scanRow(ctx, queryAvgSatisfaction, argsKV, &avgSatisfaction); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOverview satisfaction err")
		return analytics.OverviewResponse{}, err
	}
	overview.AvgSatisfaction = avgSatisfaction.Float64

	var totalMessages int
	if err := r.scanRow(ctx, queryCountMessages, argsKV, &totalMessages); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOverview message count err")
		return analytics.OverviewResponse{}, err
	}
	overview.TotalMessages = totalMessages

	return overview, nil
}

func (r *metricsRepository) GetConversationTrends(ctx context.Context, since time.Time) ([]analytics.TrendPoint, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"since": since,
	}

	query, args, err := sqlx.Named(queryConversationTrends, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetConversationTrends named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var trendsDB []TrendPointDB
	if err := r.q.SelectContext(ctx, &trendsDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetConversationTrends execution err")
		return nil, err
	}

	trends := make([]analytics.TrendPoint, 0, len(trendsDB))
	for _, trendDB := range trendsDB {
		trends = append(trends, analytics.TrendPoint{
			Date:            trendDB.Date.Format("2006-01-02"),
			Conversations:   int(trendDB.Conversations.Int64),
			Messages:        int(trendDB.Messages.Int64),
			AvgSatisfaction: trendDB.AvgSatisfaction.Float64,
		})
	}

	return trends, nil
}

func (r *metricsRepository) GetSentimentDistribution(ctx context.Context, since time.Time) ([]analytics.SentimentBucket, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"since": since,
	}

	query, args, err := sqlx.Named(querySentimentDistribution, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSentimentDistribution named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var bucketsDB []SentimentBucketDB
	if err := r.q.SelectContext(ctx, &bucketsDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSentimentDistribution execution err")
		return nil, err
	}

	buckets := make([]analytics.SentimentBucket, 0, len(bucketsDB))
	for _, bucketDB := range bucketsDB {
		buckets = append(buckets, analytics.SentimentBucket{
			Sentiment: bucketDB.Sentiment.String,
			Count:     int(bucketDB.Count.Int64),
			AvgScore:  bucketDB.AvgScore.Float64,
		})
	}

	return buckets, nil
}

func (r *metricsRepository) GetTopIntents(ctx context.Context, since time.Time, limit int) ([]analytics.IntentUsage, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"since": since,
		"limit": limit,
	}

	query, args, err := sqlx.Named(queryTopIntents, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTopIntents named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var usagesDB []IntentUsageDB
	if err := r.q.SelectContext(ctx, &usagesDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTopIntents execution err")
		return nil, err
	}

	usages := make([]analytics.IntentUsage, 0, len(usagesDB))
	for _, usageDB := range usagesDB {
		usages = append(usages, analytics.IntentUsage{
			Intent:        usageDB.Intent.String,
			Count:         int(usageDB.Count.Int64),
			AvgConfidence: usageDB.AvgConfidence.Float64,
		})
	}

	return usages, nil
}

func (r *metricsRepository) scanRow(ctx context.Context, namedQuery string, argsKV map[string]interface{}, dest interface{}) error {
	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)

	return r.q.QueryRowxContext(ctx, query, args...).Scan(dest)
}
