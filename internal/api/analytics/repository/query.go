package analyticsRepository

const (
	queryCountConversations = `
		SELECT COUNT(*) AS total
		FROM conversations
		WHERE started_at >= :since
	`

	queryResolutionRate = `
		SELECT
			CAST(SUM(CASE WHEN resolved THEN 1.0 ELSE 0 END) / NULLIF(COUNT(*), 0) * 100 AS DECIMAL(5,2)) AS resolution_rate
		FROM conversations
		WHERE started_at >= :since
	`

	queryAvgSatisfaction = `
		SELECT
			AVG(CAST(satisfaction_score AS FLOAT)) AS avg_satisfaction
		FROM conversations
		WHERE started_at >= :since
		AND satisfaction_score IS NOT NULL
	`

	queryCountMessages = `
		SELECT COUNT(*) AS total
		FROM messages m
		JOIN conversations c ON m.conversation_id = c.conversation_id
		WHERE c.started_at >= :since
	`

	queryConversationTrends = `
		SELECT
			CAST(started_at AS DATE) AS date,
			COUNT(*) AS conversations,
			SUM(total_messages) AS messages,
			AVG(CAST(satisfaction_score AS FLOAT)) AS avg_satisfaction
		FROM conversations
		WHERE started_at >= :since
		GROUP BY CAST(started_at AS DATE)
		ORDER BY CAST(started_at AS DATE)
	`

	querySentimentDistribution = `
		SELECT
			m.sentiment,
			COUNT(*) AS count,
			AVG(m.sentiment_score) AS avg_score
		FROM messages m
		JOIN conversations c ON m.conversation_id = c.conversation_id
		WHERE c.started_at >= :since
		AND m.sender_type = 'User'
		AND m.sentiment IS NOT NULL
		GROUP BY m.sentiment
	`

	queryTopIntents = `
		SELECT
			m.intent,
			COUNT(*) AS count,
			AVG(m.confidence_score) AS avg_confidence
		FROM messages m
		JOIN conversations c ON m.conversation_id = c.conversation_id
		WHERE c.started_at >= :since
		AND m.intent IS NOT NULL
		GROUP BY m.intent
		ORDER BY COUNT(*) DESC
		LIMIT :limit
	`
)
