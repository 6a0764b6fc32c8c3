package chatRepository

const (
	queryGetOrderByNumber = `
		SELECT
			o.order_id, o.user_id, o.order_number, o.status,
			o.order_date, o.total_amount, o.shipping_address,
			o.tracking_number, o.estimated_delivery,
			u.full_name, u.email
		FROM orders o
		JOIN users u ON u.user_id = o.user_id
		WHERE o.order_number = :order_number
	`

	querySearchProducts = `
		SELECT
			product_id, product_name, category, price,
			rating, description, stock_quantity, reviews_count
		FROM products
		WHERE is_active = TRUE
		AND stock_quantity > 0
		AND (product_name ILIKE :pattern OR description ILIKE :pattern)
		ORDER BY rating DESC, reviews_count DESC
		LIMIT :limit
	`

	querySearchProductsByCategory = `
		SELECT
			product_id, product_name, category, price,
			rating, description, stock_quantity, reviews_count
		FROM products
		WHERE is_active = TRUE
		AND stock_quantity > 0
		AND (product_name ILIKE :pattern OR description ILIKE :pattern)
		AND category = :category
		ORDER BY rating DESC, reviews_count DESC
		LIMIT :limit
	`

	queryGetPopularProducts = `
		SELECT
			product_id, product_name, category, price,
			rating, description, stock_quantity, reviews_count
		FROM products
		WHERE is_active = TRUE
		AND stock_quantity > 0
		ORDER BY rating DESC, reviews_count DESC
		LIMIT :limit
	`

	querySearchFaq = `
		SELECT
			faq_id, question, answer, category,
			times_asked, helpful_count
		FROM faq
		WHERE is_active = TRUE
		AND (question ILIKE :pattern OR answer ILIKE :pattern)
		ORDER BY helpful_count DESC
		LIMIT 1
	`

	queryIncrementFaqTimesAsked = `
		UPDATE faq
		SET times_asked = times_asked + 1
		WHERE faq_id = :faq_id
	`

	queryCreateConversation = `
		INSERT INTO conversations (
			conversation_id, user_id, session_id,
			channel, started_at
		) VALUES (
			:conversation_id, :user_id, :session_id,
			:channel, :started_at
		)
	`

	queryGetOpenConversationBySession = `
		SELECT
			conversation_id, user_id, session_id, channel,
			started_at, ended_at, total_messages, resolved, satisfaction_score
		FROM conversations
		WHERE session_id = :session_id
		AND ended_at IS NULL
		ORDER BY started_at DESC
		LIMIT 1
	`

	queryGetConversationBySession = `
		SELECT
			conversation_id, user_id, session_id, channel,
			started_at, ended_at, total_messages, resolved, satisfaction_score
		FROM conversations
		WHERE session_id = :session_id
		ORDER BY started_at DESC
		LIMIT 1
	`

	queryIncrementConversationMessages = `
		UPDATE conversations
		SET total_messages = total_messages + 1
		WHERE conversation_id = :conversation_id
	`

	queryEndConversation = `
		UPDATE conversations
		SET
			ended_at = :ended_at,
			resolved = :resolved,
			satisfaction_score = :satisfaction_score
		WHERE conversation_id = :conversation_id
		AND ended_at IS NULL
	`

	queryCreateMessage = `
		INSERT INTO messages (
			message_id, conversation_id, sender_type, message_text,
			intent, confidence_score, sentiment, sentiment_score,
			created_at
		) VALUES (
			:message_id, :conversation_id, :sender_type, :message_text,
			:intent, :confidence_score, :sentiment, :sentiment_score,
			:created_at
		)
	`

	queryGetMessagesByConversationID = `
		SELECT
			message_id, conversation_id, sender_type, message_text,
			intent, confidence_score, sentiment, sentiment_score,
			created_at
		FROM messages
		WHERE conversation_id = :conversation_id
		ORDER BY created_at ASC
		LIMIT :limit OFFSET :offset
	`

	queryCountMessagesByConversationID = `
		SELECT COUNT(*)
		FROM messages
		WHERE conversation_id = :conversation_id
	`
)
