package postgres

import (
	"time"

	"github.com/jmoiron/sqlx"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	user_id BIGSERIAL PRIMARY KEY,
	username VARCHAR(100) NOT NULL UNIQUE,
	email VARCHAR(255) NOT NULL UNIQUE,
	full_name VARCHAR(255) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS products (
	product_id BIGSERIAL PRIMARY KEY,
	product_name VARCHAR(255) NOT NULL,
	category VARCHAR(100) NOT NULL,
	price NUMERIC(10, 2) NOT NULL,
	rating NUMERIC(2, 1) NOT NULL DEFAULT 0,
	description TEXT NOT NULL DEFAULT '',
	stock_quantity INT NOT NULL DEFAULT 0,
	reviews_count INT NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS orders (
	order_id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users (user_id),
	order_number VARCHAR(50) NOT NULL UNIQUE,
	order_date TIMESTAMPTZ NOT NULL,
	total_amount NUMERIC(10, 2) NOT NULL,
	status VARCHAR(20) NOT NULL,
	shipping_address TEXT NOT NULL DEFAULT '',
	estimated_delivery DATE,
	tracking_number VARCHAR(100)
);

CREATE TABLE IF NOT EXISTS conversations (
	conversation_id CHAR(26) PRIMARY KEY,
	user_id VARCHAR(255) NOT NULL,
	session_id VARCHAR(255) NOT NULL,
	channel VARCHAR(50) NOT NULL,
	started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	ended_at TIMESTAMPTZ,
	total_messages INT NOT NULL DEFAULT 0,
	resolved BOOLEAN NOT NULL DEFAULT FALSE,
	satisfaction_score INT
);

CREATE INDEX IF NOT EXISTS idx_conversations_open_session
	ON conversations (session_id) WHERE ended_at IS NULL;

CREATE TABLE IF NOT EXISTS messages (
	message_id CHAR(26) PRIMARY KEY,
	conversation_id CHAR(26) NOT NULL REFERENCES conversations (conversation_id),
	sender_type VARCHAR(10) NOT NULL,
	message_text TEXT NOT NULL,
	intent VARCHAR(50),
	confidence_score NUMERIC(5, 4),
	sentiment VARCHAR(10),
	sentiment_score NUMERIC(5, 4),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation
	ON messages (conversation_id, created_at);

CREATE TABLE IF NOT EXISTS faq (
	faq_id BIGSERIAL PRIMARY KEY,
	question TEXT NOT NULL,
	answer TEXT NOT NULL,
	category VARCHAR(100) NOT NULL DEFAULT '',
	times_asked INT NOT NULL DEFAULT 0,
	helpful_count INT NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);
`

// EnsureSchema creates the tables when missing and seeds the demo catalog the
// first time the products table is empty.
func EnsureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schemaDDL); err != nil {
		return err
	}

	var productCount int
	if err := db.Get(&productCount, "SELECT COUNT(*) FROM products"); err != nil {
		return err
	}
	if productCount > 0 {
		return nil
	}

	return seedDemoData(db)
}

func seedDemoData(db *sqlx.DB) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var userID int64
	err = tx.QueryRowx(`INSERT INTO users (username, email, full_name)
		VALUES ('john_doe', 'john@example.com', 'John Doe')
		RETURNING user_id`).Scan(&userID)
	if err != nil {
		return err
	}

	products := []struct {
		name        string
		category    string
		price       float64
		rating      float64
		description string
		stock       int
		reviews     int
	}{
		{"Dell XPS 15 Laptop", "Laptops", 1299.99, 4.7, `15.6" FHD Display, Intel i7, 16GB RAM`, 25, 234},
		{"MacBook Pro M3", "Laptops", 1999.99, 4.9, `14" Retina Display, M3 Chip, 16GB RAM`, 15, 567},
		{"iPhone 15 Pro", "Smartphones", 999.99, 4.8, `6.1" Display, A17 Pro Chip, 128GB`, 50, 891},
		{"Sony WH-1000XM5", "Accessories", 349.99, 4.8, "Wireless Noise-Cancelling Headphones", 60, 1234},
	}
	for _, p := range products {
		_, err = tx.Exec(`INSERT INTO products (product_name, category, price, rating, description, stock_quantity, reviews_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.name, p.category, p.price, p.rating, p.description, p.stock, p.reviews)
		if err != nil {
			return err
		}
	}

	orders := []struct {
		number   string
		date     time.Time
		total    float64
		status   string
		address  string
		eta      time.Time
		tracking string
	}{
		{
			number:   "ORD-2026-00001",
			date:     time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC),
			total:    1349.98,
			status:   "Shipped",
			address:  "123 Main St, New York, NY",
			eta:      time.Date(2026, time.January, 22, 0, 0, 0, 0, time.UTC),
			tracking: "TRK123456789",
		},
		{
			number:   "ORD-2026-00002",
			date:     time.Date(2026, time.January, 10, 14, 20, 0, 0, time.UTC),
			total:    999.99,
			status:   "Delivered",
			address:  "123 Main St, New York, NY",
			eta:      time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			tracking: "TRK987654321",
		},
	}
	for _, o := range orders {
		_, err = tx.Exec(`INSERT INTO orders (user_id, order_number, order_date, total_amount, status, shipping_address, estimated_delivery, tracking_number)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			userID, o.number, o.date, o.total, o.status, o.address, o.eta, o.tracking)
		if err != nil {
			return err
		}
	}

	faqs := []struct {
		question string
		answer   string
		category string
	}{
		{
			question: "What is your return policy?",
			answer:   "We offer a 30-day money-back guarantee on all products. Items must be in original condition.",
			category: "Returns",
		},
		{
			question: "How long does shipping take?",
			answer:   "Standard shipping takes 5-7 business days. Express shipping is available for $15.",
			category: "Shipping",
		},
		{
			question: "What payment methods do you accept?",
			answer:   "We accept Visa, Mastercard, American Express, PayPal, and Apple Pay.",
			category: "Payment",
		},
	}
	for _, f := range faqs {
		_, err = tx.Exec(`INSERT INTO faq (question, answer, category)
			VALUES ($1, $2, $3)`,
			f.question, f.answer, f.category)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
