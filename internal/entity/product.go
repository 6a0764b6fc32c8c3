package entity

type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"rating"`
	Description   string  `json:"description"`
	StockQuantity int     `json:"stock_quantity"`
	ReviewsCount  int     `json:"reviews_count"`
}
