package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ShopAssist/internal/entity"
)

func TestGetRecommendations_AlwaysEmpty(t *testing.T) {
	recommender := New()

	recs := recommender.GetRecommendations("user-1", "Laptops", 3)

	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRankProducts_OrdersByScore(t *testing.T) {
	recommender := New()

	products := []entity.Product{
		{
			Name:          "Dell XPS 15",
			Category:      "Laptops",
			Price:         1299.99,
			Rating:        4.7,
			ReviewsCount:  234,
			StockQuantity: 25,
		},
		{
			Name:          "MacBook Pro M3",
			Category:      "Laptops",
			Price:         1999.99,
			Rating:        4.9,
			ReviewsCount:  567,
			StockQuantity: 15,
		},
		{
			Name:          "Sony WH-1000XM5",
			Category:      "Accessories",
			Price:         349.99,
			Rating:        4.8,
			ReviewsCount:  1234,
			StockQuantity: 60,
		},
	}

	ranked := recommender.RankProducts(products, "")

	assert.Len(t, ranked, 3)
	// The headphones sit in the default mid-range price band with the most
	// reviews, so they outrank both laptops.
	assert.Equal(t, "Sony WH-1000XM5", ranked[0].Product.Name)
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
	assert.GreaterOrEqual(t, ranked[1].Score, ranked[2].Score)
}

func TestRankProducts_PriceBandScoring(t *testing.T) {
	recommender := New()

	inBand := entity.Product{Price: 500, Rating: 4.0, StockQuantity: 1}
	outOfBand := entity.Product{Price: 4000, Rating: 4.0, StockQuantity: 1}

	ranked := recommender.RankProducts([]entity.Product{outOfBand, inBand}, PriceRangeMid)

	assert.Equal(t, 500.0, ranked[0].Product.Price)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankProducts_EmptyInput(t *testing.T) {
	recommender := New()

	assert.Empty(t, recommender.RankProducts(nil, ""))
}

func TestSimilarity(t *testing.T) {
	recommender := New()

	laptop := entity.Product{Category: "Laptops", Price: 1299.99, Rating: 4.7}
	otherLaptop := entity.Product{Category: "Laptops", Price: 1999.99, Rating: 4.9}
	headphones := entity.Product{Category: "Accessories", Price: 349.99, Rating: 4.8}
	unrelated := entity.Product{Category: "Books", Price: 12.99, Rating: 4.1}

	sameCategory := recommender.Similarity(laptop, otherLaptop)
	associated := recommender.Similarity(laptop, headphones)
	distant := recommender.Similarity(laptop, unrelated)

	assert.Greater(t, sameCategory, associated)
	assert.Greater(t, associated, distant)
	assert.LessOrEqual(t, sameCategory, 1.0)
	assert.GreaterOrEqual(t, distant, 0.0)
}

func TestSimilarity_IdenticalProductsCapAtOne(t *testing.T) {
	recommender := New()

	product := entity.Product{Category: "Laptops", Price: 100, Rating: 5}

	assert.Equal(t, 1.0, recommender.Similarity(product, product))
}

func TestComplementaryCategories(t *testing.T) {
	recommender := New()

	t.Run("direct associations come first", func(t *testing.T) {
		categories := recommender.ComplementaryCategories("Laptops", 2)

		assert.Equal(t, []string{"Accessories", "Books"}, categories)
	})

	t.Run("pads with other categories when short", func(t *testing.T) {
		categories := recommender.ComplementaryCategories("Smartphones", 3)

		assert.Len(t, categories, 3)
		assert.Equal(t, "Accessories", categories[0])
		assert.NotContains(t, categories, "Smartphones")
	})
}

func TestExplain(t *testing.T) {
	recommender := New()

	tests := []struct {
		name     string
		product  entity.Product
		expected string
	}{
		{
			name: "rating reviews and premium price",
			product: entity.Product{
				Rating:       4.9,
				ReviewsCount: 1234,
				Price:        1999.99,
			},
			expected: "Recommended because it's highly rated (4.9/5.0), popular with 1,234 reviews, premium quality",
		},
		{
			name: "affordable price only",
			product: entity.Product{
				Rating:       4.0,
				ReviewsCount: 10,
				Price:        19.99,
			},
			expected: "Recommended because it's affordable price",
		},
		{
			name:     "no signals",
			product:  entity.Product{Rating: 4.0, ReviewsCount: 10, Price: 500},
			expected: "Recommended because it's matches your interests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, recommender.Explain(tt.product))
		})
	}
}
