package recommend

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ShopAssist/internal/entity"
)

const (
	PriceRangeBudget    = "budget"
	PriceRangeMid       = "mid_range"
	PriceRangePremium   = "premium"
	reviewVolumeCeiling = 10000
)

type RankedProduct struct {
	Product entity.Product `json:"product"`
	Score   float64        `json:"score"`
}

type IRecommender interface {
	GetRecommendations(userID, category string, limit int) []entity.Product
	RankProducts(products []entity.Product, preferredPriceRange string) []RankedProduct
	Similarity(first, second entity.Product) float64
	ComplementaryCategories(category string, limit int) []string
	Explain(product entity.Product) string
}

type priceRange struct {
	min float64
	max float64
}

type recommender struct {
	categoryAssociations map[string][]string
	priceRanges          map[string]priceRange
	printer              *message.Printer
}

func New() IRecommender {
	return &recommender{
		categoryAssociations: map[string][]string{
			"Laptops":           {"Accessories", "Books"},
			"Smartphones":       {"Accessories"},
			"Accessories":       {"Electronics"},
			"Appliances":        {"Home & Kitchen"},
			"Books":             {"Electronics"},
			"Sports & Outdoors": {"Home & Kitchen"},
		},
		priceRanges: map[string]priceRange{
			PriceRangeBudget:  {0, 200},
			PriceRangeMid:     {200, 800},
			PriceRangePremium: {800, 5000},
		},
		printer: message.NewPrinter(language.English),
	}
}

// Always empty until a trained model is wired in; callers fall back to
// popular products.
func (r *recommender) GetRecommendations(userID, category string, limit int) []entity.Product {
	return []entity.Product{}
}

func (r *recommender) RankProducts(products []entity.Product, preferredPriceRange string) []RankedProduct {
	if len(products) == 0 {
		return []RankedProduct{}
	}

	ranked := make([]RankedProduct, 0, len(products))
	for _, product := range products {
		ranked = append(ranked, RankedProduct{
			Product: product,
			Score:   r.score(product, preferredPriceRange),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

func (r *recommender) score(product entity.Product, preferredPriceRange string) float64 {
	score := (product.Rating / 5.0) * 0.4

	normalizedReviews := math.Min(float64(product.ReviewsCount)/reviewVolumeCeiling, 1.0)
	score += normalizedReviews * 0.2

	if product.StockQuantity > 0 {
		score += 0.2
	}

	price := product.Price
	if preferredPriceRange != "" {
		rng, ok := r.priceRanges[preferredPriceRange]
		if !ok {
			rng = priceRange{0, 10000}
		}

		if rng.min <= price && price <= rng.max {
			score += 0.2
		} else {
			diff := price - rng.max
			if price < rng.min {
				diff = rng.min - price
			}
			penalty := math.Min(diff/rng.max, 1.0)
			score += 0.2 * (1 - penalty)
		}
	} else {
		switch {
		case price >= 100 && price <= 1000:
			score += 0.2
		case price >= 50 && price <= 1500:
			score += 0.1
		}
	}

	return score
}

func (r *recommender) Similarity(first, second entity.Product) float64 {
	similarity := 0.0

	if first.Category == second.Category {
		similarity += 0.5
	} else if containsCategory(r.categoryAssociations[first.Category], second.Category) {
		similarity += 0.3
	}

	if first.Price != 0 && second.Price != 0 {
		diff := math.Abs(first.Price - second.Price)
		maxPrice := math.Max(first.Price, second.Price)
		if maxPrice > 0 {
			similarity += (1 - diff/maxPrice) * 0.3
		}
	}

	if first.Rating != 0 && second.Rating != 0 {
		similarity += (1 - math.Abs(first.Rating-second.Rating)/5.0) * 0.2
	}

	return math.Min(similarity, 1.0)
}

func (r *recommender) ComplementaryCategories(category string, limit int) []string {
	complementary := append([]string(nil), r.categoryAssociations[category]...)

	if len(complementary) < limit {
		var remaining []string
		for candidate := range r.categoryAssociations {
			if candidate != category && !containsCategory(complementary, candidate) {
				remaining = append(remaining, candidate)
			}
		}
		sort.Strings(remaining)
		rand.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})

		needed := limit - len(complementary)
		if needed > len(remaining) {
			needed = len(remaining)
		}
		complementary = append(complementary, remaining[:needed]...)
	}

	if len(complementary) > limit {
		complementary = complementary[:limit]
	}

	return complementary
}

func (r *recommender) Explain(product entity.Product) string {
	var reasons []string

	if product.Rating >= 4.5 {
		reasons = append(reasons, r.printer.Sprintf("highly rated (%.1f/5.0)", product.Rating))
	}

	if product.ReviewsCount > 500 {
		reasons = append(reasons, r.printer.Sprintf("popular with %d reviews", product.ReviewsCount))
	}

	if product.Price < 100 {
		reasons = append(reasons, "affordable price")
	} else if product.Price > 1000 {
		reasons = append(reasons, "premium quality")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "matches your interests")
	}

	return "Recommended because it's " + strings.Join(reasons, ", ")
}

func containsCategory(categories []string, category string) bool {
	for _, candidate := range categories {
		if candidate == category {
			return true
		}
	}
	return false
}
