package intent

import (
	"regexp"
	"strings"
)

// Matches against the original casing of the message, not the lowercased copy.
var orderNumberPattern = regexp.MustCompile(`(?i)ORD-\d{4}-\d{5}|#?\d{5,}`)

type rule struct {
	intent     string
	keywords   []string
	confidence float64
	extract    func(message string) map[string]string
}

type Classifier struct {
	rules []rule
}

// Rule order is load-bearing: evaluation stops at the first rule with any
// keyword hit, so overlapping keywords resolve to the earlier rule.
func NewClassifier() IClassifier {
	return &Classifier{
		rules: []rule{
			{
				intent:     TrackOrder,
				keywords:   []string{"track", "order", "status", "where is my"},
				confidence: 0.95,
				extract:    extractOrderNumber,
			},
			{
				intent:     ProductSearch,
				keywords:   []string{"looking for", "need", "want", "buy", "purchase", "find"},
				confidence: 0.88,
				extract:    extractSearchQuery,
			},
			{
				intent:     ProductRecommendation,
				keywords:   []string{"recommend", "suggestion", "what should i", "best"},
				confidence: 0.90,
			},
			{
				intent:     ReturnPolicy,
				keywords:   []string{"return", "refund", "money back"},
				confidence: 0.92,
			},
			{
				intent:     ShippingInfo,
				keywords:   []string{"shipping", "delivery", "ship"},
				confidence: 0.91,
			},
			{
				intent:     PaymentMethods,
				keywords:   []string{"payment", "pay", "credit card", "paypal"},
				confidence: 0.89,
			},
			{
				intent:     CancelOrder,
				keywords:   []string{"cancel", "stop"},
				confidence: 0.87,
			},
			{
				intent:     Greeting,
				keywords:   []string{"hi", "hello", "hey", "good morning", "good afternoon"},
				confidence: 0.99,
			},
			{
				intent:     Goodbye,
				keywords:   []string{"bye", "goodbye", "thanks", "thank you", "see you"},
				confidence: 0.94,
			},
			{
				intent:     Help,
				keywords:   []string{"help", "assist", "support"},
				confidence: 0.96,
			},
		},
	}
}

func (c *Classifier) Classify(message string) *Result {
	lower := strings.ToLower(message)

	for _, r := range c.rules {
		if !containsAny(lower, r.keywords) {
			continue
		}

		entities := map[string]string{}
		if r.extract != nil {
			entities = r.extract(message)
		}

		return &Result{
			Intent:     r.intent,
			Entities:   entities,
			Confidence: r.confidence,
		}
	}

	return &Result{
		Intent:     Unknown,
		Entities:   map[string]string{EntityQuery: message},
		Confidence: 0.30,
	}
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func extractOrderNumber(message string) map[string]string {
	entities := map[string]string{}
	if match := orderNumberPattern.FindString(message); match != "" {
		entities[EntityOrderNumber] = match
	}
	return entities
}

func extractSearchQuery(message string) map[string]string {
	return map[string]string{EntitySearchQuery: message}
}
