package sentiment

import (
	"math"
	"strings"
)

// Lexicon-free fallback used when the service runs without the VADER lexicon,
// selected with SENTIMENT_ANALYZER=keyword.
type keywordAnalyzer struct {
	positive []string
	negative []string
}

func NewKeywordAnalyzer() IAnalyzer {
	return &keywordAnalyzer{
		positive: []string{
			"good", "great", "excellent", "amazing", "wonderful", "fantastic",
			"love", "perfect", "awesome", "best", "happy", "thanks", "thank you",
		},
		negative: []string{
			"bad", "terrible", "awful", "horrible", "worst", "hate", "angry",
			"disappointed", "frustrating", "problem", "issue", "broken", "poor",
		},
	}
}

func (a *keywordAnalyzer) Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Label: LabelNeutral, Score: 0.5, Compound: 0}
	}

	lower := strings.ToLower(text)
	positiveCount := countHits(lower, a.positive)
	negativeCount := countHits(lower, a.negative)

	switch {
	case positiveCount > negativeCount:
		return Result{
			Label: LabelPositive,
			Score: round4(math.Min(0.7+float64(positiveCount)*0.1, 0.95)),
		}
	case negativeCount > positiveCount:
		return Result{
			Label: LabelNegative,
			Score: round4(math.Min(0.6+float64(negativeCount)*0.1, 0.9)),
		}
	default:
		return Result{Label: LabelNeutral, Score: 0.5}
	}
}

func countHits(lower string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			count++
		}
	}
	return count
}
