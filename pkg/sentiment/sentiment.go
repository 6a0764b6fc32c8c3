package sentiment

import (
	"math"
	"os"
	"strings"

	"github.com/jonreiter/govader"
)

const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

type Result struct {
	Label    string  `json:"label"`
	Score    float64 `json:"score"`
	Compound float64 `json:"compound"`
}

type IAnalyzer interface {
	Analyze(text string) Result
}

func New() IAnalyzer {
	if os.Getenv("SENTIMENT_ANALYZER") == "keyword" {
		return NewKeywordAnalyzer()
	}
	return NewVaderAnalyzer()
}

type vaderAnalyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewVaderAnalyzer() IAnalyzer {
	return &vaderAnalyzer{
		vader: govader.NewSentimentIntensityAnalyzer(),
	}
}

func (a *vaderAnalyzer) Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Label: LabelNeutral, Score: 0.5, Compound: 0}
	}

	scores := a.vader.PolarityScores(text)
	compound := scores.Compound

	var label string
	var score float64
	switch {
	case compound >= 0.05:
		label = LabelPositive
		score = (compound + 1) / 2
	case compound <= -0.05:
		label = LabelNegative
		score = math.Abs(compound)
	default:
		label = LabelNeutral
		score = 0.5
	}

	return Result{
		Label:    label,
		Score:    round4(score),
		Compound: round4(compound),
	}
}

func round4(value float64) float64 {
	return math.Round(value*10000) / 10000
}
