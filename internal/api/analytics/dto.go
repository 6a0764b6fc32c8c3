package analytics

type OverviewResponse struct {
	Days               int     `json:"days"`
	TotalConversations int     `json:"total_conversations"`
	ResolutionRate     float64 `json:"resolution_rate"`
	AvgSatisfaction    float64 `json:"avg_satisfaction"`
	TotalMessages      int     `json:"total_messages"`
}

type TrendPoint struct {
	Date            string  `json:"date"`
	Conversations   int     `json:"conversations"`
	Messages        int     `json:"messages"`
	AvgSatisfaction float64 `json:"avg_satisfaction"`
}

type TrendsResponse struct {
	Days   int          `json:"days"`
	Trends []TrendPoint `json:"trends"`
}

type SentimentBucket struct {
	Sentiment string  `json:"sentiment"`
	Count     int     `json:"count"`
	AvgScore  float64 `json:"avg_score"`
}

type SentimentDistributionResponse struct {
	Days      int               `json:"days"`
	Sentiment []SentimentBucket `json:"sentiment"`
}

type IntentUsage struct {
	Intent        string  `json:"intent"`
	Count         int     `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

type TopIntentsResponse struct {
	Days    int           `json:"days"`
	Intents []IntentUsage `json:"intents"`
}
