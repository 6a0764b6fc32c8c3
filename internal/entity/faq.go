package entity

type Faq struct {
	ID           int64  `json:"id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Category     string `json:"category"`
	TimesAsked   int    `json:"times_asked"`
	HelpfulCount int    `json:"helpful_count"`
}
