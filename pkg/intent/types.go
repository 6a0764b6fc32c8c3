package intent

const (
	TrackOrder            = "track_order"
	ProductSearch         = "product_search"
	ProductRecommendation = "product_recommendation"
	ReturnPolicy          = "return_policy"
	ShippingInfo          = "shipping_info"
	PaymentMethods        = "payment_methods"
	CancelOrder           = "cancel_order"
	Greeting              = "greeting"
	Goodbye               = "goodbye"
	Help                  = "help"
	Unknown               = "unknown"
)

const (
	EntityOrderNumber = "order_number"
	EntitySearchQuery = "search_query"
	EntityCategory    = "category"
	EntityQuery       = "query"
)

type Result struct {
	Intent     string            `json:"intent"`
	Entities   map[string]string `json:"entities"`
	Confidence float64           `json:"confidence"`
}

type IClassifier interface {
	Classify(message string) *Result
}
