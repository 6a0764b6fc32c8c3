package analytics

import "ShopAssist/pkg/response"

var (
	ErrInvalidTimeRange = response.NewError(400, "invalid time range")
	ErrQueryFailed      = response.NewError(500, "failed to load analytics")
)
