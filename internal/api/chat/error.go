package chat

import "ShopAssist/pkg/response"

var (
	ErrOrderNotFound            = response.NewError(404, "order not found")
	ErrConversationNotFound     = response.NewError(404, "conversation not found")
	ErrConversationNotActive    = response.NewError(409, "conversation already ended")
	ErrFaqNotFound              = response.NewError(404, "faq not found")
	ErrMessageProcessingFailed  = response.NewError(500, "failed to process message")
	ErrConversationCreateFailed = response.NewError(500, "failed to create conversation")
	ErrMessageSaveFailed        = response.NewError(500, "failed to save message")
	ErrInvalidChannel           = response.NewError(400, "invalid channel")
)
