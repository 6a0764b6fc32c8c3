package chatHandler

import (
	"ShopAssist/internal/api/chat"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatService struct {
	sendResp *chat.SendMessageResponse
	sendErr  error
	gotSend  chat.SendMessageRequest

	historyResp *chat.ConversationHistoryResponse
	historyErr  error
	gotSession  string
	gotPage     int
	gotLimit    int

	endResp *chat.EndConversationResponse
	endErr  error
	gotEnd  chat.EndConversationRequest
}

func (f *fakeChatService) HandleMessage(ctx context.Context, req chat.SendMessageRequest) (*chat.SendMessageResponse, error) {
	f.gotSend = req
	return f.sendResp, f.sendErr
}

func (f *fakeChatService) GetConversationHistory(ctx context.Context, sessionID string, page, limit int) (*chat.ConversationHistoryResponse, error) {
	f.gotSession = sessionID
	f.gotPage = page
	f.gotLimit = limit
	return f.historyResp, f.historyErr
}

func (f *fakeChatService) EndConversation(ctx context.Context, sessionID string, req chat.EndConversationRequest) (*chat.EndConversationResponse, error) {
	f.gotSession = sessionID
	f.gotEnd = req
	return f.endResp, f.endErr
}

func (f *fakeChatService) WelcomeMessage() string {
	return "welcome"
}

type fakeMiddleware struct{}

func (fakeMiddleware) NewRateLimiter(ctx *fiber.Ctx) error {
	return ctx.Next()
}

func (fakeMiddleware) NewRequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error { return c.Next() }
}

func (fakeMiddleware) GetRequestID(ctx *fiber.Ctx) string {
	return "test-request"
}

type rejectingMiddleware struct{ fakeMiddleware }

func (rejectingMiddleware) NewRateLimiter(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests"})
}

func newTestApp(service *fakeChatService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	New(logger, validator.New(), fakeMiddleware{}, service).Start(app.Group("/api/v1"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, target, payload string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return string(body)
}

func TestSendMessage(t *testing.T) {
	service := &fakeChatService{
		sendResp: &chat.SendMessageResponse{
			Reply:          "Hi! How can I help?",
			Intent:         "greeting",
			Confidence:     0.99,
			Sentiment:      "Neutral",
			SentimentScore: 0.5,
			ConversationID: "01CONV",
		},
	}
	app := newTestApp(service)

	resp := postJSON(t, app, "/api/v1/chat/messages",
		`{"message": "hello", "user_id": "user-9", "session_id": "sess-1", "channel": "web"}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got chat.SendMessageResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &got))
	assert.Equal(t, "Hi! How can I help?", got.Reply)
	assert.Equal(t, "greeting", got.Intent)
	assert.Equal(t, "01CONV", got.ConversationID)

	assert.Equal(t, "hello", service.gotSend.Message)
	assert.Equal(t, "user-9", service.gotSend.UserID)
	assert.Equal(t, "sess-1", service.gotSend.SessionID)
	assert.Equal(t, "web", service.gotSend.Channel)
}

func TestSendMessage_MissingSessionID(t *testing.T) {
	service := &fakeChatService{}
	app := newTestApp(service)

	resp := postJSON(t, app, "/api/v1/chat/messages", `{"message": "hello"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "VALIDATION_ERROR")
	assert.Empty(t, service.gotSend.SessionID)
}

func TestSendMessage_InvalidChannel(t *testing.T) {
	service := &fakeChatService{}
	app := newTestApp(service)

	resp := postJSON(t, app, "/api/v1/chat/messages",
		`{"message": "hello", "session_id": "sess-1", "channel": "sms"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "VALIDATION_ERROR")
}

func TestSendMessage_MalformedBody(t *testing.T) {
	service := &fakeChatService{}
	app := newTestApp(service)

	resp := postJSON(t, app, "/api/v1/chat/messages", `{not json`)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestSendMessage_ServiceError(t *testing.T) {
	service := &fakeChatService{sendErr: chat.ErrMessageSaveFailed}
	app := newTestApp(service)

	resp := postJSON(t, app, "/api/v1/chat/messages",
		`{"message": "hello", "session_id": "sess-1"}`)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Failed to save message")
}

func TestSendMessage_RateLimited(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	service := &fakeChatService{}
	app := fiber.New()
	New(logger, validator.New(), rejectingMiddleware{}, service).Start(app.Group("/api/v1"))

	resp := postJSON(t, app, "/api/v1/chat/messages",
		`{"message": "hello", "session_id": "sess-1"}`)

	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Empty(t, service.gotSend.SessionID)
}

func TestGetConversationHistory(t *testing.T) {
	startedAt := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	service := &fakeChatService{
		historyResp: &chat.ConversationHistoryResponse{
			ConversationID: "01CONV",
			SessionID:      "sess-1",
			Channel:        "web",
			StartedAt:      startedAt,
			TotalMessages:  2,
			Messages: []chat.MessageResponse{
				{ID: "01MSG", SenderType: "User", Text: "hello", CreatedAt: startedAt},
				{ID: "01MSG2", SenderType: "Bot", Text: "Hi!", Intent: "greeting", CreatedAt: startedAt},
			},
		},
	}
	app := newTestApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/conversations/sess-1/messages?page=2&limit=10", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "sess-1", service.gotSession)
	assert.Equal(t, 2, service.gotPage)
	assert.Equal(t, 10, service.gotLimit)

	var got chat.ConversationHistoryResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &got))
	assert.Equal(t, "01CONV", got.ConversationID)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "greeting", got.Messages[1].Intent)
}

func TestGetConversationHistory_DefaultsPagination(t *testing.T) {
	service := &fakeChatService{historyResp: &chat.ConversationHistoryResponse{}}
	app := newTestApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/conversations/sess-1/messages?page=abc&limit=500", nil)
	_, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 1, service.gotPage)
	assert.Equal(t, 50, service.gotLimit)
}

func TestGetConversationHistory_NotFound(t *testing.T) {
	service := &fakeChatService{historyErr: chat.ErrConversationNotFound}
	app := newTestApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/conversations/missing/messages", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "CONVERSATION_NOT_FOUND")
}

func TestEndConversation(t *testing.T) {
	endedAt := time.Date(2026, 8, 20, 11, 0, 0, 0, time.UTC)
	service := &fakeChatService{
		endResp: &chat.EndConversationResponse{
			ConversationID: "01CONV",
			EndedAt:        endedAt,
			TotalMessages:  6,
			Resolved:       true,
		},
	}
	app := newTestApp(service)

	resp := postJSON(t, app, "/api/v1/chat/conversations/sess-1/end",
		`{"resolved": true, "satisfaction_score": 5}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "sess-1", service.gotSession)
	assert.True(t, service.gotEnd.Resolved)
	assert.Equal(t, 5, service.gotEnd.SatisfactionScore)

	var got chat.EndConversationResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &got))
	assert.Equal(t, "01CONV", got.ConversationID)
	assert.Equal(t, 6, got.TotalMessages)
}

func TestEndConversation_EmptyBody(t *testing.T) {
	service := &fakeChatService{endResp: &chat.EndConversationResponse{ConversationID: "01CONV"}}
	app := newTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/conversations/sess-1/end", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, service.gotEnd.Resolved)
	assert.Zero(t, service.gotEnd.SatisfactionScore)
}

func TestEndConversation_InvalidScore(t *testing.T) {
	service := &fakeChatService{}
	app := newTestApp(service)

	resp := postJSON(t, app, "/api/v1/chat/conversations/sess-1/end",
		`{"satisfaction_score": 9}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "VALIDATION_ERROR")
}

func TestEndConversation_AlreadyEnded(t *testing.T) {
	service := &fakeChatService{endErr: chat.ErrConversationNotActive}
	app := newTestApp(service)

	resp := postJSON(t, app, "/api/v1/chat/conversations/sess-1/end", `{"resolved": true}`)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "CONVERSATION_ALREADY_ENDED")
}

func TestWebSocketRouteRequiresUpgrade(t *testing.T) {
	service := &fakeChatService{}
	app := newTestApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/ws", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
