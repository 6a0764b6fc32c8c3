package chatHandler

import (
	"ShopAssist/internal/api/chat"
	contextPkg "ShopAssist/pkg/context"
	"ShopAssist/pkg/metrics"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

const wsReadTimeout = 10 * time.Minute

func (h *ChatHandler) handleWebSocket(c *websocket.Conn) {
	h.log.Info("Chat WebSocket client connected")
	defer h.log.Info("Chat WebSocket client disconnected")

	metrics.ActiveWebsocketSessions.Inc()
	defer metrics.ActiveWebsocketSessions.Dec()

	requestID, _ := c.Locals("X-Request-ID").(string)

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	// New members get greeted before their first message.
	welcome := map[string]string{
		"reply":      h.chatService.WelcomeMessage(),
		"session_id": sessionID,
	}
	if err := c.WriteJSON(welcome); err != nil {
		h.log.Errorf("Error sending welcome message: %v", err)
		return
	}

	for {
		if err := c.SetReadDeadline(time.Now().Add(wsReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Chat WebSocket error: %v", err)
			} else {
				h.log.Info("Chat WebSocket connection closed")
			}
			break
		}

		if messageType != websocket.TextMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		var req chat.SendMessageRequest
		if err := jsoniter.Unmarshal(message, &req); err != nil {
			if writeErr := c.WriteJSON(map[string]string{"error": "invalid message format"}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}
		req.SessionID = sessionID

		ctx, cancel := context.WithTimeout(contextPkg.WithRequestID(context.Background(), requestID), 30*time.Second)
		response, err := h.chatService.HandleMessage(ctx, req)
		cancel()

		if err != nil {
			h.log.Errorf("Error handling chat message: %v", err)
			if writeErr := c.WriteJSON(map[string]string{"error": "failed to process message"}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(response); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}
