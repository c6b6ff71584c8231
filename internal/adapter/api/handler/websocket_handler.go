package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	ws "supportdesk/internal/infrastructure/websocket"
	"supportdesk/internal/observability"
	"supportdesk/internal/usecase"
	"supportdesk/pkg/errors"
)

type WebSocketHandler struct {
	wsManager    *ws.Manager
	firebaseAuth usecase.FirebaseAuthClient
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // You should restrict this in production
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, firebaseAuth usecase.FirebaseAuthClient) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:    wsManager,
		firebaseAuth: firebaseAuth,
	}
}

// HandleWebSocket upgrades a dashboard connection. Browsers cannot set an
// Authorization header on a websocket request, so the ID token arrives as a
// query parameter and is verified here instead of in middleware.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	idToken := c.QueryParam("token")
	if idToken == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	token, err := h.firebaseAuth.VerifyToken(c.Request().Context(), idToken)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}
	if isAdmin, ok := token.Claims["admin"].(bool); !ok || !isAdmin {
		return errors.Forbidden("Admin privileges required", nil)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		ID:       uuid.New().String(),
		AdminUID: token.UID,
		Conn:     conn,
		Send:     make(chan []byte, 256),
	}

	h.wsManager.Register <- client
	observability.WSConnected()

	go func() {
		client.ReadPump(h.wsManager)
		observability.WSDisconnected()
	}()
	go client.WritePump()

	return nil
}
