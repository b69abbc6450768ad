package handlers

import (
	"log"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/iris-cmd22/A13/internal/service"
	"github.com/iris-cmd22/A13/internal/websocket"
)

type WebSocketHandler struct {
	hub         *websocket.Hub
	authService *service.AuthService
	upgrader    gorillaws.Upgrader
}

func NewWebSocketHandler(hub *websocket.Hub, authService *service.AuthService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authService: authService,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handle authenticates the ?token= query parameter, upgrades the
// connection and registers it with the notification hub.
func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Token required", http.StatusUnauthorized)
		return
	}

	claims, err := h.authService.ValidateToken(token)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	rawID, ok := (*claims)["userId"].(float64)
	if !ok {
		http.Error(w, "Invalid token claims", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [WebSocketHandler] upgrade failed: %v", err)
		return
	}

	client := websocket.NewClient(h.hub, conn, int(rawID))
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
