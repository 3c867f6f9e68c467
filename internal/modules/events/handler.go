package events

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	jwtsvc "rentify/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checking is the reverse proxy's job in this deployment.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SessionAuthorizer answers whether a session exists and belongs to a user.
type SessionAuthorizer interface {
	Authorize(sessionID, userID string) error
}

// WSHandler upgrades GET /composer/:id/events to a websocket stream.
// Auth rides on a query parameter because websocket clients cannot set the
// Authorization header from the browser.
type WSHandler struct {
	hub        *Hub
	jwtService *jwtsvc.Service
	sessions   SessionAuthorizer
}

func NewWSHandler(hub *Hub, jwtService *jwtsvc.Service, sessions SessionAuthorizer) *WSHandler {
	return &WSHandler{
		hub:        hub,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// HandleWebSocket serves GET /composer/:id/events?token=JWT_TOKEN.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	sessionID := c.Param("id")
	if err := h.sessions.Authorize(sessionID, claims.Subject); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Composer session not found",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(sessionID, conn)

	defer func() {
		h.hub.Unregister(sessionID)
	}()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	// The stream is write-only from the server's side; the read loop exists
	// to notice the client going away.
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	}
}
