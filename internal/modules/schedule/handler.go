package schedule

import (
	"net/http"

	"gymdesk/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // configure in prod
}

type tokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type Handler struct {
	hub    *Hub
	tokens tokenValidator
	log    *zap.Logger
}

func NewHandler(hub *Hub, tokens tokenValidator, log *zap.Logger) *Handler {
	return &Handler{hub: hub, tokens: tokens, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/schedule", h.Connect)
}

// Connect upgrades the request and keeps the connection registered
// until the peer closes it. The token travels as a query parameter
// since browsers cannot set headers on websocket dials.
func (h *Handler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	if _, err := h.tokens.ValidateToken(token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := h.hub.Register(conn)
	defer h.hub.Unregister(id)

	// Drain control frames; boards only listen.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
