package ws

import (
	"net/http"

	"github.com/kamranshamim45/ai-job-portal/internal/logger"
	"github.com/kamranshamim45/ai-job-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS upgrades the request and binds the connection to the personal
// channel of the authenticated account. The channel key comes from the
// verified token, never from the client.
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := middleware.GetUserID(c)
		if accountID == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("ws upgrade failed", "account_id", accountID, "error", err)
			return
		}

		client := &Client{
			ID:   accountID,
			Conn: conn,
			Send: make(chan Event, sendBufferSize),
			hub:  hub,
		}

		hub.register <- client

		go client.writePump()
		go client.readPump()
	}
}
