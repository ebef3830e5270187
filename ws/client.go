package ws

import (
	"github.com/kamranshamim45/ai-job-portal/internal/logger"

	"github.com/gorilla/websocket"
)

// Client is one authenticated websocket connection. ID is the account id
// resolved from the bearer token, which doubles as the personal channel key.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan Event

	hub *Hub
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.Conn.Close()
	}()

	// Clients do not send domain messages; the read loop only detects
	// disconnects and discards anything received.
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()

	for event := range c.Send {
		if err := c.Conn.WriteJSON(event); err != nil {
			logger.Debug("ws write error", "account_id", c.ID, "error", err)
			return
		}
	}
}
