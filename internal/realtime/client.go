package realtime

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

type Client struct {
	conn      *websocket.Conn
	hub       *Hub
	userID    string
	send      chan []byte
	closeOnce sync.Once
	done      chan struct{}
}

func newClient(h *Hub, userID string, conn *websocket.Conn) *Client {
	return &Client{
		conn:   conn,
		hub:    h,
		userID: userID,
		send:   make(chan []byte, 256),
		done:   make(chan struct{}),
	}
}

// readPump discards inbound frames; clients only listen. It keeps the
// connection's read deadline fresh off pong replies and tears the client
// down when the peer goes away.
func (c *Client) readPump() {
	defer c.Close()
	c.conn.SetReadLimit(8 * 1024)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.hub.Leave(c.userID, c)
		close(c.done)
		_ = c.conn.Close()
	})
}
