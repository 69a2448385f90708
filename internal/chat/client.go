package chat

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second    // Time allowed to write a message to the peer.
	pongWait       = 60 * time.Second    // Time allowed to read the next pong message from the peer.
	pingPeriod     = (pongWait * 9) / 10 // Must be less than pongWait.
	maxMessageSize = 4096
)

// Client is a middleman between one websocket connection and the hub.
type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Send     chan []byte
	Room     string
	Username string

	service *Service
	errs    chan []byte // rejections for WritePump; never closed
}

// ReadPump turns frames from the browser into chat sends.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.leave(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("chat websocket closed", "username", c.Username, "error", err)
			}
			break
		}

		var in WSMessage
		if err := json.Unmarshal(raw, &in); err != nil {
			c.reject("invalid message")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), writeWait)
		_, err = c.service.Send(ctx, SendRequest{
			Username:  c.Username,
			Message:   in.Message,
			Room:      c.Room,
			Encrypted: in.Encrypted,
		})
		cancel()
		if errors.Is(err, ErrEmptyMessage) {
			c.reject("Message cannot be empty")
		}
	}
}

// reject queues an error frame without blocking the read loop.
func (c *Client) reject(msg string) {
	payload, _ := json.Marshal(Frame{Type: "error", Error: msg})
	select {
	case c.errs <- payload:
	default:
	}
}

// WritePump pumps frames from the hub to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The Hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case payload := <-c.errs:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
