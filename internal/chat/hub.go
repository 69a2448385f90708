package chat

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/umenyi-bryan/Hackarena/internal/store"
)

// Hub tracks websocket clients and pushes each new message to the clients
// watching its room. All client bookkeeping happens on the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	deliver    chan store.Message // stored messages -> clients
	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		deliver:    make(chan store.Message, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Publish queues msg for local delivery. It makes the Hub usable as a
// Broadcaster when no Redis is configured.
func (h *Hub) Publish(ctx context.Context, msg store.Message) error {
	select {
	case h.deliver <- msg:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes registrations and deliveries until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for client := range h.clients {
			close(client.Send)
			delete(h.clients, client)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.Register:
			h.clients[client] = true
			h.logger.Debug("chat client joined", "room", client.Room, "username", client.Username)

		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}

		case msg := <-h.deliver:
			payload, err := json.Marshal(Frame{Type: "message", Room: msg.Room, Message: &msg})
			if err != nil {
				h.logger.Error("encode chat frame", "error", err)
				continue
			}
			for client := range h.clients {
				if client.Room != msg.Room {
					continue
				}
				select {
				case client.Send <- payload:
				default:
					// Slow reader; drop it rather than stall the room.
					close(client.Send)
					delete(h.clients, client)
				}
			}
		}
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.Unregister <- c:
	case <-h.done:
	}
}
