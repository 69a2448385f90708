package chat

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	myMiddleware "github.com/umenyi-bryan/Hackarena/internal/middleware"
	"github.com/umenyi-bryan/Hackarena/internal/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // playground: any origin may watch a room
	},
}

type Handler struct {
	service *Service
	hub     *Hub
	logger  *slog.Logger
}

func NewHandler(s *Service, hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{service: s, hub: hub, logger: logger}
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Overview())
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Username == "" {
		_, req.Username, _ = myMiddleware.SessionFrom(r.Context())
	}

	msg, err := h.service.Send(r.Context(), req)
	if errors.Is(err, ErrEmptyMessage) {
		response.Error(w, http.StatusBadRequest, "Message cannot be empty")
		return
	}
	if err != nil {
		panic(err)
	}

	response.JSON(w, http.StatusOK, SendResponse{Status: "sent", MessageID: msg.ID})
}

func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")

	limit := DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	response.JSON(w, http.StatusOK, h.service.Fetch(room, limit))
}

// ServeWs streams a room: one history frame, then every new message.
func (h *Handler) ServeWs(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")
	if room == "" {
		room = DefaultRoom
	}
	username := r.URL.Query().Get("username")
	if _, name, ok := myMiddleware.SessionFrom(r.Context()); ok {
		username = name
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		Hub:      h.hub,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		Room:     room,
		Username: username,
		service:  h.service,
		errs:     make(chan []byte, 8),
	}

	// History goes in first so it is always the first frame on the wire.
	history, _ := json.Marshal(Frame{
		Type:     "history",
		Room:     room,
		Messages: h.service.Fetch(room, historySize).Messages,
	})
	client.Send <- history

	select {
	case h.hub.Register <- client:
	case <-h.hub.done:
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
