package chat

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/umenyi-bryan/Hackarena/internal/random"
	"github.com/umenyi-bryan/Hackarena/internal/store"
)

var ErrEmptyMessage = errors.New("message cannot be empty")

// Broadcaster fans a stored message out to live listeners.
type Broadcaster interface {
	Publish(ctx context.Context, msg store.Message) error
}

type Service struct {
	store       *store.Store
	rand        random.Generator
	broadcaster Broadcaster
	logger      *slog.Logger
	now         func() time.Time
}

// NewService wires the chat service. broadcaster may be nil.
func NewService(s *store.Store, gen random.Generator, b Broadcaster, logger *slog.Logger) *Service {
	return &Service{
		store:       s,
		rand:        gen,
		broadcaster: b,
		logger:      logger,
		now:         time.Now,
	}
}

// Send validates and stores a message, then hands it to the broadcaster.
func (s *Service) Send(ctx context.Context, req SendRequest) (store.Message, error) {
	if req.Message == "" {
		return store.Message{}, ErrEmptyMessage
	}
	if req.Username == "" {
		req.Username = "user_" + s.rand.Hex(4)
	}
	if req.Room == "" {
		req.Room = DefaultRoom
	}

	msg := store.Message{
		ID:        s.rand.UUID(),
		Username:  req.Username,
		Message:   req.Message,
		Room:      req.Room,
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
		Encrypted: req.Encrypted,
	}
	s.store.AppendMessage(msg.Room, msg)

	if s.broadcaster != nil {
		if err := s.broadcaster.Publish(ctx, msg); err != nil {
			// The message is stored; live listeners just miss it.
			s.logger.Warn("chat broadcast failed", "room", msg.Room, "error", err)
		}
	}
	return msg, nil
}

// Fetch returns up to limit of the newest messages in room, oldest first.
func (s *Service) Fetch(room string, limit int) MessagesResponse {
	if room == "" {
		room = DefaultRoom
	}
	msgs := s.store.Messages(room, limit)
	return MessagesResponse{Room: room, Messages: msgs, Count: len(msgs)}
}

// Overview lists rooms and who has logged in.
func (s *Service) Overview() OverviewResponse {
	return OverviewResponse{
		Chat:        "active",
		Rooms:       append([]string(nil), Rooms...),
		Online:      s.store.OnlineUsers(onlineShown),
		TotalOnline: s.store.Counts().Online,
	}
}
