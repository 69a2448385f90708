package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/umenyi-bryan/Hackarena/internal/store"
)

const redisChannel = "hackarena:chat"

// RedisBroadcaster publishes new messages on a Redis channel and feeds what
// it hears back into the local hub, so websocket clients see messages sent
// through any server sharing the Redis instance. Stored history stays local.
type RedisBroadcaster struct {
	redis  *redis.Client
	hub    *Hub
	logger *slog.Logger
}

func NewRedisBroadcaster(client *redis.Client, hub *Hub, logger *slog.Logger) *RedisBroadcaster {
	return &RedisBroadcaster{redis: client, hub: hub, logger: logger}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, msg store.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode chat message: %w", err)
	}
	if err := b.redis.Publish(ctx, redisChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish chat message: %w", err)
	}
	return nil
}

// Subscribe forwards messages from Redis to the hub until ctx is cancelled.
func (b *RedisBroadcaster) Subscribe(ctx context.Context) {
	pubsub := b.redis.Subscribe(ctx, redisChannel)
	defer pubsub.Close()
	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			var msg store.Message
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				b.logger.Warn("dropping malformed chat payload from redis", "error", err)
				continue
			}
			if err := b.hub.Publish(ctx, msg); err != nil {
				return
			}
		}
	}
}
