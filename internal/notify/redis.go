package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RedisChannel is the pub/sub channel shared by every instance
const RedisChannel = "pijat:signals"

type envelope struct {
	Origin string `json:"origin"`
	Signal
}

// RedisBus delivers signals locally and relays them to the other instances.
// Messages carrying this instance's origin are skipped, so each signal
// reaches every local subscriber exactly once.
type RedisBus struct {
	local  *LocalBus
	client *redis.Client
	origin string
}

// NewRedisBus wraps a local bus with a Redis relay
func NewRedisBus(client *redis.Client, local *LocalBus) *RedisBus {
	return &RedisBus{local: local, client: client, origin: uuid.NewString()}
}

func (b *RedisBus) Publish(ctx context.Context, sig Signal) error {
	_ = b.local.Publish(ctx, sig)

	payload, err := json.Marshal(envelope{Origin: b.origin, Signal: sig})
	if err != nil {
		return fmt.Errorf("failed to encode signal: %w", err)
	}
	if err := b.client.Publish(ctx, RedisChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to relay signal %s: %w", sig.Topic, err)
	}
	return nil
}

func (b *RedisBus) Subscribe(topic Topic) (<-chan Signal, func()) {
	return b.local.Subscribe(topic)
}

// Run relays signals from other instances until ctx is done
func (b *RedisBus) Run(ctx context.Context) {
	pubsub := b.client.Subscribe(ctx, RedisChannel)
	defer pubsub.Close()

	log.Info().Str("channel", RedisChannel).Str("origin", b.origin).Msg("Listening for remote signals")
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			b.deliverRemote(ctx, msg.Payload)
		}
	}
}

func (b *RedisBus) deliverRemote(ctx context.Context, payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		log.Warn().Err(err).Msg("Ignoring malformed remote signal")
		return
	}
	if env.Origin == b.origin {
		return
	}
	_ = b.local.Publish(ctx, env.Signal)
}
