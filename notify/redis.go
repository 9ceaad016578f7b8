package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Close() error
}

// RedisNotifier publishes notifications as JSON on a redis pub/sub channel.
type RedisNotifier struct {
	client  redisPublisher
	channel string
}

func (r *RedisNotifier) Publish(ctx context.Context, n Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("error encoding notification: %w", err)
	}
	if err := r.client.Publish(ctx, r.channel, data).Err(); err != nil {
		return fmt.Errorf("error publishing to redis channel %s: %w", r.channel, err)
	}
	return nil
}

func (r *RedisNotifier) Close() error {
	return r.client.Close()
}

func NewRedisNotifier(url string, channel string) (*RedisNotifier, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	log.Debug("[NOTIFY] Publishing to redis channel: ", channel)
	return &RedisNotifier{
		client:  redis.NewClient(opts),
		channel: channel,
	}, nil
}
