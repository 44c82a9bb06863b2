package notificationprovider

import (
	"context"
	"fmt"

	"workorder/models"
	"workorder/providers"
	"workorder/utils"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisPublisher fans lifecycle events out over redis pub/sub. Group
// audiences map to one channel, user audiences to one channel per user.
// Failures are logged and swallowed; a lost notification must never fail
// the operation that produced it.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(addr string) providers.NotificationPublisher {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	return &RedisPublisher{
		client: rdb,
	}
}

type envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func (p *RedisPublisher) Publish(ctx context.Context, event string, audience models.Audience, payload interface{}) {
	body, err := jsoniter.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		utils.Logger.Error("failed to marshal notification", zap.String("event", event), zap.Error(err))
		return
	}

	for _, channel := range channelsFor(audience) {
		if err := p.client.Publish(ctx, channel, body).Err(); err != nil {
			utils.Logger.Warn("failed to publish notification",
				zap.String("event", event),
				zap.String("channel", channel),
				zap.Error(err))
		}
	}
}

func channelsFor(audience models.Audience) []string {
	if audience.Group != "" {
		return []string{fmt.Sprintf("notify:group:%s", audience.Group)}
	}
	channels := make([]string, 0, len(audience.UserIDs))
	for _, id := range audience.UserIDs {
		channels = append(channels, fmt.Sprintf("notify:user:%s", id))
	}
	return channels
}

func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
