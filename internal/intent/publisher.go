// Package intent доставляет ссылки sms:, tel: и maps на устройство пользователя
// через очередь Redis и шлюз push-уведомлений.
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/emergency_alert_system/internal/notification"
)

// DefaultQueueKey - список Redis, из которого шлюз забирает ссылки
const DefaultQueueKey = "compose_intents"

// ComposeIntent - ссылка, которую устройство должно открыть
type ComposeIntent struct {
	URI       string    `json:"uri"`
	Timestamp time.Time `json:"timestamp"`
}

// queueClient - часть клиента Redis, используемая очередью ссылок
type queueClient interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// RedisComposer - реализация notification.Composer, которая ставит ссылку в очередь Redis
type RedisComposer struct {
	client queueClient
	key    string
}

// NewRedisComposer создает новый RedisComposer
func NewRedisComposer(client *redis.Client, key string) *RedisComposer {
	if key == "" {
		key = DefaultQueueKey
	}
	return &RedisComposer{client: client, key: key}
}

// Open публикует ссылку в очередь. Ошибка Redis означает, что ссылку открыть нельзя.
func (c *RedisComposer) Open(ctx context.Context, uri string) error {
	payload, err := json.Marshal(ComposeIntent{URI: uri, Timestamp: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal compose intent: %w", err)
	}

	// LPUSH в левую часть списка, шлюз забирает справа
	if err := c.client.LPush(ctx, c.key, payload).Err(); err != nil {
		return fmt.Errorf("%w: failed to publish compose intent to Redis: %v", notification.ErrIntentUnavailable, err)
	}
	return nil
}

// NewLogComposer возвращает композер, который принимает любую ссылку и только
// пишет ее в лог. Используется, когда Redis не настроен.
func NewLogComposer(logger *logrus.Logger) notification.ComposerFunc {
	return func(_ context.Context, uri string) error {
		logger.WithFields(logrus.Fields{
			"component": "log_composer",
			"scheme":    scheme(uri),
		}).Info("Compose intent accepted")
		return nil
	}
}
