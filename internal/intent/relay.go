package intent

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/emergency_alert_system/internal/config"
	"github.com/shenikar/emergency_alert_system/pkg/metrics"
)

// pollTimeout ограничивает BRPOP, чтобы воркер замечал отмену контекста
const pollTimeout = time.Second

// RelayWorker забирает ссылки из очереди и передает их шлюзу устройства
type RelayWorker struct {
	client     queueClient
	logger     *logrus.Logger
	cfg        *config.Config
	httpClient *http.Client
}

// NewRelayWorker создает новый RelayWorker
func NewRelayWorker(client *redis.Client, logger *logrus.Logger, cfg *config.Config) *RelayWorker {
	return newRelayWorker(client, logger, cfg)
}

func newRelayWorker(client queueClient, logger *logrus.Logger, cfg *config.Config) *RelayWorker {
	return &RelayWorker{
		client: client,
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: cfg.IntentRelayTimeout,
		},
	}
}

// Start запускает горутину обработки очереди. Канал закрывается после остановки.
func (w *RelayWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.Info("Starting intent relay worker...")

	go func() {
		defer close(done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping intent relay worker.")
				return
			}

			// result[0] - ключ, result[1] - значение
			result, err := w.client.BRPop(ctx, pollTimeout, w.cfg.IntentQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop compose intent from Redis")
				sleep(ctx, w.cfg.IntentRelayBaseDelay)
				continue
			}

			payload := result[1]
			var in ComposeIntent
			if err := json.Unmarshal([]byte(payload), &in); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal compose intent from Redis")
				continue
			}

			w.deliver(ctx, in, payload)
		}
	}()

	return done
}

// deliver отправляет ссылку шлюзу с экспоненциальной задержкой между попытками
func (w *RelayWorker) deliver(ctx context.Context, in ComposeIntent, rawPayload string) bool {
	log := w.logger.WithField("uri_scheme", scheme(in.URI))
	log.Debug("Relaying compose intent...")

	if w.cfg.IntentRelayURL == "" {
		log.Warn("Intent relay URL is not configured. Skipping delivery.")
		metrics.IntentRelayTotal.WithLabelValues("skipped").Inc()
		return false
	}

	maxRetries := w.cfg.IntentRelayMaxRetries
	delay := w.cfg.IntentRelayBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.post(ctx, rawPayload)
		if err == nil {
			log.Info("Compose intent relayed successfully.")
			metrics.IntentRelayTotal.WithLabelValues("delivered").Inc()
			return true
		}

		log.WithError(err).Warnf("Failed to relay compose intent. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		if i < maxRetries-1 {
			if !sleep(ctx, delay) {
				break
			}
			delay *= 2
		}
	}

	log.Errorf("Failed to relay compose intent after %d retries.", maxRetries)
	metrics.IntentRelayTotal.WithLabelValues("failed").Inc()
	return false
}

func (w *RelayWorker) post(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.IntentRelayURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если задан INTENT_RELAY_SECRET
	if w.cfg.IntentRelaySecret != "" {
		req.Header.Set("X-Intent-Signature", generateHMACSHA256(rawPayload, w.cfg.IntentRelaySecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay responded with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// sleep ждет d или отмены контекста. Возвращает false, если контекст отменен.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func scheme(uri string) string {
	s, _, _ := strings.Cut(uri, ":")
	return s
}
