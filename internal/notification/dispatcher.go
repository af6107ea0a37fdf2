// Package notification рассылает экстренные оповещения через окно отправки SMS
// на устройстве пользователя и повторяет неудавшиеся попытки.
package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/shenikar/emergency_alert_system/internal/models"
	"github.com/shenikar/emergency_alert_system/pkg/metrics"
)

const (
	DefaultPacing     = 1500 * time.Millisecond
	DefaultBulkPacing = time.Second
)

// Options задает паузы между передачами сообщений
type Options struct {
	// Pacing - минимальный интервал между попытками при рассылке и повторе
	Pacing time.Duration
	// BulkPacing - интервал для SendBulk
	BulkPacing time.Duration
}

// ProgressFunc вызывается перед обработкой каждого получателя
type ProgressFunc func(current, total int)

// BulkResult - итог SendBulk
type BulkResult struct {
	Success bool     `json:"success"`
	Sent    []string `json:"sent"`
	Failed  []string `json:"failed"`
}

type Dispatcher struct {
	composer Composer
	queue    *RetryQueue
	opts     Options
	logger   *logrus.Logger
}

// NewDispatcher создает рассыльщик. Очередь повторов принадлежит вызывающему.
func NewDispatcher(composer Composer, queue *RetryQueue, opts Options, logger *logrus.Logger) *Dispatcher {
	if opts.Pacing < 0 {
		opts.Pacing = 0
	}
	if opts.BulkPacing < 0 {
		opts.BulkPacing = 0
	}
	return &Dispatcher{
		composer: composer,
		queue:    queue,
		opts:     opts,
		logger:   logger,
	}
}

func (d *Dispatcher) Queue() *RetryQueue {
	return d.queue
}

// Notify последовательно передает сообщение каждому получателю с паузой между
// попытками. Некорректные номера пропускаются без паузы. Неудачные попытки
// попадают в очередь повторов.
func (d *Dispatcher) Notify(ctx context.Context, platform models.Platform, recipients []models.Recipient, message string, progress ProgressFunc) models.NotificationResult {
	log := d.logger.WithFields(logrus.Fields{
		"service":    "notification",
		"method":     "Notify",
		"recipients": len(recipients),
	})

	result := models.NotificationResult{
		Sent:   []models.Recipient{},
		Failed: []models.DeliveryFailure{},
	}
	limiter := newPacer(d.opts.Pacing)

	for i, r := range recipients {
		if progress != nil {
			progress(i+1, len(recipients))
		}

		if !IsValidPhoneNumber(r.Phone) {
			log.WithField("recipient", r.Name).Warn("Skipping recipient with invalid phone number")
			metrics.NotificationsTotal.WithLabelValues("invalid").Inc()
			result.Failed = append(result.Failed, failure(r, ReasonInvalidPhone))
			continue
		}

		if err := d.send(ctx, limiter, platform, r.Phone, message); err != nil {
			log.WithError(err).WithField("recipient", r.Name).Warn("Failed to hand off message")
			result.Failed = append(result.Failed, failure(r, ReasonSendFailed))
			continue
		}
		result.Sent = append(result.Sent, r)
	}

	result.Success = len(result.Failed) == 0
	log.WithFields(logrus.Fields{
		"sent":   len(result.Sent),
		"failed": len(result.Failed),
	}).Info("Notification dispatch finished")

	return result
}

// send передает одно сообщение после ожидания ограничителя. При неудаче
// сообщение ставится в очередь повторов.
func (d *Dispatcher) send(ctx context.Context, limiter *rate.Limiter, platform models.Platform, phone, body string) error {
	err := d.handOff(ctx, limiter, platform, phone, body)
	if err == nil {
		metrics.NotificationsTotal.WithLabelValues("sent").Inc()
		return nil
	}

	metrics.NotificationsTotal.WithLabelValues("failed").Inc()
	item := d.queue.Add(platform, phone, body)
	d.logger.WithFields(logrus.Fields{
		"service":  "notification",
		"method":   "send",
		"queue_id": item.ID,
	}).Info("Message added to retry queue")

	return fmt.Errorf("notification: send to %s: %w", phone, err)
}

// SendBulk отправляет одно сообщение на список номеров без проверки формата
func (d *Dispatcher) SendBulk(ctx context.Context, platform models.Platform, phones []string, body string) BulkResult {
	result := BulkResult{Sent: []string{}, Failed: []string{}}
	limiter := newPacer(d.opts.BulkPacing)

	for _, phone := range phones {
		if err := d.send(ctx, limiter, platform, phone, body); err != nil {
			result.Failed = append(result.Failed, phone)
			continue
		}
		result.Sent = append(result.Sent, phone)
	}

	result.Success = len(result.Failed) == 0
	return result
}

// Retry повторяет передачу сообщений из очереди со статусом pending.
// Повторная попытка никогда не добавляет в очередь новый элемент.
func (d *Dispatcher) Retry(ctx context.Context) models.RetryReport {
	log := d.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "Retry",
	})

	var report models.RetryReport
	limiter := newPacer(d.opts.Pacing)

	for _, item := range d.queue.due() {
		// Несостоявшаяся из-за отмены попытка не расходует лимит повторов
		if err := limiter.Wait(ctx); err != nil {
			log.WithError(err).Warn("Retry interrupted")
			break
		}
		report.Processed++

		if err := d.composer.Open(ctx, SMSURI(item.Platform, item.PhoneNumber, item.Message)); err != nil {
			metrics.RetryAttemptsTotal.WithLabelValues("failed").Inc()
			if d.queue.recordFailure(item.ID) {
				report.Failed++
				log.WithField("queue_id", item.ID).Warn("Message exhausted its retries")
			}
			continue
		}

		metrics.RetryAttemptsTotal.WithLabelValues("sent").Inc()
		d.queue.markSent(item.ID)
		report.Successful++
	}

	log.WithFields(logrus.Fields{
		"processed":  report.Processed,
		"successful": report.Successful,
		"failed":     report.Failed,
	}).Info("Retry finished")

	return report
}

func (d *Dispatcher) handOff(ctx context.Context, limiter *rate.Limiter, platform models.Platform, phone, body string) error {
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrIntentUnavailable, err)
	}
	return d.composer.Open(ctx, SMSURI(platform, phone, body))
}

// FallbackActions - действия на случай, если оповещение отправить не удалось:
// прямые звонки на 999 и 112, звонок в первую больницу из списка и повтор.
func FallbackActions(phones []string) []models.FallbackAction {
	actions := []models.FallbackAction{
		{Label: "Call Police (999)", URI: DialURI("999")},
		{Label: "Call Emergency (112)", URI: DialURI("112")},
	}
	for _, phone := range phones {
		if strings.HasPrefix(phone, "999") || strings.HasPrefix(phone, "112") {
			continue
		}
		actions = append(actions, models.FallbackAction{Label: "Call Hospital " + FormatPhoneNumber(phone), URI: DialURI(phone)})
		break
	}
	return append(actions, models.FallbackAction{Label: "Retry SMS"})
}

// newPacer возвращает ограничитель с одним токеном: первая передача сразу,
// следующие не чаще одной за interval.
func newPacer(interval time.Duration) *rate.Limiter {
	return rate.NewLimiter(rate.Every(interval), 1)
}

func failure(r models.Recipient, reason string) models.DeliveryFailure {
	return models.DeliveryFailure{Name: r.Name, Phone: r.Phone, Reason: reason}
}
