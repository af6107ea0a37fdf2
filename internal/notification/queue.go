package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/emergency_alert_system/internal/models"
	"github.com/shenikar/emergency_alert_system/pkg/metrics"
)

// MaxRetries - сколько повторных попыток делается для одного сообщения
const MaxRetries = 3

// RetryQueue хранит сообщения, передачу которых не удалось подтвердить.
// Очередь живет в памяти процесса и не ограничена по размеру.
type RetryQueue struct {
	mu    sync.Mutex
	items []*models.QueuedMessage
	now   func() time.Time
}

func NewRetryQueue() *RetryQueue {
	return &RetryQueue{now: time.Now}
}

// Add добавляет сообщение в очередь со статусом pending
func (q *RetryQueue) Add(platform models.Platform, phone, body string) models.QueuedMessage {
	item := &models.QueuedMessage{
		ID:          uuid.NewString(),
		PhoneNumber: phone,
		Message:     body,
		Platform:    platform,
		Timestamp:   q.now().UTC(),
		Status:      models.MessagePending,
	}

	q.mu.Lock()
	q.items = append(q.items, item)
	size := len(q.items)
	q.mu.Unlock()

	metrics.RetryQueueSize.Set(float64(size))
	return *item
}

// Snapshot возвращает копию содержимого очереди
func (q *RetryQueue) Snapshot() []models.QueuedMessage {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.QueuedMessage, 0, len(q.items))
	for _, item := range q.items {
		out = append(out, *item)
	}
	return out
}

func (q *RetryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *RetryQueue) Clear() {
	q.mu.Lock()
	q.items = nil
	q.mu.Unlock()

	metrics.RetryQueueSize.Set(0)
}

// due возвращает сообщения, которые еще можно повторить
func (q *RetryQueue) due() []models.QueuedMessage {
	q.mu.Lock()
	defer q.mu.Unlock()

	var out []models.QueuedMessage
	for _, item := range q.items {
		if item.Status == models.MessagePending && item.RetryCount < MaxRetries {
			out = append(out, *item)
		}
	}
	return out
}

func (q *RetryQueue) markSent(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if item := q.find(id); item != nil {
		item.Status = models.MessageSent
	}
}

// recordFailure увеличивает счетчик попыток и сообщает, исчерпан ли лимит
func (q *RetryQueue) recordFailure(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	item := q.find(id)
	if item == nil {
		return false
	}
	item.RetryCount++
	if item.RetryCount >= MaxRetries {
		item.Status = models.MessageFailed
		return true
	}
	return false
}

func (q *RetryQueue) find(id string) *models.QueuedMessage {
	for _, item := range q.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}
