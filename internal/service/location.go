package service

import (
	"context"
	"sync"

	"github.com/shenikar/emergency_alert_system/internal/models"
)

// LocationProvider - источник координат устройства
type LocationProvider interface {
	// CurrentPosition возвращает последнюю известную точку или ErrLocationUnavailable
	CurrentPosition(ctx context.Context) (models.GeoPoint, error)
	// Watch подписывает на новые точки. Канал закрывается после отмены ctx.
	Watch(ctx context.Context) (<-chan models.GeoPoint, error)
}

const watchBuffer = 8

// PushLocationFeed - LocationProvider, который получает точки от клиента по HTTP
type PushLocationFeed struct {
	mu     sync.Mutex
	last   *models.GeoPoint
	denied bool
	subs   map[int]chan models.GeoPoint
	nextID int
}

func NewPushLocationFeed() *PushLocationFeed {
	return &PushLocationFeed{subs: make(map[int]chan models.GeoPoint)}
}

// Push сохраняет точку и рассылает ее подписчикам. Если подписчик не успевает
// читать, точка для него пропускается.
func (f *PushLocationFeed) Push(p models.GeoPoint) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last = &p
	f.denied = false
	for _, ch := range f.subs {
		select {
		case ch <- p:
		default:
		}
	}
}

// Deny отмечает, что пользователь запретил доступ к геолокации
func (f *PushLocationFeed) Deny() {
	f.mu.Lock()
	f.denied = true
	f.mu.Unlock()
}

func (f *PushLocationFeed) CurrentPosition(_ context.Context) (models.GeoPoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.denied || f.last == nil {
		return models.GeoPoint{}, ErrLocationUnavailable
	}
	return *f.last, nil
}

func (f *PushLocationFeed) Watch(ctx context.Context) (<-chan models.GeoPoint, error) {
	ch := make(chan models.GeoPoint, watchBuffer)

	f.mu.Lock()
	if f.denied {
		f.mu.Unlock()
		return nil, ErrLocationUnavailable
	}
	id := f.nextID
	f.nextID++
	f.subs[id] = ch
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, id)
		close(ch)
		f.mu.Unlock()
	}()

	return ch, nil
}
