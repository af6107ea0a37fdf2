package notification

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/emergency_alert_system/internal/models"
	"github.com/shenikar/emergency_alert_system/internal/notification/mocks"
)

// newTestDispatcher создает рассыльщик с моком композера и без пауз
func newTestDispatcher(t *testing.T, opts Options) (*Dispatcher, *mocks.MockComposer, *RetryQueue) {
	ctrl := gomock.NewController(t)
	composer := mocks.NewMockComposer(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	queue := NewRetryQueue()
	return NewDispatcher(composer, queue, opts, logger), composer, queue
}

var (
	mulago  = models.Recipient{Name: "Mulago Hospital", Phone: "+256414541884", Category: models.FacilityHospital}
	nsambya = models.Recipient{Name: "Nsambya Hospital", Phone: "0414267012", Category: models.FacilityHospital}
	broken  = models.Recipient{Name: "Broken", Phone: "12", Category: models.FacilityHospital}
)

func TestNotify_AllSent(t *testing.T) {
	// Подготовка
	d, composer, queue := newTestDispatcher(t, Options{})
	ctx := context.Background()

	// Ожидания
	gomock.InOrder(
		composer.EXPECT().Open(ctx, SMSURI(models.PlatformAndroid, mulago.Phone, "help")).Return(nil),
		composer.EXPECT().Open(ctx, SMSURI(models.PlatformAndroid, nsambya.Phone, "help")).Return(nil),
	)

	// Действие
	res := d.Notify(ctx, models.PlatformAndroid, []models.Recipient{mulago, nsambya}, "help", nil)

	// Проверки
	assert.True(t, res.Success)
	assert.Equal(t, []models.Recipient{mulago, nsambya}, res.Sent)
	assert.Empty(t, res.Failed)
	assert.Zero(t, queue.Len())
}

func TestNotify_InvalidPhoneSkipped(t *testing.T) {
	// Подготовка
	d, composer, queue := newTestDispatcher(t, Options{})
	ctx := context.Background()

	// Ожидания: для некорректного номера композер не вызывается
	composer.EXPECT().Open(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	res := d.Notify(ctx, models.PlatformAndroid, []models.Recipient{broken, mulago}, "help", nil)

	// Проверки
	assert.False(t, res.Success)
	assert.Equal(t, []models.Recipient{mulago}, res.Sent)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, models.DeliveryFailure{Name: "Broken", Phone: "12", Reason: ReasonInvalidPhone}, res.Failed[0])
	assert.Zero(t, queue.Len())
}

func TestNotify_IntentFailureQueued(t *testing.T) {
	// Подготовка
	d, composer, queue := newTestDispatcher(t, Options{})
	ctx := context.Background()

	// Ожидания
	composer.EXPECT().Open(ctx, gomock.Any()).Return(ErrIntentUnavailable)
	composer.EXPECT().Open(ctx, gomock.Any()).Return(nil)

	// Действие
	res := d.Notify(ctx, models.PlatformIOS, []models.Recipient{mulago, nsambya}, "help", nil)

	// Проверки
	assert.False(t, res.Success)
	assert.Equal(t, []models.Recipient{nsambya}, res.Sent)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, ReasonSendFailed, res.Failed[0].Reason)

	items := queue.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, mulago.Phone, items[0].PhoneNumber)
	assert.Equal(t, "help", items[0].Message)
	assert.Equal(t, models.PlatformIOS, items[0].Platform)
	assert.Equal(t, models.MessagePending, items[0].Status)
	assert.Zero(t, items[0].RetryCount)
}

func TestNotify_Progress(t *testing.T) {
	// Подготовка
	d, composer, _ := newTestDispatcher(t, Options{})
	ctx := context.Background()
	var calls [][2]int

	composer.EXPECT().Open(ctx, gomock.Any()).Return(nil).Times(2)

	// Действие
	d.Notify(ctx, models.PlatformWeb, []models.Recipient{mulago, broken, nsambya}, "help", func(current, total int) {
		calls = append(calls, [2]int{current, total})
	})

	// Проверки
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, calls)
}

func TestNotify_Empty(t *testing.T) {
	d, _, _ := newTestDispatcher(t, Options{})

	res := d.Notify(context.Background(), models.PlatformAndroid, nil, "help", nil)

	assert.True(t, res.Success)
	assert.Empty(t, res.Sent)
	assert.Empty(t, res.Failed)
}

func TestNotify_Pacing(t *testing.T) {
	// Подготовка
	pacing := 40 * time.Millisecond
	d, composer, _ := newTestDispatcher(t, Options{Pacing: pacing})
	ctx := context.Background()
	var opened []time.Time

	composer.EXPECT().Open(ctx, gomock.Any()).DoAndReturn(func(context.Context, string) error {
		opened = append(opened, time.Now())
		return nil
	}).Times(2)

	// Действие
	start := time.Now()
	d.Notify(ctx, models.PlatformAndroid, []models.Recipient{mulago, broken, nsambya}, "help", nil)

	// Проверки: первая передача сразу, вторая не раньше чем через интервал
	require.Len(t, opened, 2)
	assert.Less(t, opened[0].Sub(start), pacing)
	assert.GreaterOrEqual(t, opened[1].Sub(opened[0]), pacing-5*time.Millisecond)
}

func TestNotify_CancelledContext(t *testing.T) {
	// Подготовка
	d, _, queue := newTestDispatcher(t, Options{Pacing: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Действие: композер не должен вызываться
	res := d.Notify(ctx, models.PlatformAndroid, []models.Recipient{mulago}, "help", nil)

	// Проверки
	assert.False(t, res.Success)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, ReasonSendFailed, res.Failed[0].Reason)
	assert.Equal(t, 1, queue.Len())
}

func TestSendBulk(t *testing.T) {
	d, composer, queue := newTestDispatcher(t, Options{})
	ctx := context.Background()

	composer.EXPECT().Open(ctx, gomock.Any()).Return(nil)
	composer.EXPECT().Open(ctx, gomock.Any()).Return(ErrIntentUnavailable)

	res := d.SendBulk(ctx, models.PlatformAndroid, []string{"0414541884", "0414000000"}, "hi")

	assert.False(t, res.Success)
	assert.Equal(t, []string{"0414541884"}, res.Sent)
	assert.Equal(t, []string{"0414000000"}, res.Failed)
	assert.Equal(t, 1, queue.Len())
}

func TestRetry_Success(t *testing.T) {
	// Подготовка
	d, composer, queue := newTestDispatcher(t, Options{})
	ctx := context.Background()
	item := queue.Add(models.PlatformIOS, mulago.Phone, "help")

	// Ожидания: повтор использует ту же ссылку
	composer.EXPECT().Open(ctx, SMSURI(models.PlatformIOS, mulago.Phone, "help")).Return(nil)

	// Действие
	report := d.Retry(ctx)

	// Проверки
	assert.Equal(t, models.RetryReport{Processed: 1, Successful: 1}, report)
	items := queue.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, models.MessageSent, items[0].Status)
}

func TestRetry_CapAndNoDuplicates(t *testing.T) {
	// Подготовка
	d, composer, queue := newTestDispatcher(t, Options{})
	ctx := context.Background()
	queue.Add(models.PlatformAndroid, mulago.Phone, "help")

	composer.EXPECT().Open(ctx, gomock.Any()).Return(ErrIntentUnavailable).Times(MaxRetries)

	// Действие и проверки
	for i := 1; i < MaxRetries; i++ {
		report := d.Retry(ctx)
		assert.Equal(t, models.RetryReport{Processed: 1}, report)
		assert.Equal(t, 1, queue.Len())
		assert.Equal(t, i, queue.Snapshot()[0].RetryCount)
	}

	report := d.Retry(ctx)
	assert.Equal(t, models.RetryReport{Processed: 1, Failed: 1}, report)

	items := queue.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, MaxRetries, items[0].RetryCount)
	assert.Equal(t, models.MessageFailed, items[0].Status)

	// Исчерпанные и отправленные сообщения больше не повторяются
	assert.Equal(t, models.RetryReport{}, d.Retry(ctx))
}

func TestRetry_SkipsSent(t *testing.T) {
	d, composer, queue := newTestDispatcher(t, Options{})
	ctx := context.Background()
	queue.Add(models.PlatformAndroid, mulago.Phone, "first")
	queue.Add(models.PlatformAndroid, nsambya.Phone, "second")

	composer.EXPECT().Open(ctx, gomock.Any()).Return(nil).Times(2)
	require.Equal(t, models.RetryReport{Processed: 2, Successful: 2}, d.Retry(ctx))

	assert.Equal(t, models.RetryReport{}, d.Retry(ctx))
}

func TestRetry_InterruptedKeepsAttempts(t *testing.T) {
	// Подготовка: вторая попытка не дождется паузы до истечения контекста
	d, composer, queue := newTestDispatcher(t, Options{Pacing: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	first := queue.Add(models.PlatformAndroid, mulago.Phone, "first")
	second := queue.Add(models.PlatformAndroid, nsambya.Phone, "second")

	// Ожидания
	composer.EXPECT().Open(ctx, SMSURI(models.PlatformAndroid, mulago.Phone, "first")).Return(nil)

	// Действие
	report := d.Retry(ctx)

	// Проверки
	assert.Equal(t, models.RetryReport{Processed: 1, Successful: 1}, report)
	items := queue.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, models.MessageSent, items[0].Status)
	assert.Equal(t, second.ID, items[1].ID)
	assert.Equal(t, models.MessagePending, items[1].Status)
	assert.Zero(t, items[1].RetryCount)
}

func TestFallbackActions(t *testing.T) {
	actions := FallbackActions([]string{"999", "+256414541884", "0414267012"})

	require.Len(t, actions, 4)
	assert.Equal(t, "tel:999", actions[0].URI)
	assert.Equal(t, "tel:112", actions[1].URI)
	assert.Equal(t, models.FallbackAction{Label: "Call Hospital +256 414 541 884", URI: "tel:+256414541884"}, actions[2])
	assert.Equal(t, "Retry SMS", actions[3].Label)
	assert.Empty(t, actions[3].URI)

	assert.Len(t, FallbackActions(nil), 3)
}

func TestComposerFunc(t *testing.T) {
	var got string
	c := ComposerFunc(func(_ context.Context, uri string) error {
		got = uri
		return nil
	})

	require.NoError(t, c.Open(context.Background(), "tel:112"))
	assert.True(t, strings.HasPrefix(got, "tel:"))
}
