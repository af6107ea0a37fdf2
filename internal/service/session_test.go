package service

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/emergency_alert_system/internal/config"
	"github.com/shenikar/emergency_alert_system/internal/models"
	"github.com/shenikar/emergency_alert_system/internal/notification"
	"github.com/shenikar/emergency_alert_system/internal/service/mocks"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// sentMessage - ссылка sms:, разобранная на номер и текст
type sentMessage struct {
	Phone string
	Body  string
}

// recordingComposer запоминает все переданные ссылки
type recordingComposer struct {
	mu   sync.Mutex
	sent []sentMessage
	fail bool
}

func (r *recordingComposer) Open(_ context.Context, uri string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fail {
		return errors.New("sms app unavailable")
	}

	target, query, _ := strings.Cut(strings.TrimPrefix(uri, "sms:"), "body=")
	body, _ := url.QueryUnescape(query)
	r.sent = append(r.sent, sentMessage{Phone: strings.TrimRight(target, "?&"), Body: body})
	return nil
}

func (r *recordingComposer) messages() []sentMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sentMessage(nil), r.sent...)
}

func (r *recordingComposer) setFail(fail bool) {
	r.mu.Lock()
	r.fail = fail
	r.mu.Unlock()
}

var (
	center = models.GeoPoint{Latitude: 0.3136, Longitude: 32.5811}

	testHospitals = []models.Hospital{
		{ID: "h-001", Name: "Mulago National Referral Hospital", Phone: "+256414541884", Location: &models.GeoPoint{Latitude: 0.3380, Longitude: 32.5760}},
		{ID: "h-002", Name: "Nsambya Hospital", Phone: "0414267012", Location: &models.GeoPoint{Latitude: 0.3000, Longitude: 32.5880}},
		{ID: "h-003", Name: "Kibuli Hospital", Phone: "0414266000", Location: &models.GeoPoint{Latitude: 0.3100, Longitude: 32.5950}},
		{ID: "h-004", Name: "Kawempe Hospital", Phone: "0414530000"},
	}

	testStations = []models.PoliceStation{
		{ID: "p-001", StationName: "Central Police Station", PhoneNumber: "0414233814", Location: &models.GeoPoint{Latitude: 0.3136, Longitude: 32.5811}},
		{ID: "p-002", StationName: "Kira Road Police Station", PhoneNumber: "0414533230", Location: &models.GeoPoint{Latitude: 0.3340, Longitude: 32.5900}},
		{ID: "p-003", StationName: "Wandegeya Police Station", PhoneNumber: "0414541500", Location: &models.GeoPoint{Latitude: 0.3280, Longitude: 32.5710}},
	}
)

func testSessionOptions() SessionOptions {
	return SessionOptions{
		CountdownSeconds:    2,
		CountdownTick:       5 * time.Millisecond,
		ResendInterval:      time.Hour,
		MovementThresholdKM: 0.05,
		NearestCount:        3,
		AlertRecipients:     2,
	}
}

// newTestEmergencyService создает сервис с настоящим рассыльщиком без пауз и моком справочника
func newTestEmergencyService(t *testing.T, opts SessionOptions) (*emergencyService, *recordingComposer, *notification.RetryQueue) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFacilityRepository(ctrl)
	repo.EXPECT().Hospitals(gomock.Any()).Return(testHospitals, nil).AnyTimes()
	repo.EXPECT().PoliceStations(gomock.Any()).Return(testStations, nil).AnyTimes()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	composer := &recordingComposer{}
	queue := notification.NewRetryQueue()
	dispatcher := notification.NewDispatcher(composer, queue, notification.Options{}, logger)

	cfg := &config.Config{
		DefaultPlatform:    "android",
		FinishedSessionTTL: time.Hour,
	}

	svc := newEmergencyService(context.Background(), repo, dispatcher, logger, cfg, opts)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), waitFor)
		defer cancel()
		_ = svc.Shutdown(ctx)
	})
	return svc, composer, queue
}

// activeSession проводит новую сессию до состояния active
func activeSession(t *testing.T, svc *emergencyService, patient models.PatientDetails) models.Session {
	t.Helper()
	ctx := context.Background()

	s, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)
	_, err = svc.SelectType(ctx, s.ID, "Cardiac Emergency")
	require.NoError(t, err)
	_, err = svc.PushLocation(ctx, s.ID, center)
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, s.ID, patient)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		snap, err := svc.GetSession(ctx, s.ID)
		return err == nil && snap.State == models.SessionActive && snap.LastDispatch != nil
	}, waitFor, tick)

	snap, err := svc.GetSession(ctx, s.ID)
	require.NoError(t, err)
	return snap
}

func TestSession_SelectType(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestEmergencyService(t, testSessionOptions())
	ctx := context.Background()
	s, err := svc.OpenSession(ctx, "ios")
	require.NoError(t, err)

	// Действие
	snap, err := svc.SelectType(ctx, s.ID, "Stroke")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.SessionTypeSelected, snap.State)
	assert.Equal(t, models.PlatformIOS, snap.Platform)
	assert.Equal(t, models.SeverityCritical, snap.Severity)
	assert.Contains(t, snap.ResponseTime, "8-15 minutes")
	require.NotNil(t, snap.Guidance)
	assert.NotEmpty(t, snap.Guidance.Steps)

	// Категорию можно сменить до подтверждения
	snap, err = svc.SelectType(ctx, s.ID, "Burns")
	require.NoError(t, err)
	assert.Equal(t, "Burns", snap.EmergencyType)
	assert.Equal(t, models.SeveritySerious, snap.Severity)
}

func TestSession_SelectTypeUnknownCategory(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t, testSessionOptions())
	ctx := context.Background()
	s, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.SelectType(ctx, s.ID, "Alien Abduction")

	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestSession_ConfirmWithoutType(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t, testSessionOptions())
	ctx := context.Background()
	s, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, s.ID, models.PatientDetails{})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSession_Activation(t *testing.T) {
	// Подготовка
	svc, composer, queue := newTestEmergencyService(t, testSessionOptions())

	// Действие
	snap := activeSession(t, svc, models.PatientDetails{
		Name:      "  John Doe ",
		Allergies: []string{"Penicillin", " "},
	})

	// Проверки
	assert.True(t, snap.LiveTracking)
	assert.Zero(t, snap.Countdown)
	require.NotNil(t, snap.Position)
	assert.Equal(t, center, *snap.Position)

	require.Len(t, snap.NearestHospitals, 3)
	assert.Equal(t, "h-003", snap.NearestHospitals[0].ID)
	assert.Equal(t, "h-002", snap.NearestHospitals[1].ID)
	assert.Equal(t, "h-001", snap.NearestHospitals[2].ID)
	require.Len(t, snap.NearestPolice, 3)
	assert.Equal(t, "p-001", snap.NearestPolice[0].ID)
	assert.Equal(t, 0.0, snap.NearestPolice[0].Distance)

	require.NotNil(t, snap.Emergency)
	record := *snap.Emergency
	assert.Equal(t, "John Doe", record.PatientName)
	assert.Equal(t, "Not provided", record.ContactNumber)
	assert.Equal(t, "Cardiac Emergency", record.EmergencyType)
	assert.Equal(t, models.EmergencyPending, record.Status)
	assert.Equal(t, []string{"h-003", "h-002"}, record.NotifiedHospitals)
	assert.Empty(t, record.NotifiedPolice)
	assert.Equal(t, []string{"Penicillin"}, record.Allergies)
	assert.Len(t, record.Geohash, models.GeohashPrecision)

	require.NotNil(t, snap.LastDispatch)
	assert.True(t, snap.LastDispatch.Success)
	assert.Empty(t, snap.Fallback)

	sent := composer.messages()
	require.Len(t, sent, 2)
	assert.Equal(t, "0414266000", sent[0].Phone)
	assert.Equal(t, "0414267012", sent[1].Phone)
	assert.Contains(t, sent[0].Body, "Type: Cardiac Emergency")
	assert.Contains(t, sent[0].Body, "Patient: John Doe")
	assert.Contains(t, sent[0].Body, "Allergies: Penicillin")
	assert.Contains(t, sent[0].Body, "0.313600, 32.581100")
	assert.Zero(t, queue.Len())

	list := svc.ListEmergencies(context.Background())
	require.Len(t, list, 1)
	assert.Equal(t, record.ID, list[0].ID)
}

func TestSession_CancelDuringCountdown(t *testing.T) {
	// Подготовка
	opts := testSessionOptions()
	opts.CountdownSeconds = 5
	opts.CountdownTick = 20 * time.Millisecond
	svc, composer, _ := newTestEmergencyService(t, opts)
	ctx := context.Background()

	s, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)
	_, err = svc.SelectType(ctx, s.ID, "Seizure")
	require.NoError(t, err)
	_, err = svc.PushLocation(ctx, s.ID, center)
	require.NoError(t, err)
	snap, err := svc.Confirm(ctx, s.ID, models.PatientDetails{})
	require.NoError(t, err)
	assert.Equal(t, models.SessionCountdownPending, snap.State)
	assert.Equal(t, 5, snap.Countdown)

	// Действие
	snap, err = svc.Cancel(ctx, s.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.SessionCancelled, snap.State)
	assert.Zero(t, snap.Countdown)

	time.Sleep(200 * time.Millisecond)
	snap, err = svc.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCancelled, snap.State)
	assert.Nil(t, snap.Emergency)
	assert.Empty(t, composer.messages())
	assert.Empty(t, svc.ListEmergencies(ctx))
}

func TestSession_CountdownTicks(t *testing.T) {
	opts := testSessionOptions()
	opts.CountdownSeconds = 50
	opts.CountdownTick = 10 * time.Millisecond
	svc, _, _ := newTestEmergencyService(t, opts)
	ctx := context.Background()

	s, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)
	_, err = svc.SelectType(ctx, s.ID, "Seizure")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, s.ID, models.PatientDetails{})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		snap, _ := svc.GetSession(ctx, s.ID)
		return snap.Countdown < 50 && snap.State == models.SessionCountdownPending
	}, waitFor, tick)

	_, err = svc.Cancel(ctx, s.ID)
	require.NoError(t, err)
}

func TestSession_LocationUnavailable(t *testing.T) {
	// Подготовка
	svc, composer, _ := newTestEmergencyService(t, testSessionOptions())
	ctx := context.Background()
	s, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)
	_, err = svc.SelectType(ctx, s.ID, "Choking")
	require.NoError(t, err)
	_, err = svc.DenyLocation(ctx, s.ID)
	require.NoError(t, err)

	// Действие
	_, err = svc.Confirm(ctx, s.ID, models.PatientDetails{})
	require.NoError(t, err)

	// Проверки
	require.Eventually(t, func() bool {
		snap, _ := svc.GetSession(ctx, s.ID)
		return snap.State == models.SessionTypeSelected && snap.LastError != ""
	}, waitFor, tick)

	snap, err := svc.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, locationErrorMessage, snap.LastError)
	assert.Zero(t, snap.Countdown)
	assert.Nil(t, snap.Emergency)
	assert.Empty(t, composer.messages())

	// После получения координат можно подтвердить повторно
	_, err = svc.PushLocation(ctx, s.ID, center)
	require.NoError(t, err)
	snap, err = svc.Confirm(ctx, s.ID, models.PatientDetails{})
	require.NoError(t, err)
	assert.Empty(t, snap.LastError)
	require.Eventually(t, func() bool {
		snap, _ := svc.GetSession(ctx, s.ID)
		return snap.State == models.SessionActive
	}, waitFor, tick)
}

func TestSession_AlertPolice(t *testing.T) {
	// Подготовка
	svc, composer, _ := newTestEmergencyService(t, testSessionOptions())
	ctx := context.Background()
	s := activeSession(t, svc, models.PatientDetails{Allergies: []string{"Latex"}})

	// Действие
	snap, err := svc.AlertPolice(ctx, s.ID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, snap.Emergency)
	assert.Equal(t, []string{"p-001", "p-003"}, snap.Emergency.NotifiedPolice)

	require.Eventually(t, func() bool {
		return len(composer.messages()) == 4
	}, waitFor, tick)

	sent := composer.messages()
	assert.Equal(t, "0414233814", sent[2].Phone)
	assert.Equal(t, "0414541500", sent[3].Phone)
	assert.NotContains(t, sent[2].Body, "Allergies")

	list := svc.ListEmergencies(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"p-001", "p-003"}, list[0].NotifiedPolice)
}

func TestSession_AlertPoliceNotActive(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t, testSessionOptions())
	ctx := context.Background()
	s, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.AlertPolice(ctx, s.ID)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSession_LocationUpdates(t *testing.T) {
	// Подготовка
	svc, composer, _ := newTestEmergencyService(t, testSessionOptions())
	ctx := context.Background()
	s := activeSession(t, svc, models.PatientDetails{})
	require.Len(t, composer.messages(), 2)

	// Действие: смещение около 44 м не рассылается
	_, err := svc.PushLocation(ctx, s.ID, models.GeoPoint{Latitude: 0.3140, Longitude: 32.5811})
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)

	// Проверки
	snap, err := svc.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Zero(t, snap.UpdateCount)
	assert.Len(t, composer.messages(), 2)

	// Действие: смещение около 1 км рассылается уведомленным больницам
	far := models.GeoPoint{Latitude: 0.3226, Longitude: 32.5811}
	require.Eventually(t, func() bool {
		_, _ = svc.PushLocation(ctx, s.ID, far)
		snap, _ := svc.GetSession(ctx, s.ID)
		return snap.UpdateCount == 1 && len(composer.messages()) == 4
	}, waitFor, tick)

	// Проверки
	sent := composer.messages()
	assert.Equal(t, "0414266000", sent[2].Phone)
	assert.Equal(t, "0414267012", sent[3].Phone)
	assert.Contains(t, sent[2].Body, "LOCATION UPDATE")
	assert.Contains(t, sent[2].Body, "Update #1")
	assert.Contains(t, sent[2].Body, s.Emergency.ID.String())
	assert.Contains(t, sent[2].Body, "0.322600, 32.581100")

	snap, err = svc.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, far, *snap.Position)
}

func TestSession_TrackingOff(t *testing.T) {
	// Подготовка
	svc, composer, _ := newTestEmergencyService(t, testSessionOptions())
	ctx := context.Background()
	s := activeSession(t, svc, models.PatientDetails{})

	// Действие
	snap, err := svc.SetTracking(ctx, s.ID, false)
	require.NoError(t, err)
	assert.False(t, snap.LiveTracking)

	far := models.GeoPoint{Latitude: 0.3226, Longitude: 32.5811}
	snap, err = svc.PushLocation(ctx, s.ID, far)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, far, *snap.Position)
	assert.Zero(t, snap.UpdateCount)
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, composer.messages(), 2)

	snap, err = svc.SetTracking(ctx, s.ID, true)
	require.NoError(t, err)
	assert.True(t, snap.LiveTracking)
}

func TestSession_PeriodicResend(t *testing.T) {
	opts := testSessionOptions()
	opts.ResendInterval = 20 * time.Millisecond
	svc, composer, _ := newTestEmergencyService(t, opts)
	ctx := context.Background()
	s := activeSession(t, svc, models.PatientDetails{})

	require.Eventually(t, func() bool {
		return len(composer.messages()) >= 3
	}, waitFor, tick)

	_, err := svc.Cancel(ctx, s.ID)
	require.NoError(t, err)

	sent := composer.messages()
	assert.Contains(t, sent[2].Body, "LOCATION UPDATE")
	assert.Contains(t, sent[2].Body, "0.313600, 32.581100")
}

func TestSession_Complete(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestEmergencyService(t, testSessionOptions())
	ctx := context.Background()
	s := activeSession(t, svc, models.PatientDetails{Phone: "0772123456"})
	assert.Equal(t, "0772123456", s.Emergency.ContactNumber)

	// Действие
	snap, err := svc.Complete(ctx, s.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, snap.State)
	assert.False(t, snap.LiveTracking)
	assert.Equal(t, models.EmergencyResponded, snap.Emergency.Status)
	assert.Equal(t, models.EmergencyResponded, svc.ListEmergencies(ctx)[0].Status)

	_, err = svc.Cancel(ctx, s.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Complete(ctx, s.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSession_CancelActive(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t, testSessionOptions())
	ctx := context.Background()
	s := activeSession(t, svc, models.PatientDetails{})

	snap, err := svc.Cancel(ctx, s.ID)

	require.NoError(t, err)
	assert.Equal(t, models.SessionCancelled, snap.State)
	assert.Equal(t, models.EmergencyCancelled, snap.Emergency.Status)
	assert.Zero(t, snap.UpdateCount)
	assert.Equal(t, models.EmergencyCancelled, svc.ListEmergencies(ctx)[0].Status)

	_, err = svc.SetTracking(ctx, s.ID, true)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSession_CompleteNotActive(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t, testSessionOptions())
	ctx := context.Background()
	s, err := svc.OpenSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.Complete(ctx, s.ID)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSession_DispatchFailureFallback(t *testing.T) {
	// Подготовка
	svc, composer, queue := newTestEmergencyService(t, testSessionOptions())
	composer.setFail(true)

	// Действие
	snap := activeSession(t, svc, models.PatientDetails{})

	// Проверки
	require.NotNil(t, snap.LastDispatch)
	assert.False(t, snap.LastDispatch.Success)
	require.Len(t, snap.LastDispatch.Failed, 2)
	assert.Equal(t, notification.ReasonSendFailed, snap.LastDispatch.Failed[0].Reason)
	assert.Equal(t, 2, queue.Len())

	require.Len(t, snap.Fallback, 4)
	assert.Equal(t, "Call Police (999)", snap.Fallback[0].Label)
	assert.Equal(t, "Call Hospital 0414 266 000", snap.Fallback[2].Label)
	assert.Equal(t, "tel:0414266000", snap.Fallback[2].URI)

	// Повтор после восстановления
	composer.setFail(false)
	report := svc.RetryQueue(context.Background())
	assert.Equal(t, models.RetryReport{Processed: 2, Successful: 2}, report)
	assert.Len(t, composer.messages(), 2)
}
