package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/emergency_alert_system/internal/config"
	"github.com/shenikar/emergency_alert_system/internal/geo"
	"github.com/shenikar/emergency_alert_system/internal/models"
	"github.com/shenikar/emergency_alert_system/internal/notification"
	"github.com/shenikar/emergency_alert_system/internal/triage"
)

//go:generate mockgen -source=emergency.go -destination=mocks/mock_emergency.go -package=mocks

// FacilityRepository определяет контракт справочника учреждений
type FacilityRepository interface {
	Hospitals(ctx context.Context) ([]models.Hospital, error)
	PoliceStations(ctx context.Context) ([]models.PoliceStation, error)
	EmergencyContacts(ctx context.Context) ([]models.PoliceEmergencyContact, error)
}

// EmergencyService определяет контракт для экстренных сессий, справочника и очереди повторов
type EmergencyService interface {
	OpenSession(ctx context.Context, platform string) (models.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (models.Session, error)
	SelectType(ctx context.Context, id uuid.UUID, category string) (models.Session, error)
	Confirm(ctx context.Context, id uuid.UUID, patient models.PatientDetails) (models.Session, error)
	PushLocation(ctx context.Context, id uuid.UUID, p models.GeoPoint) (models.Session, error)
	DenyLocation(ctx context.Context, id uuid.UUID) (models.Session, error)
	SetTracking(ctx context.Context, id uuid.UUID, enabled bool) (models.Session, error)
	AlertPolice(ctx context.Context, id uuid.UUID) (models.Session, error)
	Cancel(ctx context.Context, id uuid.UUID) (models.Session, error)
	Complete(ctx context.Context, id uuid.UUID) (models.Session, error)
	ShareLocation(ctx context.Context, id uuid.UUID, phones []string) (notification.BulkResult, error)
	ListEmergencies(ctx context.Context) []models.Emergency
	NearestFacilities(ctx context.Context, kind models.FacilityKind, from models.GeoPoint, count int) ([]models.RankedFacility, error)
	EmergencyContacts(ctx context.Context) ([]models.PoliceEmergencyContact, error)
	Triage(ctx context.Context, category string) models.TriageReport
	EmergencyCategories(ctx context.Context) []string
	QueuedMessages(ctx context.Context) []models.QueuedMessage
	RetryQueue(ctx context.Context) models.RetryReport
	ClearQueue(ctx context.Context)
	Shutdown(ctx context.Context) error
}

const sessionCleanupInterval = 10 * time.Minute

type sessionEntry struct {
	ctrl *controller
	feed *PushLocationFeed
}

type emergencyService struct {
	repo       FacilityRepository
	dispatcher *notification.Dispatcher
	logger     *logrus.Logger
	cfg        *config.Config
	opts       SessionOptions

	// Базовый контекст фоновых задач сессий, отменяется в Shutdown
	base   context.Context
	cancel context.CancelFunc

	sessions *cache.Cache

	mu      sync.RWMutex
	records []models.Emergency
	index   map[uuid.UUID]int
}

func NewEmergencyService(ctx context.Context, repo FacilityRepository, dispatcher *notification.Dispatcher, logger *logrus.Logger, cfg *config.Config) EmergencyService {
	opts := SessionOptions{
		CountdownSeconds:    cfg.CountdownSeconds,
		CountdownTick:       cfg.CountdownTick,
		ResendInterval:      cfg.LocationResendInterval,
		MovementThresholdKM: cfg.MovementThresholdKM,
		NearestCount:        cfg.NearestCount,
		AlertRecipients:     cfg.AlertRecipients,
	}
	return newEmergencyService(ctx, repo, dispatcher, logger, cfg, opts)
}

func newEmergencyService(ctx context.Context, repo FacilityRepository, dispatcher *notification.Dispatcher, logger *logrus.Logger, cfg *config.Config, opts SessionOptions) *emergencyService {
	base, cancel := context.WithCancel(context.WithoutCancel(ctx))

	sessions := cache.New(cache.NoExpiration, sessionCleanupInterval)
	sessions.OnEvicted(func(_ string, v interface{}) {
		if e, ok := v.(*sessionEntry); ok {
			e.ctrl.close()
		}
	})

	return &emergencyService{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		opts:       opts,
		base:       base,
		cancel:     cancel,
		sessions:   sessions,
		index:      make(map[uuid.UUID]int),
	}
}

// ParsePlatform разбирает название платформы устройства
func ParsePlatform(s string) (models.Platform, error) {
	switch p := models.Platform(s); p {
	case models.PlatformIOS, models.PlatformAndroid, models.PlatformWeb:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPlatform, s)
}

// OpenSession создает новую сессию в состоянии idle
func (s *emergencyService) OpenSession(_ context.Context, platform string) (models.Session, error) {
	if platform == "" {
		platform = s.cfg.DefaultPlatform
	}
	p, err := ParsePlatform(platform)
	if err != nil {
		return models.Session{}, err
	}

	feed := NewPushLocationFeed()
	ctrl := newController(s.base, p, s.opts, sessionDeps{
		location:   feed,
		facilities: s.repo,
		dispatcher: s.dispatcher,
		logger:     s.logger,
		onRecord:   s.storeRecord,
		onFinish:   s.expireSession,
	})
	s.sessions.Set(ctrl.id.String(), &sessionEntry{ctrl: ctrl, feed: feed}, cache.NoExpiration)

	s.logger.WithFields(logrus.Fields{
		"service":    "emergency",
		"method":     "OpenSession",
		"session_id": ctrl.id,
		"platform":   p,
	}).Info("Session opened")

	return ctrl.Snapshot(), nil
}

func (s *emergencyService) GetSession(_ context.Context, id uuid.UUID) (models.Session, error) {
	e, err := s.session(id)
	if err != nil {
		return models.Session{}, err
	}
	return e.ctrl.Snapshot(), nil
}

// SelectType выбирает категорию происшествия
func (s *emergencyService) SelectType(_ context.Context, id uuid.UUID, category string) (models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "emergency",
		"method":     "SelectType",
		"session_id": id,
		"category":   category,
	})

	e, err := s.session(id)
	if err != nil {
		return models.Session{}, err
	}

	snap, err := e.ctrl.SelectType(category)
	if err != nil {
		log.WithError(err).Warn("Failed to select emergency type")
		return models.Session{}, fmt.Errorf("service: could not select type: %w", err)
	}
	return snap, nil
}

// Confirm подтверждает происшествие и запускает обратный отсчет
func (s *emergencyService) Confirm(_ context.Context, id uuid.UUID, patient models.PatientDetails) (models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "emergency",
		"method":     "Confirm",
		"session_id": id,
	})

	e, err := s.session(id)
	if err != nil {
		return models.Session{}, err
	}

	snap, err := e.ctrl.Confirm(patient)
	if err != nil {
		log.WithError(err).Warn("Failed to confirm emergency")
		return models.Session{}, fmt.Errorf("service: could not confirm: %w", err)
	}
	log.WithField("countdown", snap.Countdown).Info("Countdown started")
	return snap, nil
}

// PushLocation принимает координаты устройства
func (s *emergencyService) PushLocation(ctx context.Context, id uuid.UUID, p models.GeoPoint) (models.Session, error) {
	if err := p.Validate(); err != nil {
		return models.Session{}, err
	}

	e, err := s.session(id)
	if err != nil {
		return models.Session{}, err
	}

	e.feed.Push(p)
	e.ctrl.ObserveLocation(ctx, p)
	return e.ctrl.Snapshot(), nil
}

// DenyLocation отмечает отказ в доступе к геолокации
func (s *emergencyService) DenyLocation(_ context.Context, id uuid.UUID) (models.Session, error) {
	e, err := s.session(id)
	if err != nil {
		return models.Session{}, err
	}

	e.feed.Deny()
	s.logger.WithFields(logrus.Fields{
		"service":    "emergency",
		"method":     "DenyLocation",
		"session_id": id,
	}).Warn("Location permission denied")
	return e.ctrl.DenyLocation(), nil
}

func (s *emergencyService) SetTracking(_ context.Context, id uuid.UUID, enabled bool) (models.Session, error) {
	e, err := s.session(id)
	if err != nil {
		return models.Session{}, err
	}

	snap, err := e.ctrl.SetTracking(enabled)
	if err != nil {
		return models.Session{}, fmt.Errorf("service: could not set tracking: %w", err)
	}
	return snap, nil
}

// AlertPolice оповещает ближайшие полицейские участки
func (s *emergencyService) AlertPolice(_ context.Context, id uuid.UUID) (models.Session, error) {
	e, err := s.session(id)
	if err != nil {
		return models.Session{}, err
	}

	snap, err := e.ctrl.AlertPolice()
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "emergency",
			"method":     "AlertPolice",
			"session_id": id,
		}).WithError(err).Warn("Police alert rejected")
		return models.Session{}, fmt.Errorf("service: could not alert police: %w", err)
	}
	return snap, nil
}

func (s *emergencyService) Cancel(_ context.Context, id uuid.UUID) (models.Session, error) {
	e, err := s.session(id)
	if err != nil {
		return models.Session{}, err
	}

	snap, err := e.ctrl.Cancel()
	if err != nil {
		return models.Session{}, fmt.Errorf("service: could not cancel: %w", err)
	}
	return snap, nil
}

func (s *emergencyService) Complete(_ context.Context, id uuid.UUID) (models.Session, error) {
	e, err := s.session(id)
	if err != nil {
		return models.Session{}, err
	}

	snap, err := e.ctrl.Complete()
	if err != nil {
		return models.Session{}, fmt.Errorf("service: could not complete: %w", err)
	}
	return snap, nil
}

// ShareLocation отправляет текущую точку сессии на личные номера пользователя
func (s *emergencyService) ShareLocation(ctx context.Context, id uuid.UUID, phones []string) (notification.BulkResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "emergency",
		"method":     "ShareLocation",
		"session_id": id,
		"phones":     len(phones),
	})

	e, err := s.session(id)
	if err != nil {
		return notification.BulkResult{}, err
	}

	for _, phone := range phones {
		if err := notification.ValidatePhoneNumber(phone); err != nil {
			return notification.BulkResult{}, fmt.Errorf("%w: %q", err, phone)
		}
	}

	snap := e.ctrl.Snapshot()
	if snap.Position == nil {
		log.Warn("No location fix to share")
		return notification.BulkResult{}, fmt.Errorf("service: could not share location: %w", ErrLocationUnavailable)
	}

	result := s.dispatcher.SendBulk(ctx, snap.Platform, phones, notification.FormatShareLocation(snap.EmergencyType, *snap.Position))
	log.WithFields(logrus.Fields{
		"sent":   len(result.Sent),
		"failed": len(result.Failed),
	}).Info("Location shared")
	return result, nil
}

// ListEmergencies возвращает записи о происшествиях в порядке создания
func (s *emergencyService) ListEmergencies(_ context.Context) []models.Emergency {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Emergency, 0, len(s.records))
	for i := range s.records {
		out = append(out, cloneEmergency(&s.records[i]))
	}
	return out
}

// NearestFacilities ранжирует учреждения по расстоянию от точки
func (s *emergencyService) NearestFacilities(ctx context.Context, kind models.FacilityKind, from models.GeoPoint, count int) ([]models.RankedFacility, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "NearestFacilities",
		"kind":    kind,
	})

	if err := from.Validate(); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = geo.DefaultNearestCount
	}

	switch kind {
	case models.FacilityHospital:
		hospitals, err := s.repo.Hospitals(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to load hospitals")
			return nil, fmt.Errorf("service: could not load hospitals: %w", err)
		}
		return rankHospitals(hospitals, from, count), nil
	case models.FacilityPolice:
		stations, err := s.repo.PoliceStations(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to load police stations")
			return nil, fmt.Errorf("service: could not load police stations: %w", err)
		}
		return rankPoliceStations(stations, from, count), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFacilityKind, kind)
	}
}

func (s *emergencyService) EmergencyContacts(ctx context.Context) ([]models.PoliceEmergencyContact, error) {
	contacts, err := s.repo.EmergencyContacts(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "emergency",
			"method":  "EmergencyContacts",
		}).WithError(err).Error("Failed to load emergency contacts")
		return nil, fmt.Errorf("service: could not load emergency contacts: %w", err)
	}
	return contacts, nil
}

// Triage собирает инструкцию и оценку срочности для категории
func (s *emergencyService) Triage(_ context.Context, category string) models.TriageReport {
	severity := triage.Severity(category)
	return models.TriageReport{
		Category:     category,
		Severity:     severity,
		ResponseTime: triage.ResponseTimeMessage(severity),
		Guidance:     triage.Guidance(category),
		QuickActions: triage.QuickActions(category),
		SMSText:      triage.FormatForSMS(category),
	}
}

func (s *emergencyService) EmergencyCategories(_ context.Context) []string {
	return triage.Categories()
}

func (s *emergencyService) QueuedMessages(_ context.Context) []models.QueuedMessage {
	return s.dispatcher.Queue().Snapshot()
}

// RetryQueue повторяет передачу ожидающих сообщений
func (s *emergencyService) RetryQueue(ctx context.Context) models.RetryReport {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "RetryQueue",
	})
	log.Info("Retrying queued messages")

	report := s.dispatcher.Retry(ctx)

	log.WithFields(logrus.Fields{
		"processed":  report.Processed,
		"successful": report.Successful,
		"failed":     report.Failed,
	}).Info("Retry finished")
	return report
}

func (s *emergencyService) ClearQueue(_ context.Context) {
	s.dispatcher.Queue().Clear()
	s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ClearQueue",
	}).Info("Retry queue cleared")
}

// Shutdown останавливает фоновые задачи всех сессий и ждет завершения рассылок.
// Базовый контекст отменяется только после ожидания или по истечении ctx.
func (s *emergencyService) Shutdown(ctx context.Context) error {
	defer s.cancel()

	items := s.sessions.Items()
	entries := make([]*sessionEntry, 0, len(items))
	for _, item := range items {
		if e, ok := item.Object.(*sessionEntry); ok {
			e.ctrl.close()
			entries = append(entries, e)
		}
	}

	done := make(chan struct{})
	go func() {
		for _, e := range entries {
			e.ctrl.wait()
		}
		close(done)
	}()

	select {
	case <-done:
		s.logger.WithField("sessions", len(entries)).Info("Emergency sessions stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("service: shutdown interrupted: %w", ctx.Err())
	}
}

func (s *emergencyService) session(id uuid.UUID) (*sessionEntry, error) {
	v, ok := s.sessions.Get(id.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return v.(*sessionEntry), nil
}

// storeRecord добавляет или обновляет запись о происшествии
func (s *emergencyService) storeRecord(e models.Emergency) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e.ID]; ok {
		s.records[i] = e
		return
	}
	s.index[e.ID] = len(s.records)
	s.records = append(s.records, e)
}

// expireSession оставляет завершенную сессию доступной на FinishedSessionTTL
func (s *emergencyService) expireSession(id uuid.UUID) {
	key := id.String()
	if v, ok := s.sessions.Get(key); ok {
		s.sessions.Set(key, v, s.cfg.FinishedSessionTTL)
	}
}
