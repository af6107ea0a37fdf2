package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/emergency_alert_system/internal/geo"
	"github.com/shenikar/emergency_alert_system/internal/models"
	"github.com/shenikar/emergency_alert_system/internal/notification"
	"github.com/shenikar/emergency_alert_system/internal/triage"
	"github.com/shenikar/emergency_alert_system/pkg/metrics"
)

const (
	notProvided          = "Not provided"
	locationErrorMessage = "Unable to get your location. Please try again."
	trackingErrorMessage = "Unable to start live location tracking."
	facilityErrorMessage = "Unable to load nearby facilities. Please try again."
)

// SessionOptions - тайминги и лимиты экстренной сессии
type SessionOptions struct {
	CountdownSeconds    int
	CountdownTick       time.Duration
	ResendInterval      time.Duration
	MovementThresholdKM float64
	NearestCount        int
	AlertRecipients     int
}

func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		CountdownSeconds:    5,
		CountdownTick:       time.Second,
		ResendInterval:      2 * time.Minute,
		MovementThresholdKM: geo.MovementThresholdKM,
		NearestCount:        geo.DefaultNearestCount,
		AlertRecipients:     2,
	}
}

type sessionDeps struct {
	location   LocationProvider
	facilities FacilityRepository
	dispatcher *notification.Dispatcher
	logger     *logrus.Logger
	now        func() time.Time
	// onRecord вызывается после каждого изменения записи о происшествии
	onRecord func(models.Emergency)
	// onFinish вызывается после перехода в конечное состояние
	onFinish func(id uuid.UUID)
}

// controller - конечный автомат одной экстренной сессии:
// idle -> type_selected -> countdown_pending -> active -> cancelled | completed.
// Рассылки внутри сессии выполняются строго по очереди.
type controller struct {
	id       uuid.UUID
	platform models.Platform
	opts     SessionOptions
	deps     sessionDeps
	ctx      context.Context
	log      *logrus.Entry

	mu           sync.Mutex
	state        models.SessionState
	category     string
	guidance     *models.TriageGuidance
	severity     models.Severity
	responseTime string
	patient      models.PatientDetails
	countdown    int
	position     *models.GeoPoint
	denied       bool
	liveTracking bool
	updateCount  int
	hospitals    []models.RankedFacility
	police       []models.RankedFacility
	notified     []models.Recipient
	record       *models.Emergency
	lastDispatch *models.NotificationResult
	progress     *models.DispatchProgress
	fallback     []models.FallbackAction
	lastErr      string
	createdAt    time.Time
	updatedAt    time.Time

	stopCountdown context.CancelFunc
	stopTracking  context.CancelFunc
	// closed: сервис останавливается, новые фоновые задачи не запускаются
	closed bool

	dispatchMu sync.Mutex
	wg         sync.WaitGroup
}

// newController создает сессию. Фоновые задачи и рассылки работают на ctx,
// поэтому отмена сессии не прерывает уже начатую рассылку.
func newController(ctx context.Context, platform models.Platform, opts SessionOptions, deps sessionDeps) *controller {
	if deps.now == nil {
		deps.now = time.Now
	}
	if deps.onRecord == nil {
		deps.onRecord = func(models.Emergency) {}
	}
	if deps.onFinish == nil {
		deps.onFinish = func(uuid.UUID) {}
	}

	id := uuid.New()
	now := deps.now().UTC()
	return &controller{
		id:       id,
		platform: platform,
		opts:     opts,
		deps:     deps,
		ctx:      ctx,
		log: deps.logger.WithFields(logrus.Fields{
			"service":    "emergency",
			"session_id": id,
		}),
		state:     models.SessionIdle,
		createdAt: now,
		updatedAt: now,
	}
}

// SelectType выбирает категорию происшествия и загружает инструкцию первой помощи
func (c *controller) SelectType(category string) (models.Session, error) {
	if !triage.Known(category) {
		return models.Session{}, ErrInvalidCategory
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.SessionIdle && c.state != models.SessionTypeSelected {
		return models.Session{}, transitionError(c.state, models.SessionTypeSelected)
	}

	g := triage.Guidance(category)
	c.category = category
	c.guidance = &g
	c.severity = triage.Severity(category)
	c.responseTime = triage.ResponseTimeMessage(c.severity)
	c.lastErr = ""
	c.setStateLocked(models.SessionTypeSelected)

	return c.snapshotLocked(), nil
}

// Confirm запускает обратный отсчет. По его окончании оповещение уходит автоматически.
func (c *controller) Confirm(patient models.PatientDetails) (models.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.SessionTypeSelected {
		return models.Session{}, transitionError(c.state, models.SessionCountdownPending)
	}

	c.patient = normalizePatient(patient)
	c.countdown = c.opts.CountdownSeconds
	c.lastErr = ""
	c.setStateLocked(models.SessionCountdownPending)

	ctx, cancel := context.WithCancel(c.ctx)
	c.stopCountdown = cancel
	c.wg.Add(1)
	go c.runCountdown(ctx)

	return c.snapshotLocked(), nil
}

func (c *controller) runCountdown(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.opts.CountdownTick)
	defer ticker.Stop()

	for {
		c.mu.Lock()
		if c.state != models.SessionCountdownPending {
			c.mu.Unlock()
			return
		}
		remaining := c.countdown
		c.mu.Unlock()

		if remaining <= 0 {
			break
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		c.mu.Lock()
		if c.state == models.SessionCountdownPending {
			c.countdown--
			c.touchLocked()
		}
		c.mu.Unlock()
	}

	c.activate(ctx)
}

// activate создает запись о происшествии и оповещает ближайшие больницы
func (c *controller) activate(ctx context.Context) {
	pos, err := c.deps.location.CurrentPosition(ctx)

	var hospitals, police []models.RankedFacility
	var rankErr error
	if err == nil {
		hospitals, police, rankErr = c.rank(ctx, pos)
	}

	c.mu.Lock()
	if c.state != models.SessionCountdownPending {
		c.mu.Unlock()
		return
	}
	if c.stopCountdown != nil {
		c.stopCountdown()
		c.stopCountdown = nil
	}
	c.countdown = 0

	if err != nil || rankErr != nil {
		c.lastErr = locationErrorMessage
		if err == nil {
			c.lastErr = facilityErrorMessage
			err = rankErr
		}
		c.log.WithError(err).Warn("Emergency activation aborted")
		c.setStateLocked(models.SessionTypeSelected)
		c.mu.Unlock()
		return
	}

	c.position = &pos
	c.hospitals = hospitals
	c.police = police
	c.notified = recipients(hospitals, c.opts.AlertRecipients)
	c.updateCount = 0
	c.record = &models.Emergency{
		ID:                uuid.New(),
		PatientName:       c.patient.Name,
		ContactNumber:     contactNumber(c.patient),
		EmergencyType:     c.category,
		Location:          pos,
		Geohash:           pos.Geohash(),
		Timestamp:         c.deps.now().UTC(),
		Status:            models.EmergencyPending,
		NotifiedHospitals: facilityIDs(hospitals, c.opts.AlertRecipients),
		NotifiedPolice:    []string{},
		Allergies:         slices.Clone(c.patient.Allergies),
		MedicalHistory:    slices.Clone(c.patient.MedicalHistory),
	}
	c.setStateLocked(models.SessionActive)
	c.startTrackingLocked()

	targets := slices.Clone(c.notified)
	message := notification.FormatEmergencyAlert(c.alertDetailsLocked(true))
	record := cloneEmergency(c.record)
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"emergency_id": record.ID,
		"geohash":      record.Geohash,
		"recipients":   len(targets),
	}).Info("Emergency activated")

	c.deps.onRecord(record)
	c.dispatch(targets, message)
}

// AlertPolice оповещает ближайшие полицейские участки. Рассылка идет в фоне.
func (c *controller) AlertPolice() (models.Session, error) {
	c.mu.Lock()
	if c.state != models.SessionActive {
		defer c.mu.Unlock()
		return models.Session{}, ErrInvalidTransition
	}

	targets := recipients(c.police, c.opts.AlertRecipients)
	for _, id := range facilityIDs(c.police, c.opts.AlertRecipients) {
		if !slices.Contains(c.record.NotifiedPolice, id) {
			c.record.NotifiedPolice = append(c.record.NotifiedPolice, id)
		}
	}
	for _, r := range targets {
		if !slices.Contains(c.notified, r) {
			c.notified = append(c.notified, r)
		}
	}
	c.touchLocked()

	message := notification.FormatEmergencyAlert(c.alertDetailsLocked(false))
	record := cloneEmergency(c.record)
	snap := c.snapshotLocked()
	c.wg.Add(1)
	c.mu.Unlock()

	c.log.WithField("recipients", len(targets)).Info("Alerting police")
	c.deps.onRecord(record)

	go func() {
		defer c.wg.Done()
		c.dispatch(targets, message)
	}()

	return snap, nil
}

// SetTracking включает или выключает отслеживание местоположения
func (c *controller) SetTracking(enabled bool) (models.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.SessionActive {
		return models.Session{}, ErrInvalidTransition
	}

	if enabled {
		c.startTrackingLocked()
	} else {
		c.stopTrackingLocked()
	}
	c.touchLocked()

	return c.snapshotLocked(), nil
}

// ObserveLocation учитывает точку, полученную вне отслеживания: обновляет
// позицию и ближайшие учреждения без рассылки.
func (c *controller) ObserveLocation(ctx context.Context, p models.GeoPoint) {
	c.mu.Lock()
	c.denied = false
	tracking := c.liveTracking
	terminal := c.state.Terminal()
	c.mu.Unlock()

	if tracking || terminal {
		return
	}
	c.accept(ctx, p)
}

// DenyLocation отмечает отказ в доступе к геолокации до следующей точки
func (c *controller) DenyLocation() models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.denied = true
	c.touchLocked()
	return c.snapshotLocked()
}

func (c *controller) Cancel() (models.Session, error) {
	return c.finish(models.SessionCancelled, models.EmergencyCancelled)
}

// Complete завершает активную сессию, запись отмечается как Responded
func (c *controller) Complete() (models.Session, error) {
	return c.finish(models.SessionCompleted, models.EmergencyResponded)
}

func (c *controller) finish(to models.SessionState, status models.EmergencyStatus) (models.Session, error) {
	c.mu.Lock()

	if c.state.Terminal() || (to == models.SessionCompleted && c.state != models.SessionActive) {
		from := c.state
		c.mu.Unlock()
		return models.Session{}, transitionError(from, to)
	}

	if c.stopCountdown != nil {
		c.stopCountdown()
		c.stopCountdown = nil
	}
	c.stopTrackingLocked()
	c.countdown = 0
	c.updateCount = 0

	var record *models.Emergency
	if c.record != nil {
		c.record.Status = status
		r := cloneEmergency(c.record)
		record = &r
	}
	c.setStateLocked(to)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if record != nil {
		c.deps.onRecord(*record)
	}
	c.deps.onFinish(c.id)

	return snap, nil
}

// Snapshot возвращает копию текущего состояния сессии
func (c *controller) Snapshot() models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// close останавливает фоновые задачи без смены состояния
func (c *controller) close() {
	c.mu.Lock()
	c.closed = true
	if c.stopCountdown != nil {
		c.stopCountdown()
		c.stopCountdown = nil
	}
	if c.stopTracking != nil {
		c.stopTracking()
		c.stopTracking = nil
	}
	c.mu.Unlock()
}

func (c *controller) wait() {
	c.wg.Wait()
}

func (c *controller) startTrackingLocked() {
	c.liveTracking = true
	if c.stopTracking != nil || c.closed {
		return
	}

	ctx, cancel := context.WithCancel(c.ctx)
	c.stopTracking = cancel
	c.wg.Add(1)
	go c.track(ctx)
}

func (c *controller) stopTrackingLocked() {
	if c.stopTracking != nil {
		c.stopTracking()
		c.stopTracking = nil
	}
	c.liveTracking = false
}

// track обрабатывает поток координат и раз в ResendInterval повторяет
// последнюю известную точку независимо от перемещения.
func (c *controller) track(ctx context.Context) {
	defer c.wg.Done()

	updates, err := c.deps.location.Watch(ctx)
	if err != nil {
		c.log.WithError(err).Warn("Failed to start location watch")
		c.mu.Lock()
		c.lastErr = trackingErrorMessage
		c.mu.Unlock()
	}

	ticker := time.NewTicker(c.opts.ResendInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case p, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			c.handleLocation(ctx, p)
		case <-ticker.C:
			c.resend()
		}
	}
}

func (c *controller) handleLocation(ctx context.Context, p models.GeoPoint) {
	c.mu.Lock()
	if c.position != nil && !geo.HasMovedBeyond(*c.position, p, c.opts.MovementThresholdKM) {
		c.mu.Unlock()
		metrics.LocationUpdatesTotal.WithLabelValues("skipped").Inc()
		return
	}
	c.mu.Unlock()

	metrics.LocationUpdatesTotal.WithLabelValues("accepted").Inc()
	c.accept(ctx, p)
	c.sendLocationUpdate(p)
}

func (c *controller) resend() {
	c.mu.Lock()
	if c.position == nil {
		c.mu.Unlock()
		return
	}
	p := *c.position
	c.mu.Unlock()

	c.sendLocationUpdate(p)
}

// accept делает точку текущей позицией и пересчитывает ближайшие учреждения
func (c *controller) accept(ctx context.Context, p models.GeoPoint) {
	hospitals, police, err := c.rank(ctx, p)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.position = &p
	if err != nil {
		c.log.WithError(err).Warn("Failed to re-rank facilities")
	} else {
		c.hospitals = hospitals
		c.police = police
	}
	c.touchLocked()
}

func (c *controller) sendLocationUpdate(p models.GeoPoint) {
	c.mu.Lock()
	if c.state != models.SessionActive || c.record == nil {
		c.mu.Unlock()
		return
	}
	c.updateCount++
	n := c.updateCount
	emergencyID := c.record.ID.String()
	targets := slices.Clone(c.notified)
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"update":  n,
		"geohash": p.Geohash(),
	}).Info("Sending location update")

	c.dispatch(targets, notification.FormatLocationUpdate(p, emergencyID, n, c.deps.now()))
}

// dispatch передает сообщение получателям. Рассылки сессии не пересекаются.
func (c *controller) dispatch(targets []models.Recipient, message string) {
	c.dispatchMu.Lock()
	defer c.dispatchMu.Unlock()

	result := c.deps.dispatcher.Notify(c.ctx, c.platform, targets, message, c.reportProgress)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.progress = nil
	c.lastDispatch = &result
	if result.Success {
		c.fallback = nil
	} else {
		phones := make([]string, 0, len(result.Failed))
		for _, f := range result.Failed {
			phones = append(phones, f.Phone)
		}
		c.fallback = notification.FallbackActions(phones)
	}
	c.touchLocked()
}

func (c *controller) reportProgress(current, total int) {
	c.mu.Lock()
	c.progress = &models.DispatchProgress{Current: current, Total: total}
	c.mu.Unlock()
}

func (c *controller) rank(ctx context.Context, p models.GeoPoint) ([]models.RankedFacility, []models.RankedFacility, error) {
	hospitals, err := c.deps.facilities.Hospitals(ctx)
	if err != nil {
		return nil, nil, err
	}
	stations, err := c.deps.facilities.PoliceStations(ctx)
	if err != nil {
		return nil, nil, err
	}
	return rankHospitals(hospitals, p, c.opts.NearestCount), rankPoliceStations(stations, p, c.opts.NearestCount), nil
}

func (c *controller) alertDetailsLocked(withMedical bool) notification.AlertDetails {
	d := notification.AlertDetails{
		PatientName:   c.patient.Name,
		ContactNumber: contactNumber(c.patient),
		EmergencyType: c.category,
		Location:      c.record.Location,
	}
	if withMedical {
		d.Allergies = c.patient.Allergies
		d.MedicalHistory = c.patient.MedicalHistory
	}
	return d
}

func (c *controller) setStateLocked(s models.SessionState) {
	from := c.state
	c.state = s
	c.touchLocked()
	metrics.SessionTransitionsTotal.WithLabelValues(string(s)).Inc()
	c.log.WithFields(logrus.Fields{"from": from, "to": s}).Info("Session state changed")
}

func (c *controller) touchLocked() {
	c.updatedAt = c.deps.now().UTC()
}

func (c *controller) snapshotLocked() models.Session {
	s := models.Session{
		ID:               c.id,
		State:            c.state,
		Platform:         c.platform,
		EmergencyType:    c.category,
		Severity:         c.severity,
		ResponseTime:     c.responseTime,
		Countdown:        c.countdown,
		LocationStatus:   geo.LocationStatusMessage(!c.denied, c.position),
		LiveTracking:     c.liveTracking,
		UpdateCount:      c.updateCount,
		NearestHospitals: slices.Clone(c.hospitals),
		NearestPolice:    slices.Clone(c.police),
		Fallback:         slices.Clone(c.fallback),
		LastError:        c.lastErr,
		CreatedAt:        c.createdAt,
		UpdatedAt:        c.updatedAt,
	}
	if c.guidance != nil {
		g := *c.guidance
		s.Guidance = &g
	}
	if c.position != nil {
		p := *c.position
		s.Position = &p
	}
	if c.record != nil {
		r := cloneEmergency(c.record)
		s.Emergency = &r
	}
	if c.lastDispatch != nil {
		d := *c.lastDispatch
		s.LastDispatch = &d
	}
	if c.progress != nil {
		p := *c.progress
		s.Progress = &p
	}
	return s
}

func cloneEmergency(e *models.Emergency) models.Emergency {
	out := *e
	out.NotifiedHospitals = slices.Clone(e.NotifiedHospitals)
	out.NotifiedPolice = slices.Clone(e.NotifiedPolice)
	out.Allergies = slices.Clone(e.Allergies)
	out.MedicalHistory = slices.Clone(e.MedicalHistory)
	return out
}

func facilityIDs(facilities []models.RankedFacility, n int) []string {
	n = max(0, min(n, len(facilities)))
	ids := make([]string, 0, n)
	for _, f := range facilities[:n] {
		ids = append(ids, f.ID)
	}
	return ids
}

func contactNumber(p models.PatientDetails) string {
	if p.Phone == "" {
		return notProvided
	}
	return p.Phone
}

func normalizePatient(p models.PatientDetails) models.PatientDetails {
	return models.PatientDetails{
		Name:           strings.TrimSpace(p.Name),
		Phone:          strings.TrimSpace(p.Phone),
		Allergies:      trimList(p.Allergies),
		MedicalHistory: trimList(p.MedicalHistory),
	}
}

// trimList убирает пробелы по краям и пустые элементы
func trimList(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
