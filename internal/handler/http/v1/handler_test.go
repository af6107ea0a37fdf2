package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/emergency_alert_system/internal/config"
	"github.com/shenikar/emergency_alert_system/internal/models"
	"github.com/shenikar/emergency_alert_system/internal/notification"
	"github.com/shenikar/emergency_alert_system/internal/service"
	"github.com/shenikar/emergency_alert_system/internal/service/mocks"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockEmergencyService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockEmergencyService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func testSession(state models.SessionState) models.Session {
	now := time.Now().UTC()
	return models.Session{
		ID:        uuid.New(),
		State:     state,
		Platform:  models.PlatformAndroid,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOpenSession_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	session := testSession(models.SessionIdle)
	session.Platform = models.PlatformIOS

	mockService.EXPECT().OpenSession(gomock.Any(), "ios").Return(session, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions", jsonBody(t, OpenSessionRequest{Platform: "ios"}), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, session.ID, resp.ID)
	assert.Equal(t, "idle", resp.State)
	assert.Equal(t, "ios", resp.Platform)
	assert.NotNil(t, resp.NearestHospitals)
}

func TestOpenSession_EmptyBody(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().OpenSession(gomock.Any(), "").Return(testSession(models.SessionIdle), nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions", nil, apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestOpenSession_InvalidPlatform(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/sessions", jsonBody(t, OpenSessionRequest{Platform: "symbian"}), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenSession_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/sessions", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "POST", "/api/v1/sessions", nil, map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestOpenSession_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().OpenSession(gomock.Any(), "").Return(testSession(models.SessionIdle), nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetSession_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	session := testSession(models.SessionActive)
	session.Position = &models.GeoPoint{Latitude: 0.3136, Longitude: 32.5811}
	session.Emergency = &models.Emergency{
		ID:                uuid.New(),
		ContactNumber:     "Not provided",
		EmergencyType:     "Stroke",
		Location:          *session.Position,
		Status:            models.EmergencyPending,
		NotifiedHospitals: []string{"h-001", "h-002"},
	}

	mockService.EXPECT().GetSession(gomock.Any(), session.ID).Return(session, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sessions/"+session.ID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "active", resp.State)
	require.NotNil(t, resp.Latitude)
	assert.Equal(t, 0.3136, *resp.Latitude)
	assert.Equal(t, "0.313600°N, 32.581100°E", resp.Coordinates)
	assert.Equal(t, "geo:0.3136,32.5811?q=My%20location", resp.MapsURI)
	require.NotNil(t, resp.Emergency)
	assert.Equal(t, []string{"h-001", "h-002"}, resp.Emergency.NotifiedHospitals)
	assert.Equal(t, []string{}, resp.Emergency.NotifiedPolice)
}

func TestGetSession_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetSession(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/sessions/invalid-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid session ID")
}

func TestGetSession_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().GetSession(gomock.Any(), id).
		Return(models.Session{}, fmt.Errorf("%w: %s", service.ErrSessionNotFound, id)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sessions/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSelectType_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	session := testSession(models.SessionTypeSelected)
	session.EmergencyType = "Burns"
	session.Severity = models.SeveritySerious

	mockService.EXPECT().SelectType(gomock.Any(), session.ID, "Burns").Return(session, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions/"+session.ID.String()+"/type", jsonBody(t, SelectTypeRequest{Category: "Burns"}), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"severity":"serious"`)
}

func TestSelectType_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unknown category", fmt.Errorf("service: could not select type: %w", service.ErrInvalidCategory), http.StatusUnprocessableEntity},
		{"wrong state", fmt.Errorf("service: could not select type: %w", service.ErrInvalidTransition), http.StatusConflict},
		{"not found", service.ErrSessionNotFound, http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			id := uuid.New()

			mockService.EXPECT().SelectType(gomock.Any(), id, "Burns").Return(models.Session{}, tc.err).Times(1)

			w := makeRequest(router, "POST", "/api/v1/sessions/"+id.String()+"/type", jsonBody(t, SelectTypeRequest{Category: "Burns"}), apiKeyHeader)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestSelectType_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().SelectType(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/sessions/"+id.String()+"/type", bytes.NewBufferString(`{}`), apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "POST", "/api/v1/sessions/"+id.String()+"/type", bytes.NewBufferString(`{"category":`), apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestConfirm_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	session := testSession(models.SessionCountdownPending)
	session.Countdown = 5
	reqBody := ConfirmRequest{
		PatientName:   "John Doe",
		ContactNumber: "0772123456",
		Allergies:     []string{"Penicillin"},
	}

	mockService.EXPECT().Confirm(gomock.Any(), session.ID, models.PatientDetails{
		Name:      "John Doe",
		Phone:     "0772123456",
		Allergies: []string{"Penicillin"},
	}).Return(session, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions/"+session.ID.String()+"/confirm", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"countdown":5`)
}

func TestConfirm_WithoutDetails(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	session := testSession(models.SessionCountdownPending)

	mockService.EXPECT().Confirm(gomock.Any(), session.ID, models.PatientDetails{}).Return(session, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions/"+session.ID.String()+"/confirm", nil, apiKeyHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestPushLocation_Fix(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	session := testSession(models.SessionIdle)

	mockService.EXPECT().PushLocation(gomock.Any(), session.ID, models.GeoPoint{Latitude: 0, Longitude: 32.5}).Return(session, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions/"+session.ID.String()+"/location", bytes.NewBufferString(`{"latitude":0,"longitude":32.5}`), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPushLocation_PermissionDenied(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	session := testSession(models.SessionIdle)

	mockService.EXPECT().DenyLocation(gomock.Any(), session.ID).Return(session, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions/"+session.ID.String()+"/location", bytes.NewBufferString(`{"permission_denied":true}`), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPushLocation_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().PushLocation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/sessions/"+id.String()+"/location", bytes.NewBufferString(`{"latitude":0.3}`), apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "POST", "/api/v1/sessions/"+id.String()+"/location", bytes.NewBufferString(`{"latitude":95,"longitude":32.5}`), apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "POST", "/api/v1/sessions/"+id.String()+"/location", bytes.NewBufferString(`{"latitude":0.3,"longitude":32.5,"accuracy":-1}`), apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShareLocation_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()
	phones := []string{"0772123456", "0414000000"}
	result := notification.BulkResult{Success: false, Sent: []string{"0772123456"}, Failed: []string{"0414000000"}}

	mockService.EXPECT().ShareLocation(gomock.Any(), id, phones).Return(result, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions/"+id.String()+"/share", jsonBody(t, ShareLocationRequest{Phones: phones}), apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ShareLocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"0414000000"}, resp.Failed)
}

func TestShareLocation_Errors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"no fix", fmt.Errorf("service: could not share location: %w", service.ErrLocationUnavailable), http.StatusConflict},
		{"invalid phone", fmt.Errorf("%w: %q", notification.ErrInvalidPhoneNumber, "12"), http.StatusUnprocessableEntity},
		{"not found", service.ErrSessionNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			id := uuid.New()

			mockService.EXPECT().ShareLocation(gomock.Any(), id, gomock.Any()).Return(notification.BulkResult{}, tc.err).Times(1)

			w := makeRequest(router, "POST", "/api/v1/sessions/"+id.String()+"/share", bytes.NewBufferString(`{"phones":["12"]}`), apiKeyHeader)

			assert.Equal(t, tc.code, w.Code)
		})
	}

	t.Run("empty list", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().ShareLocation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "POST", "/api/v1/sessions/"+uuid.NewString()+"/share", bytes.NewBufferString(`{"phones":[]}`), apiKeyHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSetTracking(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	session := testSession(models.SessionActive)

	mockService.EXPECT().SetTracking(gomock.Any(), session.ID, false).Return(session, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions/"+session.ID.String()+"/tracking", bytes.NewBufferString(`{"enabled":false}`), apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "POST", "/api/v1/sessions/"+session.ID.String()+"/tracking", bytes.NewBufferString(`{}`), apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlertPolice(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	session := testSession(models.SessionActive)
	id := uuid.New()

	gomock.InOrder(
		mockService.EXPECT().AlertPolice(gomock.Any(), session.ID).Return(session, nil),
		mockService.EXPECT().AlertPolice(gomock.Any(), id).Return(models.Session{}, service.ErrInvalidTransition),
	)

	w := makeRequest(router, "POST", "/api/v1/sessions/"+session.ID.String()+"/police", nil, apiKeyHeader)
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = makeRequest(router, "POST", "/api/v1/sessions/"+id.String()+"/police", nil, apiKeyHeader)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelAndComplete(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	cancelled := testSession(models.SessionCancelled)
	completed := testSession(models.SessionCompleted)

	mockService.EXPECT().Cancel(gomock.Any(), cancelled.ID).Return(cancelled, nil).Times(1)
	mockService.EXPECT().Complete(gomock.Any(), completed.ID).Return(completed, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions/"+cancelled.ID.String()+"/cancel", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"cancelled"`)

	w = makeRequest(router, "POST", "/api/v1/sessions/"+completed.ID.String()+"/complete", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"completed"`)
}

func TestListEmergencies(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	records := []models.Emergency{
		{ID: uuid.New(), EmergencyType: "Stroke", Status: models.EmergencyPending, Geohash: "s00twy0"},
	}

	mockService.EXPECT().ListEmergencies(gomock.Any()).Return(records).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Pending", resp[0].Status)
	assert.Equal(t, "s00twy0", resp[0].Geohash)
}

func TestNearestFacilities_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	ranked := []models.RankedFacility{
		{ID: "h-003", Kind: models.FacilityHospital, Name: "Kibuli Hospital", Distance: 1.6, DistanceText: "1.6 km", ETA: "3 minutes"},
	}

	mockService.EXPECT().
		NearestFacilities(gomock.Any(), models.FacilityHospital, models.GeoPoint{Latitude: 0.3136, Longitude: 32.5811}, 1).
		Return(ranked, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/facilities/nearest?kind=hospital&lat=0.3136&lon=32.5811&count=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"eta":"3 minutes"`)
}

func TestNearestFacilities_InvalidQuery(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().NearestFacilities(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, query := range []string{
		"kind=hospital&lat=0.3",
		"kind=fire&lat=0.3&lon=32.5",
		"kind=police&lat=100&lon=32.5",
		"kind=police&lat=abc&lon=32.5",
	} {
		w := makeRequest(router, "GET", "/api/v1/facilities/nearest?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestEmergencyContacts_Error(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().EmergencyContacts(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/contacts", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestTriage(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	report := models.TriageReport{Category: "Choking", Severity: models.SeverityCritical}

	mockService.EXPECT().Triage(gomock.Any(), "Choking").Return(report).Times(1)

	w := makeRequest(router, "GET", "/api/v1/triage?category=Choking", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"severity":"critical"`)

	w = makeRequest(router, "GET", "/api/v1/triage", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTriageCategories(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().EmergencyCategories(gomock.Any()).Return([]string{"Stroke", "Other Emergency"}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/triage/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Stroke","Other Emergency"]`, w.Body.String())
}

func TestQueueRoutes(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	items := []models.QueuedMessage{
		{ID: "1", PhoneNumber: "0414267012", Message: "help", Platform: models.PlatformAndroid, Status: models.MessagePending},
	}

	mockService.EXPECT().QueuedMessages(gomock.Any()).Return(items).Times(1)
	mockService.EXPECT().RetryQueue(gomock.Any()).Return(models.RetryReport{Processed: 1, Successful: 1}).Times(1)
	mockService.EXPECT().ClearQueue(gomock.Any()).Times(1)

	w := makeRequest(router, "GET", "/api/v1/queue", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)

	w = makeRequest(router, "POST", "/api/v1/queue/retry", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	var report RetryReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, RetryReportResponse{Processed: 1, Successful: 1}, report)

	w = makeRequest(router, "DELETE", "/api/v1/queue", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, "DELETE", "/api/v1/queue", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRoutesWithoutAPIKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockEmergencyService(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(mockService, logger, &config.Config{}).RegisterRoutes(router.Group("/api/v1"))

	mockService.EXPECT().OpenSession(gomock.Any(), "").Return(testSession(models.SessionIdle), nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sessions", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockEmergencyService(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{RateLimitRPS: 0.001, RateLimitBurst: 2}
	NewHandler(mockService, logger, cfg).RegisterRoutes(router.Group("/api/v1"))

	mockService.EXPECT().OpenSession(gomock.Any(), "").Return(testSession(models.SessionIdle), nil).Times(2)
	mockService.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(testSession(models.SessionIdle), nil).Times(1)

	assert.Equal(t, http.StatusCreated, makeRequest(router, "POST", "/api/v1/sessions", nil).Code)
	assert.Equal(t, http.StatusCreated, makeRequest(router, "POST", "/api/v1/sessions", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, makeRequest(router, "POST", "/api/v1/sessions", nil).Code)

	// Чтение сессии не ограничивается
	assert.Equal(t, http.StatusOK, makeRequest(router, "GET", "/api/v1/sessions/"+uuid.NewString(), nil).Code)
}
