package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/emergency_alert_system/internal/models"
)

// OpenSessionRequest DTO для создания экстренной сессии
// @Description DTO для создания экстренной сессии
type OpenSessionRequest struct {
	Platform string `json:"platform,omitempty" validate:"omitempty,oneof=ios android web"`
}

// SelectTypeRequest DTO для выбора категории происшествия
// @Description DTO для выбора категории происшествия
type SelectTypeRequest struct {
	Category string `json:"category" validate:"required,max=64"`
}

// ConfirmRequest DTO с данными пострадавшего, все поля необязательны
// @Description DTO с данными пострадавшего
type ConfirmRequest struct {
	PatientName    string   `json:"patient_name,omitempty" validate:"max=255"`
	ContactNumber  string   `json:"contact_number,omitempty" validate:"max=32"`
	Allergies      []string `json:"allergies,omitempty" validate:"max=20,dive,max=100"`
	MedicalHistory []string `json:"medical_history,omitempty" validate:"max=20,dive,max=100"`
}

// LocationRequest DTO с координатами устройства или отказом в доступе к геолокации
// @Description DTO с координатами устройства
type LocationRequest struct {
	Latitude         *float64 `json:"latitude,omitempty" validate:"required_without=PermissionDenied,omitempty,latitude"`
	Longitude        *float64 `json:"longitude,omitempty" validate:"required_without=PermissionDenied,omitempty,longitude"`
	PermissionDenied bool     `json:"permission_denied,omitempty"`
	Accuracy         *float64 `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
}

// TrackingRequest DTO для включения и выключения отслеживания
// @Description DTO для включения и выключения отслеживания
type TrackingRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// ShareLocationRequest DTO со списком личных номеров для отправки местоположения
// @Description DTO со списком номеров для отправки местоположения
type ShareLocationRequest struct {
	Phones []string `json:"phones" validate:"required,min=1,max=5,dive,required,max=32"`
}

// NearestQuery параметры запроса ближайших учреждений
type NearestQuery struct {
	Kind      string   `form:"kind" validate:"required,oneof=hospital police"`
	Latitude  *float64 `form:"lat" validate:"required,latitude"`
	Longitude *float64 `form:"lon" validate:"required,longitude"`
	Count     int      `form:"count" validate:"omitempty,min=1,max=50"`
}

// TriageQuery параметры запроса инструкции первой помощи
type TriageQuery struct {
	Category string `form:"category" validate:"required,max=64"`
}

// SessionResponse DTO для ответа с состоянием сессии
// @Description DTO для ответа с состоянием сессии
type SessionResponse struct {
	ID               uuid.UUID                  `json:"id"`
	State            string                     `json:"state"`
	Platform         string                     `json:"platform"`
	EmergencyType    string                     `json:"emergency_type,omitempty"`
	Severity         string                     `json:"severity,omitempty"`
	ResponseTime     string                     `json:"response_time,omitempty"`
	Guidance         *models.TriageGuidance     `json:"guidance,omitempty"`
	Countdown        int                        `json:"countdown"`
	Latitude         *float64                   `json:"latitude,omitempty"`
	Longitude        *float64                   `json:"longitude,omitempty"`
	Coordinates      string                     `json:"coordinates,omitempty"`
	MapsURI          string                     `json:"maps_uri,omitempty"`
	LocationStatus   string                     `json:"location_status"`
	LiveTracking     bool                       `json:"live_tracking"`
	UpdateCount      int                        `json:"update_count"`
	NearestHospitals []models.RankedFacility    `json:"nearest_hospitals"`
	NearestPolice    []models.RankedFacility    `json:"nearest_police"`
	Emergency        *EmergencyResponse         `json:"emergency,omitempty"`
	LastDispatch     *models.NotificationResult `json:"last_dispatch,omitempty"`
	Progress         *models.DispatchProgress   `json:"progress,omitempty"`
	Fallback         []models.FallbackAction    `json:"fallback,omitempty"`
	LastError        string                     `json:"last_error,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// EmergencyResponse DTO для ответа с записью о происшествии
// @Description DTO для ответа с записью о происшествии
type EmergencyResponse struct {
	ID                uuid.UUID `json:"id"`
	PatientName       string    `json:"patient_name,omitempty"`
	ContactNumber     string    `json:"contact_number"`
	EmergencyType     string    `json:"emergency_type"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Geohash           string    `json:"geohash"`
	Timestamp         time.Time `json:"timestamp"`
	Status            string    `json:"status"`
	NotifiedHospitals []string  `json:"notified_hospitals"`
	NotifiedPolice    []string  `json:"notified_police"`
	Allergies         []string  `json:"allergies,omitempty"`
	MedicalHistory    []string  `json:"medical_history,omitempty"`
}

// QueuedMessageResponse DTO для ответа с сообщением из очереди повторов
// @Description DTO для ответа с сообщением из очереди повторов
type QueuedMessageResponse struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Message     string    `json:"message"`
	Platform    string    `json:"platform"`
	Timestamp   time.Time `json:"timestamp"`
	RetryCount  int       `json:"retry_count"`
	Status      string    `json:"status"`
}

// RetryReportResponse DTO для ответа с итогом повтора
// @Description DTO для ответа с итогом повтора
type RetryReportResponse struct {
	Processed  int `json:"processed"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// ShareLocationResponse DTO для ответа с итогом отправки местоположения
// @Description DTO для ответа с итогом отправки местоположения
type ShareLocationResponse struct {
	Success bool     `json:"success"`
	Sent    []string `json:"sent"`
	Failed  []string `json:"failed"`
}
