package models

import (
	"time"

	"github.com/google/uuid"
)

type SessionState string

const (
	SessionIdle             SessionState = "idle"
	SessionTypeSelected     SessionState = "type_selected"
	SessionCountdownPending SessionState = "countdown_pending"
	SessionActive           SessionState = "active"
	SessionCancelled        SessionState = "cancelled"
	SessionCompleted        SessionState = "completed"
)

// Terminal сообщает, что из состояния больше нет переходов
func (s SessionState) Terminal() bool {
	return s == SessionCancelled || s == SessionCompleted
}

// Session - снимок состояния экстренной сессии пользователя
type Session struct {
	ID               uuid.UUID           `json:"id"`
	State            SessionState        `json:"state"`
	Platform         Platform            `json:"platform"`
	EmergencyType    string              `json:"emergency_type,omitempty"`
	Guidance         *TriageGuidance     `json:"guidance,omitempty"`
	Severity         Severity            `json:"severity,omitempty"`
	ResponseTime     string              `json:"response_time,omitempty"`
	Countdown        int                 `json:"countdown"`
	Position         *GeoPoint           `json:"position,omitempty"`
	LocationStatus   string              `json:"location_status"`
	LiveTracking     bool                `json:"live_tracking"`
	UpdateCount      int                 `json:"update_count"`
	NearestHospitals []RankedFacility    `json:"nearest_hospitals,omitempty"`
	NearestPolice    []RankedFacility    `json:"nearest_police,omitempty"`
	Emergency        *Emergency          `json:"emergency,omitempty"`
	LastDispatch     *NotificationResult `json:"last_dispatch,omitempty"`
	Progress         *DispatchProgress   `json:"progress,omitempty"`
	Fallback         []FallbackAction    `json:"fallback,omitempty"`
	LastError        string              `json:"last_error,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// DispatchProgress - ход текущей рассылки: получатель current из total
type DispatchProgress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}
