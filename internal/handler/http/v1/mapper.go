package v1

import (
	"github.com/shenikar/emergency_alert_system/internal/geo"
	"github.com/shenikar/emergency_alert_system/internal/models"
	"github.com/shenikar/emergency_alert_system/internal/notification"
)

// DTOToPatientDetails преобразует DTO подтверждения в данные пострадавшего
func DTOToPatientDetails(dto ConfirmRequest) models.PatientDetails {
	return models.PatientDetails{
		Name:           dto.PatientName,
		Phone:          dto.ContactNumber,
		Allergies:      dto.Allergies,
		MedicalHistory: dto.MedicalHistory,
	}
}

// ModelToSessionResponse преобразует снимок сессии в DTO для ответа
func ModelToSessionResponse(s models.Session) SessionResponse {
	resp := SessionResponse{
		ID:               s.ID,
		State:            string(s.State),
		Platform:         string(s.Platform),
		EmergencyType:    s.EmergencyType,
		Severity:         string(s.Severity),
		ResponseTime:     s.ResponseTime,
		Guidance:         s.Guidance,
		Countdown:        s.Countdown,
		LocationStatus:   s.LocationStatus,
		LiveTracking:     s.LiveTracking,
		UpdateCount:      s.UpdateCount,
		NearestHospitals: nonNil(s.NearestHospitals),
		NearestPolice:    nonNil(s.NearestPolice),
		LastDispatch:     s.LastDispatch,
		Progress:         s.Progress,
		Fallback:         s.Fallback,
		LastError:        s.LastError,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if s.Position != nil {
		lat, lon := s.Position.Latitude, s.Position.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lon
		resp.Coordinates = geo.FormatCoordinates(*s.Position)
		resp.MapsURI = notification.MapsURI(s.Platform, s.Position, "My location")
	}
	if s.Emergency != nil {
		e := ModelToEmergencyResponse(*s.Emergency)
		resp.Emergency = &e
	}
	return resp
}

// ModelToEmergencyResponse преобразует запись о происшествии в DTO для ответа
func ModelToEmergencyResponse(e models.Emergency) EmergencyResponse {
	return EmergencyResponse{
		ID:                e.ID,
		PatientName:       e.PatientName,
		ContactNumber:     e.ContactNumber,
		EmergencyType:     e.EmergencyType,
		Latitude:          e.Location.Latitude,
		Longitude:         e.Location.Longitude,
		Geohash:           e.Geohash,
		Timestamp:         e.Timestamp,
		Status:            string(e.Status),
		NotifiedHospitals: nonNil(e.NotifiedHospitals),
		NotifiedPolice:    nonNil(e.NotifiedPolice),
		Allergies:         e.Allergies,
		MedicalHistory:    e.MedicalHistory,
	}
}

// ModelsToEmergencyResponses преобразует слайс записей в слайс DTO
func ModelsToEmergencyResponses(records []models.Emergency) []EmergencyResponse {
	responses := make([]EmergencyResponse, len(records))
	for i, e := range records {
		responses[i] = ModelToEmergencyResponse(e)
	}
	return responses
}

func ModelsToQueuedMessageResponses(items []models.QueuedMessage) []QueuedMessageResponse {
	responses := make([]QueuedMessageResponse, len(items))
	for i, m := range items {
		responses[i] = QueuedMessageResponse{
			ID:          m.ID,
			PhoneNumber: m.PhoneNumber,
			Message:     m.Message,
			Platform:    string(m.Platform),
			Timestamp:   m.Timestamp,
			RetryCount:  m.RetryCount,
			Status:      string(m.Status),
		}
	}
	return responses
}

func ModelToRetryReportResponse(r models.RetryReport) RetryReportResponse {
	return RetryReportResponse{
		Processed:  r.Processed,
		Successful: r.Successful,
		Failed:     r.Failed,
	}
}

// nonNil нужен, чтобы пустые списки сериализовались как [], а не null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func ModelToShareLocationResponse(r notification.BulkResult) ShareLocationResponse {
	return ShareLocationResponse{
		Success: r.Success,
		Sent:    nonNil(r.Sent),
		Failed:  nonNil(r.Failed),
	}
}
