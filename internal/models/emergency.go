package models

import (
	"time"

	"github.com/google/uuid"
)

type EmergencyStatus string

const (
	EmergencyPending   EmergencyStatus = "Pending"
	EmergencyResponded EmergencyStatus = "Responded"
	EmergencyCancelled EmergencyStatus = "Cancelled"
)

// Emergency - запись о подтвержденном происшествии. Живет только в памяти процесса.
type Emergency struct {
	ID                uuid.UUID       `json:"id"`
	PatientName       string          `json:"patient_name,omitempty"`
	ContactNumber     string          `json:"contact_number"`
	EmergencyType     string          `json:"emergency_type"`
	Location          GeoPoint        `json:"location"`
	Geohash           string          `json:"geohash"`
	Timestamp         time.Time       `json:"timestamp"`
	Status            EmergencyStatus `json:"status"`
	NotifiedHospitals []string        `json:"notified_hospitals"`
	NotifiedPolice    []string        `json:"notified_police"`
	Allergies         []string        `json:"allergies,omitempty"`
	MedicalHistory    []string        `json:"medical_history,omitempty"`
}

// PatientDetails - данные, которые пользователь вводит перед подтверждением
type PatientDetails struct {
	Name           string   `json:"name,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Allergies      []string `json:"allergies,omitempty"`
	MedicalHistory []string `json:"medical_history,omitempty"`
}
