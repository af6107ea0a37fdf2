package repository

import (
	"context"
	"slices"
	"sort"

	"github.com/shenikar/emergency_alert_system/internal/models"
	"github.com/shenikar/emergency_alert_system/internal/service"
)

// MemoryFacilityRepository - справочник учреждений в памяти процесса
type MemoryFacilityRepository struct {
	hospitals []models.Hospital
	stations  []models.PoliceStation
	contacts  []models.PoliceEmergencyContact
}

// NewMemoryFacilityRepository создает справочник со встроенными данными
func NewMemoryFacilityRepository() service.FacilityRepository {
	return NewMemoryFacilityRepositoryWith(seedHospitals(), seedPoliceStations(), seedEmergencyContacts())
}

// NewMemoryFacilityRepositoryWith создает справочник с заданными данными
func NewMemoryFacilityRepositoryWith(hospitals []models.Hospital, stations []models.PoliceStation, contacts []models.PoliceEmergencyContact) *MemoryFacilityRepository {
	return &MemoryFacilityRepository{
		hospitals: hospitals,
		stations:  stations,
		contacts:  contacts,
	}
}

func (r *MemoryFacilityRepository) Hospitals(_ context.Context) ([]models.Hospital, error) {
	out := slices.Clone(r.hospitals)
	for i := range out {
		out[i].Departments = slices.Clone(out[i].Departments)
	}
	return out, nil
}

func (r *MemoryFacilityRepository) PoliceStations(_ context.Context) ([]models.PoliceStation, error) {
	return slices.Clone(r.stations), nil
}

// EmergencyContacts возвращает горячие линии по возрастанию приоритета
func (r *MemoryFacilityRepository) EmergencyContacts(_ context.Context) ([]models.PoliceEmergencyContact, error) {
	out := slices.Clone(r.contacts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out, nil
}
