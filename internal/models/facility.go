package models

type FacilityKind string

const (
	FacilityHospital FacilityKind = "hospital"
	FacilityPolice   FacilityKind = "police"
)

type ERStatus string

const (
	ERAvailable ERStatus = "Available"
	ERBusy      ERStatus = "Busy"
	ERFull      ERStatus = "Full"
)

// Hospital - больница из справочника учреждений
type Hospital struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Area          string    `json:"location"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	ERStatus      ERStatus  `json:"er_status"`
	Beds          int       `json:"beds"`
	AvailableBeds int       `json:"available_beds"`
	Departments   []string  `json:"departments,omitempty"`
	Location      *GeoPoint `json:"coordinates,omitempty"`
}

func (h Hospital) Coordinates() (GeoPoint, bool) {
	if h.Location == nil {
		return GeoPoint{}, false
	}
	return *h.Location, true
}

type StationType string

const (
	StationMain       StationType = "Main Station"
	StationPost       StationType = "Post"
	StationDivisionHQ StationType = "Division HQ"
)

// PoliceStation - полицейский участок из справочника учреждений
type PoliceStation struct {
	ID              string      `json:"id"`
	StationName     string      `json:"station_name"`
	Division        string      `json:"division"`
	District        string      `json:"district"`
	PhoneNumber     string      `json:"phone_number"`
	EmergencyNumber string      `json:"emergency_number,omitempty"`
	Type            StationType `json:"type"`
	Location        *GeoPoint   `json:"coordinates,omitempty"`
}

func (s PoliceStation) Coordinates() (GeoPoint, bool) {
	if s.Location == nil {
		return GeoPoint{}, false
	}
	return *s.Location, true
}

// RankedFacility - учреждение с рассчитанным расстоянием до текущей точки.
// Создается на каждый запрос ранжирования и нигде не хранится.
type RankedFacility struct {
	ID           string       `json:"id"`
	Kind         FacilityKind `json:"kind"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Location     *GeoPoint    `json:"coordinates,omitempty"`
	Distance     float64      `json:"distance"`
	DistanceText string       `json:"distance_text"`
	ETA          string       `json:"eta"`
	Directions   string       `json:"directions,omitempty"`
}

type ContactCategory string

const (
	ContactGeneral     ContactCategory = "General"
	ContactSpecialized ContactCategory = "Specialized"
	ContactFireRescue  ContactCategory = "Fire/Rescue"
)

// PoliceEmergencyContact - горячая линия экстренных служб
type PoliceEmergencyContact struct {
	ID          string          `json:"id"`
	ContactName string          `json:"contact_name"`
	PhoneNumber string          `json:"phone_number"`
	Description string          `json:"description"`
	Category    ContactCategory `json:"category"`
	Priority    int             `json:"priority"`
}
