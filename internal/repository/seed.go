package repository

import "github.com/shenikar/emergency_alert_system/internal/models"

// Встроенный справочник учреждений Кампалы. Используется, когда DATABASE_URL не задан.

func point(lat, lon float64) *models.GeoPoint {
	return &models.GeoPoint{Latitude: lat, Longitude: lon}
}

func seedHospitals() []models.Hospital {
	return []models.Hospital{
		{
			ID: "h-001", Name: "Mulago National Referral Hospital", Area: "Mulago",
			Address: "Upper Mulago Hill Rd, Kampala", Phone: "+256414541884",
			ERStatus: models.ERBusy, Beds: 1500, AvailableBeds: 120,
			Departments: []string{"Emergency", "Surgery", "Internal Medicine", "Pediatrics", "Obstetrics"},
			Location: point(0.3378, 32.576),
		},
		{
			ID: "h-002", Name: "Nsambya Hospital", Area: "Nsambya",
			Address: "Ggaba Rd, Kampala", Phone: "0414267012",
			ERStatus: models.ERAvailable, Beds: 361, AvailableBeds: 48,
			Departments: []string{"Emergency", "Surgery", "Maternity", "Pediatrics"},
			Location: point(0.3, 32.589),
		},
		{
			ID: "h-003", Name: "Mengo Hospital", Area: "Mengo",
			Address: "Albert Cook Rd, Kampala", Phone: "0414270222",
			ERStatus: models.ERAvailable, Beds: 300, AvailableBeds: 35,
			Departments: []string{"Emergency", "Surgery", "Ophthalmology"},
			Location: point(0.305, 32.558),
		},
		{
			ID: "h-004", Name: "Rubaga Hospital", Area: "Lubaga",
			Address: "Lubaga Hill, Kampala", Phone: "0414270065",
			ERStatus: models.ERBusy, Beds: 270, AvailableBeds: 12,
			Departments: []string{"Emergency", "Internal Medicine", "Maternity"},
			Location: point(0.303, 32.553),
		},
		{
			ID: "h-005", Name: "Kibuli Muslim Hospital", Area: "Kibuli",
			Address: "Kibuli Hill, Kampala", Phone: "0414250240",
			ERStatus: models.ERAvailable, Beds: 200, AvailableBeds: 30,
			Departments: []string{"Emergency", "Surgery", "Dental"},
			Location: point(0.306, 32.595),
		},
		{
			ID: "h-006", Name: "International Hospital Kampala", Area: "Namuwongo",
			Address: "St. Barnabas Rd, Kisugu, Kampala", Phone: "0312200400",
			ERStatus: models.ERAvailable, Beds: 100, AvailableBeds: 22,
			Departments: []string{"Emergency", "Cardiology", "Intensive Care", "Orthopedics"},
			Location: point(0.3127, 32.601),
		},
		{
			ID: "h-007", Name: "Case Hospital", Area: "Central Kampala",
			Address: "Buganda Rd, Kampala", Phone: "0312250362",
			ERStatus: models.ERFull, Beds: 80, AvailableBeds: 0,
			Departments: []string{"Emergency", "Surgery", "Radiology"},
			Location: point(0.32, 32.577),
		},
		{
			ID: "h-008", Name: "Naguru China-Uganda Friendship Hospital", Area: "Naguru",
			Address: "Old Port Bell Rd, Kampala", Phone: "0414286140",
			ERStatus: models.ERAvailable, Beds: 100, AvailableBeds: 26,
			Departments: []string{"Emergency", "Maternity", "Pediatrics"},
			Location: point(0.338, 32.616),
		},
		{
			ID: "h-009", Name: "Kawempe National Referral Hospital", Area: "Kawempe",
			Address: "Kawempe, Kampala", Phone: "0414660150",
			ERStatus: models.ERBusy, Beds: 170, AvailableBeds: 9,
			Departments: []string{"Maternity", "Neonatal Care"},
			Location: nil,
		},
	}
}

func seedPoliceStations() []models.PoliceStation {
	return []models.PoliceStation{
		{
			ID: "p-001", StationName: "Kampala Central Police Station", Division: "Central", District: "Kampala",
			PhoneNumber: "+256414233814", EmergencyNumber: "999", Type: models.StationMain,
			Location: point(0.3136, 32.5811),
		},
		{
			ID: "p-002", StationName: "Kira Road Police Station", Division: "Kawempe", District: "Kampala",
			PhoneNumber: "0414532101", EmergencyNumber: "999", Type: models.StationDivisionHQ,
			Location: point(0.3346, 32.5915),
		},
		{
			ID: "p-003", StationName: "Jinja Road Police Station", Division: "Nakawa", District: "Kampala",
			PhoneNumber: "0414258931", EmergencyNumber: "999", Type: models.StationDivisionHQ,
			Location: point(0.3165, 32.59),
		},
		{
			ID: "p-004", StationName: "Old Kampala Police Station", Division: "Central", District: "Kampala",
			PhoneNumber: "0414254530", EmergencyNumber: "999", Type: models.StationDivisionHQ,
			Location: point(0.315, 32.568),
		},
		{
			ID: "p-005", StationName: "Katwe Police Station", Division: "Makindye", District: "Kampala",
			PhoneNumber: "0414267542", EmergencyNumber: "999", Type: models.StationDivisionHQ,
			Location: point(0.296, 32.577),
		},
		{
			ID: "p-006", StationName: "Wandegeya Police Post", Division: "Kawempe", District: "Kampala",
			PhoneNumber: "0414531120", EmergencyNumber: "", Type: models.StationPost,
			Location: point(0.33, 32.572),
		},
		{
			ID: "p-007", StationName: "Kabalagala Police Post", Division: "Makindye", District: "Kampala",
			PhoneNumber: "0414510299", EmergencyNumber: "", Type: models.StationPost,
			Location: nil,
		},
	}
}

func seedEmergencyContacts() []models.PoliceEmergencyContact {
	return []models.PoliceEmergencyContact{
		{ID: "c-001", ContactName: "Police Emergency", PhoneNumber: "999", Description: "Uganda Police Force emergency line", Category: models.ContactGeneral, Priority: 1},
		{ID: "c-002", ContactName: "General Emergency", PhoneNumber: "112", Description: "National emergency number, all services", Category: models.ContactGeneral, Priority: 2},
		{ID: "c-003", ContactName: "Fire and Rescue Services", PhoneNumber: "0414256700", Description: "Fire brigade and rescue operations", Category: models.ContactFireRescue, Priority: 3},
		{ID: "c-004", ContactName: "Child and Family Protection", PhoneNumber: "0800199195", Description: "Toll-free line for child abuse and domestic violence", Category: models.ContactSpecialized, Priority: 4},
		{ID: "c-005", ContactName: "Traffic Police", PhoneNumber: "0414230050", Description: "Road accidents and traffic incidents", Category: models.ContactSpecialized, Priority: 5},
	}
}
