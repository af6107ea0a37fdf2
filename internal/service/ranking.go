package service

import (
	"github.com/shenikar/emergency_alert_system/internal/geo"
	"github.com/shenikar/emergency_alert_system/internal/models"
)

func rankHospitals(hospitals []models.Hospital, from models.GeoPoint, k int) []models.RankedFacility {
	ranked := geo.Nearest(hospitals, from, k)
	out := make([]models.RankedFacility, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, rankedFacility(r, from, models.RankedFacility{
			ID:    r.Item.ID,
			Kind:  models.FacilityHospital,
			Name:  r.Item.Name,
			Phone: r.Item.Phone,
		}))
	}
	return out
}

func rankPoliceStations(stations []models.PoliceStation, from models.GeoPoint, k int) []models.RankedFacility {
	ranked := geo.Nearest(stations, from, k)
	out := make([]models.RankedFacility, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, rankedFacility(r, from, models.RankedFacility{
			ID:    r.Item.ID,
			Kind:  models.FacilityPolice,
			Name:  r.Item.StationName,
			Phone: r.Item.PhoneNumber,
		}))
	}
	return out
}

// rankedFacility дополняет f расстоянием, ETA и маршрутом от точки from
func rankedFacility[T geo.Locatable](r geo.Ranked[T], from models.GeoPoint, f models.RankedFacility) models.RankedFacility {
	f.Distance = r.Distance
	f.DistanceText = geo.FormatDistance(r.Distance)
	f.ETA = r.ETA()
	if p, ok := r.Item.Coordinates(); ok {
		f.Location = &p
		f.Directions = geo.DirectionsLink(from, p)
	}
	return f
}

// recipients возвращает получателей для первых n учреждений списка
func recipients(facilities []models.RankedFacility, n int) []models.Recipient {
	n = max(0, min(n, len(facilities)))
	out := make([]models.Recipient, 0, n)
	for _, f := range facilities[:n] {
		out = append(out, models.Recipient{Name: f.Name, Phone: f.Phone, Category: f.Kind})
	}
	return out
}
