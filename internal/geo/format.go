package geo

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/emergency_alert_system/internal/models"
)

// AverageSpeedKMH - средняя скорость в городе для оценки времени в пути
const AverageSpeedKMH = 40.0

// CalculateETA оценивает время в пути при средней скорости AverageSpeedKMH
func CalculateETA(km float64) string {
	minutes := int(math.Ceil(km / AverageSpeedKMH * 60))

	switch {
	case minutes < 1:
		return "Less than 1 minute"
	case minutes == 1:
		return "1 minute"
	case minutes < 60:
		return fmt.Sprintf("%d minutes", minutes)
	}

	hours, rest := minutes/60, minutes%60
	out := fmt.Sprintf("%d hour", hours)
	if hours > 1 {
		out += "s"
	}
	if rest > 0 {
		out += fmt.Sprintf(" %d min", rest)
	}
	return out
}

// FormatDistance форматирует расстояние для отображения: метры до 1 км,
// один знак после запятой до 10 км, целые километры дальше.
func FormatDistance(km float64) string {
	switch {
	case km < 1:
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	case km < 10:
		return strconv.FormatFloat(km, 'f', 1, 64) + " km"
	default:
		return fmt.Sprintf("%d km", int(math.Round(km)))
	}
}

// FormatCoordinates форматирует точку как 0.313600°N, 32.581100°E
func FormatCoordinates(p models.GeoPoint) string {
	latDir, lonDir := "N", "E"
	if p.Latitude < 0 {
		latDir = "S"
	}
	if p.Longitude < 0 {
		lonDir = "W"
	}
	return fmt.Sprintf("%.6f°%s, %.6f°%s", math.Abs(p.Latitude), latDir, math.Abs(p.Longitude), lonDir)
}

// AccuracyDescription переводит точность GPS в метрах в текстовую оценку
func AccuracyDescription(meters float64) string {
	switch {
	case meters < 10:
		return "Excellent"
	case meters < 50:
		return "Good"
	case meters < 100:
		return "Fair"
	default:
		return "Poor"
	}
}

// MapsLink строит ссылку на точку в Google Maps
func MapsLink(p models.GeoPoint, label string) string {
	link := "https://maps.google.com/?q=" + pair(p)
	if label != "" {
		link += "&label=" + strings.ReplaceAll(url.QueryEscape(label), "+", "%20")
	}
	return link
}

func DirectionsLink(from, to models.GeoPoint) string {
	return "https://maps.google.com/maps?saddr=" + pair(from) + "&daddr=" + pair(to)
}

// LocationForSMS - блок с координатами и ссылкой на карту для текста сообщения
func LocationForSMS(p models.GeoPoint) string {
	return fmt.Sprintf("Location: %.6f, %.6f\nMap: %s", p.Latitude, p.Longitude, MapsLink(p, ""))
}

func LocationStatusMessage(hasPermission bool, p *models.GeoPoint) string {
	if !hasPermission {
		return "Location permission denied. Please enable location services in settings."
	}
	if p == nil {
		return "Getting your location..."
	}
	return "Location acquired successfully"
}

func pair(p models.GeoPoint) string {
	return strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(p.Longitude, 'f', -1, 64)
}
