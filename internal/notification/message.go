package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/emergency_alert_system/internal/geo"
	"github.com/shenikar/emergency_alert_system/internal/models"
)

// AlertDetails - данные для текста экстренного оповещения
type AlertDetails struct {
	PatientName    string
	ContactNumber  string
	EmergencyType  string
	Location       models.GeoPoint
	Allergies      []string
	MedicalHistory []string
}

// FormatEmergencyAlert собирает текст первичного оповещения
func FormatEmergencyAlert(d AlertDetails) string {
	var b strings.Builder
	b.WriteString("🚨 EMERGENCY ALERT 🚨\n\n")
	fmt.Fprintf(&b, "Type: %s\n", d.EmergencyType)

	if d.PatientName != "" {
		fmt.Fprintf(&b, "Patient: %s\n", d.PatientName)
	}
	if d.ContactNumber != "" {
		fmt.Fprintf(&b, "Contact: %s\n", d.ContactNumber)
	}
	if len(d.Allergies) > 0 {
		fmt.Fprintf(&b, "Allergies: %s\n", strings.Join(d.Allergies, ", "))
	}
	if len(d.MedicalHistory) > 0 {
		fmt.Fprintf(&b, "Medical History: %s\n", strings.Join(d.MedicalHistory, ", "))
	}

	b.WriteString("\nLocation:\n")
	fmt.Fprintf(&b, "%.6f, %.6f\n", d.Location.Latitude, d.Location.Longitude)
	b.WriteString(geo.MapsLink(d.Location, "") + "\n\n")
	b.WriteString("Sent via Emergency Hospital App")

	return b.String()
}

// FormatLocationUpdate собирает текст обновления местоположения при отслеживании
func FormatLocationUpdate(p models.GeoPoint, emergencyID string, update int, at time.Time) string {
	var b strings.Builder
	b.WriteString("📍 LOCATION UPDATE\n\n")
	fmt.Fprintf(&b, "Emergency ID: %s\n", emergencyID)
	fmt.Fprintf(&b, "Update #%d\n", update)
	fmt.Fprintf(&b, "Time: %s\n\n", at.Format("15:04:05"))
	b.WriteString("Current Location:\n")
	fmt.Fprintf(&b, "%.6f, %.6f\n", p.Latitude, p.Longitude)
	b.WriteString(geo.MapsLink(p, ""))

	return b.String()
}

// FormatShareLocation собирает текст для личных контактов пользователя
func FormatShareLocation(emergencyType string, p models.GeoPoint) string {
	var b strings.Builder
	b.WriteString("🆘 I need help")
	if emergencyType != "" {
		fmt.Fprintf(&b, " (%s)", emergencyType)
	}
	b.WriteString("\n\n")
	b.WriteString(geo.LocationForSMS(p))
	return b.String()
}
