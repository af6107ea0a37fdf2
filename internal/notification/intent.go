package notification

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/emergency_alert_system/internal/models"
)

// SMSURI строит ссылку на окно отправки SMS с заполненным текстом.
// iOS ожидает разделитель "&", остальные платформы "?".
func SMSURI(platform models.Platform, phone, body string) string {
	sep := "?"
	if platform == models.PlatformIOS {
		sep = "&"
	}
	return "sms:" + phone + sep + "body=" + escapeComponent(body)
}

func DialURI(phone string) string {
	return "tel:" + phone
}

// MapsURI строит ссылку на маршрут в картах устройства. Без координат
// поиск идет по названию учреждения.
func MapsURI(platform models.Platform, p *models.GeoPoint, label string) string {
	coords := "0,0"
	if p != nil {
		coords = strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(p.Longitude, 'f', -1, 64)
	}

	switch platform {
	case models.PlatformIOS:
		return "maps:" + coords + "?q=" + escapeComponent(label)
	case models.PlatformAndroid:
		return "geo:" + coords + "?q=" + escapeComponent(label)
	}

	query := coords
	if p == nil {
		query = escapeComponent(label)
	}
	return "https://www.google.com/maps/search/?api=1&query=" + query
}

// escapeComponent кодирует строку как компонент URI, пробел как %20
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
