// Package geo содержит расчет расстояний по формуле гаверсинуса и
// ранжирование учреждений по удаленности от текущей точки.
package geo

import (
	"cmp"
	"math"
	"slices"

	"github.com/shenikar/emergency_alert_system/internal/models"
)

const (
	// EarthRadiusKM - радиус Земли в километрах
	EarthRadiusKM = 6371.0
	// UnknownDistance присваивается объектам без координат, чтобы они оказывались в конце списка
	UnknownDistance = 999.0
	// DefaultNearestCount - сколько ближайших объектов возвращается по умолчанию
	DefaultNearestCount = 3
	// MovementThresholdKM - минимальное смещение, которое считается перемещением (50 м)
	MovementThresholdKM = 0.05
)

// Locatable - объект, у которого могут быть координаты
type Locatable interface {
	Coordinates() (models.GeoPoint, bool)
}

// Ranked - объект вместе с расстоянием до точки отсчета
type Ranked[T Locatable] struct {
	Item     T
	Distance float64
}

// ETA возвращает оценку времени в пути до объекта
func (r Ranked[T]) ETA() string {
	return CalculateETA(r.Distance)
}

// Haversine возвращает расстояние по дуге большого круга в километрах без округления.
//
//	a = sin²(Δφ/2) + cos φ1 ⋅ cos φ2 ⋅ sin²(Δλ/2)
//	c = 2 ⋅ atan2(√a, √(1−a))
//	d = R ⋅ c
func Haversine(a, b models.GeoPoint) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKM * c
}

// Distance возвращает расстояние в километрах, округленное до одного знака
func Distance(a, b models.GeoPoint) float64 {
	return math.Round(Haversine(a, b)*10) / 10
}

// SortByDistance ранжирует объекты по возрастанию расстояния до from.
// Сортировка устойчивая: при равных расстояниях сохраняется исходный порядок.
// Объекты без координат получают UnknownDistance и не отбрасываются.
func SortByDistance[T Locatable](items []T, from models.GeoPoint) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(items))
	for _, item := range items {
		d := UnknownDistance
		if p, ok := item.Coordinates(); ok {
			d = Distance(from, p)
		}
		ranked = append(ranked, Ranked[T]{Item: item, Distance: d})
	}

	slices.SortStableFunc(ranked, func(x, y Ranked[T]) int {
		return cmp.Compare(x.Distance, y.Distance)
	})
	return ranked
}

// Nearest возвращает первые k объектов полностью отсортированного списка
func Nearest[T Locatable](items []T, from models.GeoPoint, k int) []Ranked[T] {
	ranked := SortByDistance(items, from)
	if k < 0 {
		k = 0
	}
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// HasLocationChanged сообщает, сместилась ли точка хотя бы на MovementThresholdKM
func HasLocationChanged(prev, next models.GeoPoint) bool {
	return HasMovedBeyond(prev, next, MovementThresholdKM)
}

// HasMovedBeyond - то же, что HasLocationChanged, с произвольным порогом
func HasMovedBeyond(prev, next models.GeoPoint, thresholdKM float64) bool {
	return Haversine(prev, next) >= thresholdKM
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
