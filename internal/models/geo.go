package models

import (
	"errors"
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision - точность геохеша для записей о происшествиях (~150 м)
const GeohashPrecision = 7

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// GeoPoint - точка на поверхности Земли
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate проверяет, что координаты конечны и лежат в допустимых диапазонах
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) ||
		math.IsInf(p.Latitude, 0) || math.IsInf(p.Longitude, 0) {
		return ErrInvalidCoordinates
	}
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

// Geohash возвращает ячейку геохеша для точки
func (p GeoPoint) Geohash() string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, GeohashPrecision)
}
