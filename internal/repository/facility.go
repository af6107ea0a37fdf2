package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patrickmn/go-cache"

	"github.com/shenikar/emergency_alert_system/internal/models"
	"github.com/shenikar/emergency_alert_system/internal/service"
)

// facilityCacheTTL - справочник меняется редко, списки держим в памяти
const facilityCacheTTL = 5 * time.Minute

const (
	hospitalsKey = "facilities:hospitals"
	stationsKey  = "facilities:police_stations"
	contactsKey  = "facilities:contacts"
)

type FacilityRepository struct {
	db    *pgxpool.Pool
	cache *cache.Cache
}

func NewFacilityRepository(db *pgxpool.Pool) service.FacilityRepository {
	return &FacilityRepository{
		db:    db,
		cache: cache.New(facilityCacheTTL, 2*facilityCacheTTL),
	}
}

// Hospitals возвращает все больницы справочника
func (r *FacilityRepository) Hospitals(ctx context.Context) ([]models.Hospital, error) {
	if cached, ok := cachedList[models.Hospital](r.cache, hospitalsKey); ok {
		return cached, nil
	}

	query := `
		SELECT id, name, area, address, phone, er_status, beds, available_beds, departments, latitude, longitude
		FROM hospitals
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	defer rows.Close()

	hospitals := make([]models.Hospital, 0)
	for rows.Next() {
		var (
			h        models.Hospital
			lat, lon *float64
		)
		err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.Area,
			&h.Address,
			&h.Phone,
			&h.ERStatus,
			&h.Beds,
			&h.AvailableBeds,
			&h.Departments,
			&lat,
			&lon,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		h.Location = toPoint(lat, lon)
		hospitals = append(hospitals, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}

	return storeList(r.cache, hospitalsKey, hospitals), nil
}

// PoliceStations возвращает все полицейские участки справочника
func (r *FacilityRepository) PoliceStations(ctx context.Context) ([]models.PoliceStation, error) {
	if cached, ok := cachedList[models.PoliceStation](r.cache, stationsKey); ok {
		return cached, nil
	}

	query := `
		SELECT id, station_name, division, district, phone_number, emergency_number, type, latitude, longitude
		FROM police_stations
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list police stations: %w", err)
	}
	defer rows.Close()

	stations := make([]models.PoliceStation, 0)
	for rows.Next() {
		var (
			s        models.PoliceStation
			lat, lon *float64
		)
		err := rows.Scan(
			&s.ID,
			&s.StationName,
			&s.Division,
			&s.District,
			&s.PhoneNumber,
			&s.EmergencyNumber,
			&s.Type,
			&lat,
			&lon,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan police station row: %w", err)
		}
		s.Location = toPoint(lat, lon)
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}

	return storeList(r.cache, stationsKey, stations), nil
}

// EmergencyContacts возвращает горячие линии по возрастанию приоритета
func (r *FacilityRepository) EmergencyContacts(ctx context.Context) ([]models.PoliceEmergencyContact, error) {
	if cached, ok := cachedList[models.PoliceEmergencyContact](r.cache, contactsKey); ok {
		return cached, nil
	}

	query := `
		SELECT id, contact_name, phone_number, description, category, priority
		FROM emergency_contacts
		ORDER BY priority, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}

	contacts, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.PoliceEmergencyContact])
	if err != nil {
		return nil, fmt.Errorf("failed to scan emergency contacts: %w", err)
	}

	return storeList(r.cache, contactsKey, contacts), nil
}

// cachedList возвращает копию списка из кэша
func cachedList[T any](c *cache.Cache, key string) ([]T, bool) {
	v, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	items, ok := v.([]T)
	if !ok {
		return nil, false
	}
	return slices.Clone(items), true
}

// storeList кладет список в кэш и возвращает вызывающему его копию
func storeList[T any](c *cache.Cache, key string, items []T) []T {
	c.SetDefault(key, items)
	return slices.Clone(items)
}

func toPoint(lat, lon *float64) *models.GeoPoint {
	if lat == nil || lon == nil {
		return nil
	}
	return &models.GeoPoint{Latitude: *lat, Longitude: *lon}
}
