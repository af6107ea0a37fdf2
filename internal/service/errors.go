package service

import (
	"errors"
	"fmt"

	"github.com/shenikar/emergency_alert_system/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidTransition - операция недопустима в текущем состоянии сессии
	ErrInvalidTransition = errors.New("invalid session transition")
	// ErrLocationUnavailable - нет разрешения на геолокацию или не удалось получить координаты
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrInvalidCategory     = errors.New("unknown emergency category")
	ErrInvalidPlatform     = errors.New("unknown platform")
	ErrInvalidFacilityKind = errors.New("unknown facility kind")
)

func transitionError(from, to models.SessionState) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
