// Package postgres создает пул соединений к справочнику учреждений
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/emergency_alert_system/internal/config"
)

const (
	pingTimeout     = 5 * time.Second
	maxConnIdleTime = 5 * time.Minute
)

// NewPostgresDB создает пул соединений. Сервис только читает справочник,
// поэтому сессии открываются в режиме read only.
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}

	if appCfg.DatabaseMaxConns > 0 {
		cfgPool.MaxConns = int32(appCfg.DatabaseMaxConns)
	}
	cfgPool.MaxConnIdleTime = maxConnIdleTime
	cfgPool.ConnConfig.RuntimeParams["application_name"] = "emergency_alert_system"
	cfgPool.ConnConfig.RuntimeParams["default_transaction_read_only"] = "on"

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}
