package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Справочник учреждений в Postgres. Пустое значение - встроенный справочник.
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseMaxConns int    `env:"DB_MAX_CONNS" envDefault:"5"`

	// Redis Config. Пустой адрес - ссылки только пишутся в лог.
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Intent relay Config
	IntentQueueKey        string        `env:"INTENT_QUEUE_KEY" envDefault:"compose_intents"`
	IntentRelayURL        string        `env:"INTENT_RELAY_URL"`
	IntentRelaySecret     string        `env:"INTENT_RELAY_SECRET"`
	IntentRelayTimeout    time.Duration `env:"INTENT_RELAY_TIMEOUT" envDefault:"5s"`
	IntentRelayMaxRetries int           `env:"INTENT_RELAY_MAX_RETRIES" envDefault:"3"`
	IntentRelayBaseDelay  time.Duration `env:"INTENT_RELAY_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Ограничение частоты изменяющих запросов на IP клиента. 0 - без ограничения.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	// Emergency session Config
	DefaultPlatform        string        `env:"DEFAULT_PLATFORM" envDefault:"android"`
	CountdownSeconds       int           `env:"COUNTDOWN_SECONDS" envDefault:"5"`
	CountdownTick          time.Duration `env:"COUNTDOWN_TICK" envDefault:"1s"`
	NotificationPacing     time.Duration `env:"NOTIFICATION_PACING" envDefault:"1.5s"`
	BulkSMSPacing          time.Duration `env:"BULK_SMS_PACING" envDefault:"1s"`
	LocationResendInterval time.Duration `env:"LOCATION_RESEND_INTERVAL" envDefault:"2m"`
	MovementThresholdKM    float64       `env:"MOVEMENT_THRESHOLD_KM" envDefault:"0.05"`
	NearestCount           int           `env:"NEAREST_COUNT" envDefault:"3"`
	AlertRecipients        int           `env:"ALERT_RECIPIENTS" envDefault:"2"`
	RetrySweepSchedule     string        `env:"RETRY_SWEEP_SCHEDULE"`
	FinishedSessionTTL     time.Duration `env:"FINISHED_SESSION_TTL" envDefault:"24h"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		DatabaseMaxConns:       getEnvAsInt("DB_MAX_CONNS", 5),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		IntentQueueKey:         getEnv("INTENT_QUEUE_KEY", "compose_intents"),
		IntentRelayURL:         os.Getenv("INTENT_RELAY_URL"),
		IntentRelaySecret:      os.Getenv("INTENT_RELAY_SECRET"),
		IntentRelayTimeout:     getEnvAsDuration("INTENT_RELAY_TIMEOUT", 5*time.Second),
		IntentRelayMaxRetries:  getEnvAsInt("INTENT_RELAY_MAX_RETRIES", 3),
		IntentRelayBaseDelay:   getEnvAsDuration("INTENT_RELAY_BASE_DELAY", time.Second),
		RateLimitRPS:           getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:         getEnvAsInt("RATE_LIMIT_BURST", 10),
		DefaultPlatform:        getEnv("DEFAULT_PLATFORM", "android"),
		CountdownSeconds:       getEnvAsInt("COUNTDOWN_SECONDS", 5),
		CountdownTick:          getEnvAsDuration("COUNTDOWN_TICK", time.Second),
		NotificationPacing:     getEnvAsDuration("NOTIFICATION_PACING", 1500*time.Millisecond),
		BulkSMSPacing:          getEnvAsDuration("BULK_SMS_PACING", time.Second),
		LocationResendInterval: getEnvAsDuration("LOCATION_RESEND_INTERVAL", 2*time.Minute),
		MovementThresholdKM:    getEnvAsFloat("MOVEMENT_THRESHOLD_KM", 0.05),
		NearestCount:           getEnvAsInt("NEAREST_COUNT", 3),
		AlertRecipients:        getEnvAsInt("ALERT_RECIPIENTS", 2),
		RetrySweepSchedule:     os.Getenv("RETRY_SWEEP_SCHEDULE"),
		FinishedSessionTTL:     getEnvAsDuration("FINISHED_SESSION_TTL", 24*time.Hour),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var errs []error

	switch c.DefaultPlatform {
	case "ios", "android", "web":
	default:
		errs = append(errs, fmt.Errorf("DEFAULT_PLATFORM must be one of ios, android, web, got %q", c.DefaultPlatform))
	}
	if c.CountdownSeconds < 0 {
		errs = append(errs, errors.New("COUNTDOWN_SECONDS must not be negative"))
	}
	if c.CountdownTick <= 0 {
		errs = append(errs, errors.New("COUNTDOWN_TICK must be positive"))
	}
	if c.LocationResendInterval <= 0 {
		errs = append(errs, errors.New("LOCATION_RESEND_INTERVAL must be positive"))
	}
	if c.NearestCount < 1 {
		errs = append(errs, errors.New("NEAREST_COUNT must be at least 1"))
	}
	if c.AlertRecipients < 1 || c.AlertRecipients > c.NearestCount {
		errs = append(errs, errors.New("ALERT_RECIPIENTS must be between 1 and NEAREST_COUNT"))
	}
	if c.MovementThresholdKM < 0 {
		errs = append(errs, errors.New("MOVEMENT_THRESHOLD_KM must not be negative"))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must not be negative"))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled"))
	}
	if c.IntentRelayMaxRetries < 1 {
		errs = append(errs, errors.New("INTENT_RELAY_MAX_RETRIES must be at least 1"))
	}

	return errors.Join(errs...)
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
