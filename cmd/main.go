package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/emergency_alert_system/internal/config"
	v1 "github.com/shenikar/emergency_alert_system/internal/handler/http/v1"
	"github.com/shenikar/emergency_alert_system/internal/intent"
	"github.com/shenikar/emergency_alert_system/internal/notification"
	"github.com/shenikar/emergency_alert_system/internal/repository"
	"github.com/shenikar/emergency_alert_system/internal/service"
	"github.com/shenikar/emergency_alert_system/pkg/logger"
	"github.com/shenikar/emergency_alert_system/pkg/metrics"
	"github.com/shenikar/emergency_alert_system/pkg/postgres"
	redisclient "github.com/shenikar/emergency_alert_system/pkg/redis"

	_ "github.com/shenikar/emergency_alert_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Emergency Alert System API
// @version 1.0
// @description Emergency session, facility ranking and SMS alert dispatch API.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Справочник учреждений: Postgres, если задан DATABASE_URL, иначе встроенный
	var facilities service.FacilityRepository
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		var dbpool *pgxpool.Pool
		dbpool, err = postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		facilities = repository.NewFacilityRepository(dbpool)
	} else {
		log.Info("DATABASE_URL is not set, using built-in facility directory")
		facilities = repository.NewMemoryFacilityRepository()
	}

	// Передача ссылок на устройство: очередь Redis, если задан REDIS_ADDR, иначе только лог
	var composer notification.Composer
	var relayDone <-chan struct{}
	if cfg.RedisAddr != "" {
		var redisClient *redis.Client
		redisClient, err = redisclient.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		composer = intent.NewRedisComposer(redisClient, cfg.IntentQueueKey)

		// Инициализация и запуск воркера доставки ссылок
		if cfg.IntentRelayURL != "" {
			relayDone = intent.NewRelayWorker(redisClient, log, cfg).Start(ctx)
		}
	} else {
		log.Info("REDIS_ADDR is not set, compose intents are only logged")
		composer = intent.NewLogComposer(log)
	}

	// Инициализация рассыльщика
	dispatcher := notification.NewDispatcher(composer, notification.NewRetryQueue(), notification.Options{
		Pacing:     cfg.NotificationPacing,
		BulkPacing: cfg.BulkSMSPacing,
	}, log)

	// Инициализация сервисов
	emergencyService := service.NewEmergencyService(ctx, facilities, dispatcher, log, cfg)

	// Периодический повтор очереди
	var sweeper *service.RetrySweeper
	if cfg.RetrySweepSchedule != "" {
		sweeper, err = service.NewRetrySweeper(ctx, emergencyService, cfg.RetrySweepSchedule, log)
		if err != nil {
			log.Fatalf("Failed to schedule retry sweep: %v", err)
		}
		sweeper.Start()
		log.Infof("Retry sweep scheduled: %s", cfg.RetrySweepSchedule)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(emergencyService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", metrics.Handler())

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithField("default_platform", cfg.DefaultPlatform).Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	if sweeper != nil {
		sweeper.Stop()
	}

	// Ждем завершения начатых рассылок, затем останавливаем воркер
	if err := emergencyService.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Emergency sessions did not stop in time")
	}

	cancel()
	if relayDone != nil {
		<-relayDone
	}

	log.Info("Server gracefully stopped")
}
