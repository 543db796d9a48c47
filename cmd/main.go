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

	"github.com/shenikar/incident_dispatch/internal/config"
	"github.com/shenikar/incident_dispatch/internal/detect"
	v1 "github.com/shenikar/incident_dispatch/internal/handler/http/v1"
	"github.com/shenikar/incident_dispatch/internal/repository"
	"github.com/shenikar/incident_dispatch/internal/repository/memory"
	"github.com/shenikar/incident_dispatch/internal/routing"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/shenikar/incident_dispatch/internal/webhook"
	"github.com/shenikar/incident_dispatch/pkg/logger"
	"github.com/shenikar/incident_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/incident_dispatch/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/incident_dispatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Incident Dispatch API
// @version 1.0
// @description Incident intake, clustering, prioritisation and dispatch routing.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

type repositories struct {
	incidents service.IncidentRepository
	resources service.ResourceRepository
	close     func()
}

func openRepositories(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*repositories, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Warn("Using in-memory storage, data will not survive a restart")
		store := memory.NewStore()
		return &repositories{incidents: store, resources: store, close: func() {}}, nil
	}

	if err := runMigrations(cfg, log); err != nil {
		return nil, err
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Successfully connected to PostgreSQL")

	repo := repository.NewIncidentRepository(dbpool)
	return &repositories{incidents: repo, resources: repo, close: dbpool.Close}, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer repos.close()

	// Redis обязателен для postgres; в режиме memory работаем и без него
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		if cfg.StorageDriver != config.StorageMemory {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.WithError(err).Warn("Redis unavailable, webhooks and durable route cache are disabled")
	} else {
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Издатель событий и воркер вебхуков
	var publisher webhook.Publisher = webhook.NopPublisher{}
	routeCache := routing.Cache(routing.NewMemoryCache(cfg.RouteCacheTTL))
	if redisClient != nil {
		publisher = webhook.NewRedisPublisher(redisClient)
		webhook.NewWorker(redisClient, log, cfg).Start(ctx)
		routeCache = routing.NewTieredCache(routeCache, routing.NewRedisCache(redisClient, cfg.RouteCacheTTL))
	}

	// Дорожная маршрутизация
	if cfg.RoutingAPIKey == "" {
		log.Warn("ROUTING_API_KEY is not set, dispatch routes will fall back to straight lines")
	}
	routingClient := routing.NewClient(cfg.RoutingURL, cfg.RoutingAPIKey, routing.ClientOptions{Timeout: cfg.RoutingTimeout})
	resolver := routing.NewResolver(cfg.Base(), routingClient, routeCache, cfg.RoutingTimeout, log)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(repos.incidents, repos.resources, log, cfg, publisher)
	dispatchService := service.NewDispatchService(repos.incidents, resolver, log)

	// Внешняя лента обнаружения
	detect.NewPoller(cfg.DetectFeedURL, cfg.DetectInterval, incidentService, log).Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, dispatchService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

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
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
