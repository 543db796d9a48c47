package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shenikar/incident_dispatch/pkg/geo"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DatabaseURL   string `env:"DATABASE_URL"`
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"json"`
	DBMaxConns    int32  `env:"DB_MAX_CONNS" envDefault:"10"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Auth Config
	JWTSecret string   `env:"JWT_SECRET"`
	APIKeys   []string `env:"API_KEYS" envSeparator:","`

	// Dispatch base
	BaseLatitude  float64 `env:"BASE_LATITUDE" envDefault:"26.629307"`
	BaseLongitude float64 `env:"BASE_LONGITUDE" envDefault:"87.982475"`

	// Road routing Config
	RoutingURL     string        `env:"ROUTING_URL" envDefault:"https://api.openrouteservice.org"`
	RoutingAPIKey  string        `env:"ROUTING_API_KEY"`
	RoutingTimeout time.Duration `env:"ROUTING_TIMEOUT" envDefault:"5s"`
	RouteCacheTTL  time.Duration `env:"ROUTE_CACHE_TTL" envDefault:"0s"`

	// Clustering Config
	ClusterThresholdDeg float64 `env:"CLUSTER_THRESHOLD_DEG" envDefault:"0.0045"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// External detection feed
	DetectFeedURL  string        `env:"DETECT_FEED_URL" envDefault:"https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/significant_hour.geojson"`
	DetectInterval time.Duration `env:"DETECT_INTERVAL" envDefault:"0s"`
}

// Base возвращает координаты базы реагирования
func (c *Config) Base() geo.Point {
	return geo.Point{Lat: c.BaseLatitude, Lng: c.BaseLongitude}
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные и взаимосвязанные параметры
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (must be %q or %q)", c.StorageDriver, StoragePostgres, StorageMemory)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if err := geo.Validate(c.Base()); err != nil {
		return fmt.Errorf("invalid dispatch base: %w", err)
	}

	if c.ClusterThresholdDeg <= 0 {
		return fmt.Errorf("CLUSTER_THRESHOLD_DEG must be positive")
	}
	return nil
}
