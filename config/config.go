package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Simulation SimulationConfig `yaml:"simulation"`
	Database   DatabaseConfig   `yaml:"database"`
	Push       PushConfig       `yaml:"push"`
	Notify     NotifyConfig     `yaml:"notify"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
}

// ServerConfig holds the HTTP server configuration. The cache TTLs mirror the
// client refresh cadence: occupancy every 30s, menu every 60s.
type ServerConfig struct {
	Port                     int           `yaml:"port"`
	RateLimitPerSec          float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst           int           `yaml:"rate_limit_burst"`
	OccupancyCacheTTLSeconds int           `yaml:"occupancy_cache_ttl_seconds"`
	MenuCacheTTLSeconds      int           `yaml:"menu_cache_ttl_seconds"`
	OccupancyCacheTTL        time.Duration `yaml:"-"`
	MenuCacheTTL             time.Duration `yaml:"-"`
}

// SimulationConfig controls the simulated data source.
type SimulationConfig struct {
	Timezone string `yaml:"timezone"`
	Seed     int64  `yaml:"seed"` // 0 means seed from the clock
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // "sqlite" (default) or "postgres"
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// NotifyConfig tunes the notification gate.
type NotifyConfig struct {
	CooldownMinutes      int           `yaml:"cooldown_minutes"`
	CheckIntervalSeconds int           `yaml:"check_interval_seconds"`
	Cooldown             time.Duration `yaml:"-"`
	CheckInterval        time.Duration `yaml:"-"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// Load reads the configuration from the given path and applies defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.OccupancyCacheTTLSeconds <= 0 {
		cfg.Server.OccupancyCacheTTLSeconds = 30
	}
	if cfg.Server.MenuCacheTTLSeconds <= 0 {
		cfg.Server.MenuCacheTTLSeconds = 60
	}
	cfg.Server.OccupancyCacheTTL = time.Duration(cfg.Server.OccupancyCacheTTLSeconds) * time.Second
	cfg.Server.MenuCacheTTL = time.Duration(cfg.Server.MenuCacheTTLSeconds) * time.Second

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "dining.db"
	}

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}

	if cfg.Notify.CooldownMinutes <= 0 {
		cfg.Notify.CooldownMinutes = 30
	}
	if cfg.Notify.CheckIntervalSeconds <= 0 {
		cfg.Notify.CheckIntervalSeconds = 120
	}
	cfg.Notify.Cooldown = time.Duration(cfg.Notify.CooldownMinutes) * time.Minute
	cfg.Notify.CheckInterval = time.Duration(cfg.Notify.CheckIntervalSeconds) * time.Second

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		cfg.WorkerPool.Size = 1
	}

	return &cfg, nil
}
