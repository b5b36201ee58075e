package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`

	// workout stats
	RecentWindowDays      int `toml:"recent_window_days"`
	CatalogCacheTTLSecs   int `toml:"catalog_cache_ttl_secs"`
	CatalogCacheSizeBytes int `toml:"catalog_cache_size_bytes"`

	// rate limiting
	LoginRateLimitAllowedPerMin   int `toml:"login_rate_limit_allowed_per_min"`
	SessionRateLimitAllowedPerMin int `toml:"session_rate_limit_allowed_per_min"`

	AllowedOrigins []string `toml:"allowed_origins"`
	MigrateOnStart bool     `toml:"migrate_on_start"`
}

// RecentWindow is the rolling window used by aggregation queries.
func (c *Config) RecentWindow() time.Duration {
	return time.Duration(c.RecentWindowDays) * 24 * time.Hour
}

func (c *Config) CatalogCacheTTL() time.Duration {
	return time.Duration(c.CatalogCacheTTLSecs) * time.Second
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RecentWindowDays <= 0 {
		c.RecentWindowDays = 14
	}
	if c.CatalogCacheTTLSecs <= 0 {
		c.CatalogCacheTTLSecs = 60
	}
	if c.CatalogCacheSizeBytes <= 0 {
		c.CatalogCacheSizeBytes = 10 * 1024 * 1024
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.SessionRateLimitAllowedPerMin <= 0 {
		c.SessionRateLimitAllowedPerMin = 60
	}
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}
