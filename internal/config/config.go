package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvFile    = ".env"
	ConfigFile = "config.yaml"
)

type Config struct {
	Env             string                `yaml:"env"`
	Server          ServerConfig          `yaml:"server"`
	Logging         LoggingConfig         `yaml:"logging"`
	ActivityService ActivityServiceConfig `yaml:"activity_service"`
	RateLimit       RateLimitConfig       `yaml:"rate_limit"`
	CatalogFile     string                `yaml:"catalog_file"`
	PopularCount    int                   `yaml:"popular_count"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// X-Real-IP. Enable only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ActivityServiceConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// RateLimitConfig bounds requests per client IP. Zero RequestsPerMinute disables it.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

func (c Config) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development"
}

func Default() Config {
	return Config{
		Env: "development",
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 30 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Logging: LoggingConfig{Level: "info"},
		ActivityService: ActivityServiceConfig{
			BaseURL:  "http://localhost:9000/api",
			Timeout:  10 * time.Second,
			CacheTTL: 5 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 120,
			Burst:             20,
		},
		CatalogFile:  "data/catalog.yaml",
		PopularCount: 4,
	}
}

// Load reads .env and config.yaml from the nearest directory containing
// config.yaml, then applies environment overrides. A missing config.yaml is
// not an error; defaults are used.
func Load() (Config, error) {
	base := BasePath()
	_ = godotenv.Load(filepath.Join(base, EnvFile))

	cfg := Default()

	data, err := os.ReadFile(filepath.Join(base, ConfigFile))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	applyEnv(&cfg)
	fillDefaults(&cfg)

	if cfg.CatalogFile != "" && !filepath.IsAbs(cfg.CatalogFile) && base != "" {
		cfg.CatalogFile = filepath.Join(base, cfg.CatalogFile)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Env = getEnv("APP_ENV", cfg.Env)
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.ActivityService.BaseURL = getEnv("ACTIVITY_SERVICE_URL", cfg.ActivityService.BaseURL)
	cfg.CatalogFile = getEnv("CATALOG_FILE", cfg.CatalogFile)
	if b, err := strconv.ParseBool(os.Getenv("TRUST_PROXY_HEADERS")); err == nil {
		cfg.Server.TrustProxyHeaders = b
	}
	if n, err := strconv.Atoi(os.Getenv("POPULAR_COUNT")); err == nil && n > 0 {
		cfg.PopularCount = n
	}
}

// fillDefaults restores defaults for fields a partial config.yaml zeroed out.
func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = def.Server.Addr
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = def.Server.AllowedOrigins
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.ActivityService.Timeout <= 0 {
		cfg.ActivityService.Timeout = def.ActivityService.Timeout
	}
	if cfg.ActivityService.CacheTTL <= 0 {
		cfg.ActivityService.CacheTTL = def.ActivityService.CacheTTL
	}
	if cfg.PopularCount <= 0 {
		cfg.PopularCount = def.PopularCount
	}
	if cfg.CatalogFile == "" {
		cfg.CatalogFile = def.CatalogFile
	}
}

// BasePath walks up from the working directory looking for config.yaml.
// It returns "" when none is found.
func BasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, ConfigFile)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
