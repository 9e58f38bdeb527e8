package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	Search SearchConfig `yaml:"search"`
	Valkey ValkeyConfig `yaml:"valkey"`
	Mongo  MongoConfig  `yaml:"mongo"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// PeakWindowConfig is one inclusive "HH:mm" window of the peak-hour table.
type PeakWindowConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// SearchConfig controls the restaurant search domain.
type SearchConfig struct {
	CacheTTL         time.Duration      `yaml:"cacheTtl"`
	GeohashPrecision uint               `yaml:"geohashPrecision"`
	PeakRadiusKm     float64            `yaml:"peakRadiusKm"`
	NormalRadiusKm   float64            `yaml:"normalRadiusKm"`
	SubSearchTimeout time.Duration      `yaml:"subSearchTimeout"`
	PeakWindows      []PeakWindowConfig `yaml:"peakWindows"`
}

// ValkeyConfig contains connection information for the proximity cache.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// MongoConfig contains connection information for the catalog database.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("SEARCH_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Search.CacheTTL = parsed
		}
	}
	if v := os.Getenv("SEARCH_GEOHASH_PRECISION"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.Search.GeohashPrecision = uint(parsed)
		}
	}
	if v := os.Getenv("SEARCH_PEAK_RADIUS_KM"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Search.PeakRadiusKm = parsed
		}
	}
	if v := os.Getenv("SEARCH_NORMAL_RADIUS_KM"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Search.NormalRadiusKm = parsed
		}
	}
	if v := os.Getenv("SEARCH_SUBSEARCH_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Search.SubSearchTimeout = parsed
		}
	}
	if v := os.Getenv("VALKEY_ENABLED"); v != "" {
		cfg.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.Valkey.Addr = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             40,
			},
		},
		Search: SearchConfig{
			CacheTTL:         time.Hour,
			GeohashPrecision: 7,
			PeakRadiusKm:     3,
			NormalRadiusKm:   5,
			SubSearchTimeout: 5 * time.Second,
			PeakWindows: []PeakWindowConfig{
				{Start: "08:00", End: "10:00"},
				{Start: "13:00", End: "14:00"},
				{Start: "19:00", End: "21:00"},
			},
		},
		Valkey: ValkeyConfig{
			Enabled: false,
			Addr:    "",
		},
		Mongo: MongoConfig{
			URI:      "",
			Database: "feastly",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Search.CacheTTL < 0 {
		return errors.New("search.cacheTtl cannot be negative")
	}
	if c.Search.GeohashPrecision == 0 || c.Search.GeohashPrecision > 12 {
		return errors.New("search.geohashPrecision must be between 1 and 12")
	}
	if c.Search.PeakRadiusKm <= 0 {
		return errors.New("search.peakRadiusKm must be positive")
	}
	if c.Search.NormalRadiusKm <= 0 {
		return errors.New("search.normalRadiusKm must be positive")
	}
	if c.Search.SubSearchTimeout <= 0 {
		return errors.New("search.subSearchTimeout must be positive")
	}
	for _, w := range c.Search.PeakWindows {
		if w.Start == "" || w.End == "" {
			return errors.New("search.peakWindows entries need start and end")
		}
	}
	if c.Valkey.Enabled && strings.TrimSpace(c.Valkey.Addr) == "" {
		return errors.New("valkey.addr cannot be empty when the cache is enabled")
	}
	if c.Mongo.URI != "" && strings.TrimSpace(c.Mongo.Database) == "" {
		return errors.New("mongo.database cannot be empty when mongo.uri is set")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
