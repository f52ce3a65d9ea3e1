package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	PriceFeed  PriceFeedConfig  `yaml:"priceFeed"`
	Aggregator AggregatorConfig `yaml:"aggregator"`
	Geo        GeoConfig        `yaml:"geo"`
	Warmup     WarmupConfig     `yaml:"warmup"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
	File  string `yaml:"file"`
}

// PriceFeedConfig holds the configuration for the external price feed client.
type PriceFeedConfig struct {
	BaseURL              string  `yaml:"baseURL"`
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	RateLimitPerSecond   float64 `yaml:"rateLimitPerSecond"`
	RateLimitBurst       int     `yaml:"rateLimitBurst"`
}

// AggregatorConfig holds endpoints for the position data sources.
type AggregatorConfig struct {
	// JoeSubgraphURL is the GraphQL endpoint of the Trader Joe Liquidity
	// Book subgraph (avalanche, bin-based).
	JoeSubgraphURL string `yaml:"joeSubgraphURL"`
	// JoeAPIBaseURL is the DEX's own REST backend, the fallback source.
	JoeAPIBaseURL string `yaml:"joeAPIBaseURL"`
	// FlamingoAPIBaseURL serves the public pools list (neo, simple-lp).
	FlamingoAPIBaseURL   string `yaml:"flamingoAPIBaseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// GeoConfig holds the configuration for the geo-IP lookup client.
type GeoConfig struct {
	BaseURL              string `yaml:"baseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
	CacheTTLMinutes      int    `yaml:"cacheTTLMinutes"`
}

// WarmupConfig controls the advisory price warmup at startup.
type WarmupConfig struct {
	Enabled        bool `yaml:"enabled"`
	TimeoutSeconds int  `yaml:"timeoutSeconds"`
}

// LoadConfig loads configuration from a YAML file and applies defaults for
// unset values.
func LoadConfig(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	cfg.applyDefaults()

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

// Default returns a configuration with every default applied, used by tests
// and as the fallback when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.PriceFeed.BaseURL == "" {
		cfg.PriceFeed.BaseURL = "https://api.coingecko.com/api/v3"
		logrus.Infof("PriceFeed.BaseURL not set, defaulting to %s", cfg.PriceFeed.BaseURL)
	}
	if cfg.PriceFeed.RequestTimeoutMillis == 0 {
		cfg.PriceFeed.RequestTimeoutMillis = 10000 // 10 seconds
	}
	if cfg.PriceFeed.RateLimitPerSecond == 0 {
		cfg.PriceFeed.RateLimitPerSecond = 5
	}
	if cfg.PriceFeed.RateLimitBurst == 0 {
		cfg.PriceFeed.RateLimitBurst = 10
	}

	if cfg.Aggregator.JoeSubgraphURL == "" {
		cfg.Aggregator.JoeSubgraphURL = "https://api.thegraph.com/subgraphs/name/traderjoe-xyz/joe-v2"
	}
	if cfg.Aggregator.JoeAPIBaseURL == "" {
		cfg.Aggregator.JoeAPIBaseURL = "https://api.traderjoexyz.com"
	}
	if cfg.Aggregator.FlamingoAPIBaseURL == "" {
		cfg.Aggregator.FlamingoAPIBaseURL = "https://api.flamingo.finance"
	}
	if cfg.Aggregator.RequestTimeoutMillis == 0 {
		cfg.Aggregator.RequestTimeoutMillis = 10000
	}

	if cfg.Geo.BaseURL == "" {
		cfg.Geo.BaseURL = "http://ip-api.com/json"
	}
	if cfg.Geo.RequestTimeoutMillis == 0 {
		cfg.Geo.RequestTimeoutMillis = 5000
	}
	if cfg.Geo.CacheTTLMinutes == 0 {
		cfg.Geo.CacheTTLMinutes = 60
	}

	if cfg.Warmup.TimeoutSeconds == 0 {
		cfg.Warmup.TimeoutSeconds = 60
	}
}
