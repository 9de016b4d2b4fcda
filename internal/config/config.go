package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all Model Scout configuration.
type Config struct {
	Cache      CacheConfig      `mapstructure:"cache"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Thresholds ThresholdsConfig `mapstructure:"thresholds"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Embedding  EmbeddingConfig  `mapstructure:"embedding"`
	Server     ServerConfig     `mapstructure:"server"`
	Alerts     AlertsConfig     `mapstructure:"alerts"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// CacheConfig defines where dated catalog snapshots are written.
type CacheConfig struct {
	Dir string `mapstructure:"dir"`
}

// CatalogConfig defines the live catalog source.
type CatalogConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
	Snapshot string `mapstructure:"snapshot"`
}

// ThresholdsConfig defines the pricing tier boundaries in USD per
// million tokens.
type ThresholdsConfig struct {
	BudgetMax  float64 `mapstructure:"budget_max"`
	PremiumMin float64 `mapstructure:"premium_min"`
}

// StorageConfig defines database settings for scrape history.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// EmbeddingConfig defines the optional semantic search encoder.
type EmbeddingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// ServerConfig defines the HTTP API settings.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// AlertsConfig defines alerting integrations.
type AlertsConfig struct {
	Slack   SlackConfig   `mapstructure:"slack"`
	Webhook WebhookConfig `mapstructure:"webhook"`
}

// SlackConfig defines Slack webhook settings.
type SlackConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	WebhookURL string `mapstructure:"webhook_url"`
	Channel    string `mapstructure:"channel"`
}

// WebhookConfig defines generic webhook settings.
type WebhookConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Secret  string `mapstructure:"secret"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}

		v.AddConfigPath(filepath.Join(home, ".scout"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Defaults
	home, _ := os.UserHomeDir()
	v.SetDefault("cache.dir", filepath.Join(home, ".scout", "snapshots"))
	v.SetDefault("catalog.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("catalog.snapshot", "")
	v.SetDefault("thresholds.budget_max", 0.5)
	v.SetDefault("thresholds.premium_min", 5.0)
	v.SetDefault("storage.path", filepath.Join(home, ".scout", "scout.db"))
	v.SetDefault("embedding.enabled", false)
	v.SetDefault("embedding.model", "text-embedding-3-small")
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("alerts.slack.channel", "#model-scout")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Environment variables
	v.SetEnvPrefix("SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider-conventional keys work without the prefix.
	_ = v.BindEnv("catalog.api_key", "SCOUT_CATALOG_API_KEY", "OPENROUTER_API_KEY")
	_ = v.BindEnv("embedding.api_key", "SCOUT_EMBEDDING_API_KEY", "OPENAI_API_KEY")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
