package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/yapay-ai/model-scout/internal/config"
	"github.com/yapay-ai/model-scout/pkg/alerts"
	"github.com/yapay-ai/model-scout/pkg/cache"
	"github.com/yapay-ai/model-scout/pkg/catalog"
	"github.com/yapay-ai/model-scout/pkg/fetch"
	"github.com/yapay-ai/model-scout/pkg/ingest"
	"github.com/yapay-ai/model-scout/pkg/store"
)

// Version is set at build time via ldflags.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Model Scout - OpenRouter model catalog scraper and finder",
	Long: `Model Scout scrapes the OpenRouter model catalog, normalizes the
inconsistent model descriptions into structured records with pricing
tiers, caches one snapshot per day, and finds models by filters or
semantic search.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.scout/config.yaml)")
}

// loadConfig loads the configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger creates a structured logger from config.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Logging.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

// thresholds builds pricing tier boundaries from config.
func thresholds(cfg *config.Config) catalog.Thresholds {
	th := catalog.DefaultThresholds
	if cfg.Thresholds.BudgetMax > 0 {
		th.BudgetMax = cfg.Thresholds.BudgetMax
	}
	if cfg.Thresholds.PremiumMin > 0 {
		th.PremiumMin = cfg.Thresholds.PremiumMin
	}
	return th
}

// initSources builds the ordered catalog source chain: live API, then
// the optional local snapshot file, then the bundled sample.
func initSources(cfg *config.Config) []fetch.Source {
	sources := []fetch.Source{
		fetch.NewAPISource(cfg.Catalog.BaseURL, cfg.Catalog.APIKey),
	}
	if cfg.Catalog.Snapshot != "" {
		sources = append(sources, fetch.NewSnapshotSource(cfg.Catalog.Snapshot))
	}
	sources = append(sources, fetch.NewSampleSource())
	return sources
}

// initStorage creates the scrape history backend from config.
func initStorage(cfg *config.Config) (store.Storage, error) {
	return store.NewSQLite(cfg.Storage.Path)
}

// initNotifier creates the alert notifier from config, nil when no
// integration is enabled.
func initNotifier(cfg *config.Config) alerts.Notifier {
	var notifiers []alerts.Notifier

	if cfg.Alerts.Slack.Enabled && cfg.Alerts.Slack.WebhookURL != "" {
		notifiers = append(notifiers, alerts.NewSlackNotifier(
			cfg.Alerts.Slack.WebhookURL,
			cfg.Alerts.Slack.Channel,
		))
	}

	if cfg.Alerts.Webhook.Enabled && cfg.Alerts.Webhook.URL != "" {
		notifiers = append(notifiers, alerts.NewWebhookNotifier(
			cfg.Alerts.Webhook.URL,
			cfg.Alerts.Webhook.Secret,
		))
	}

	switch len(notifiers) {
	case 0:
		return nil
	case 1:
		return notifiers[0]
	default:
		return alerts.NewMulti(notifiers...)
	}
}

// initPipeline creates a fully wired ingest pipeline. The caller owns
// the returned storage and must close it.
func initPipeline(cfg *config.Config, logger *slog.Logger) (*ingest.Pipeline, store.Storage, error) {
	storage, err := initStorage(cfg)
	if err != nil {
		return nil, nil, err
	}

	th := thresholds(cfg)
	fetcher := fetch.NewFetcher(logger, initSources(cfg)...)
	cacheStore := cache.NewStore(cfg.Cache.Dir, th)

	p := ingest.NewPipeline(fetcher, cacheStore, storage, initNotifier(cfg), th, logger)
	return p, storage, nil
}
