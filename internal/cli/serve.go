package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/yapay-ai/model-scout/internal/server"
	"github.com/yapay-ai/model-scout/pkg/embed"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	Long: `Start the HTTP API. Endpoints cover model listing with filters,
semantic search when embeddings are configured, catalog statistics,
and scrape history.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	listen, _ := cmd.Flags().GetString("listen")
	if listen != "" {
		cfg.Server.Listen = listen
	}

	logger := newLogger(cfg)

	p, storage, err := initPipeline(cfg, logger)
	if err != nil {
		return err
	}
	defer storage.Close()

	// Build the semantic index once at startup from today's snapshot.
	var index *embed.Index
	if cfg.Embedding.Enabled && cfg.Embedding.APIKey != "" {
		encoder, err := embed.NewOpenAIEncoder(cfg.Embedding.APIKey, cfg.Embedding.BaseURL, cfg.Embedding.Model)
		if err != nil {
			return err
		}
		res, err := p.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		index, err = embed.BuildIndex(cmd.Context(), encoder, res.Records, logger)
		if err != nil {
			return fmt.Errorf("build search index: %w", err)
		}
	}

	apiServer := server.NewServer(p, index, storage, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Listen,
		Handler:      apiServer.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "listen", cfg.Server.Listen)
		fmt.Fprintf(os.Stderr, "Model Scout listening on %s\n", cfg.Server.Listen)
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	logger.Info("server stopped")
	return nil
}
