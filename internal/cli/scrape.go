package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape the model catalog and write today's snapshot",
	Long: `Fetch the model catalog, normalize every description into a
structured record, and write the dated snapshot file. If today's
snapshot already exists the scrape is skipped and the snapshot is
loaded instead.`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	p, storage, err := initPipeline(cfg, logger)
	if err != nil {
		return err
	}
	defer storage.Close()

	res, err := p.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("scrape catalog: %w", err)
	}

	if res.FromCache {
		fmt.Printf("Snapshot for today already exists: %d models loaded from cache\n", len(res.Records))
		return nil
	}

	fmt.Printf("Scraped %d models from %s", len(res.Records), res.Source)
	if res.Failures > 0 {
		fmt.Printf(" (%d descriptions degraded)", res.Failures)
	}
	fmt.Println()
	return nil
}
