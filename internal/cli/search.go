package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yapay-ai/model-scout/pkg/catalog"
	"github.com/yapay-ai/model-scout/pkg/embed"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find models matching a natural-language query",
	Long: `Rank catalog models against a query by embedding similarity. When
embeddings are disabled or no API key is configured the search falls
back to substring matching.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntP("top", "k", 5, "Number of results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	query := strings.Join(args, " ")
	k, _ := cmd.Flags().GetInt("top")

	p, storage, err := initPipeline(cfg, logger)
	if err != nil {
		return err
	}
	defer storage.Close()

	res, err := p.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if !cfg.Embedding.Enabled || cfg.Embedding.APIKey == "" {
		logger.Warn("semantic search unavailable, falling back to substring match")
		records := catalog.Apply(res.Records, catalog.Filter{Substring: query})
		if len(records) == 0 {
			fmt.Println("No models match the query.")
			return nil
		}
		if k > 0 && len(records) > k {
			records = records[:k]
		}
		printRecords(records)
		return nil
	}

	encoder, err := embed.NewOpenAIEncoder(cfg.Embedding.APIKey, cfg.Embedding.BaseURL, cfg.Embedding.Model)
	if err != nil {
		return err
	}

	index, err := embed.BuildIndex(cmd.Context(), encoder, res.Records, logger)
	if err != nil {
		return fmt.Errorf("build search index: %w", err)
	}

	results, err := index.Search(cmd.Context(), query, k)
	if err != nil {
		return fmt.Errorf("search catalog: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tNAME\tPROVIDER\tCOST\tTIER\n")
	for _, r := range results {
		fmt.Fprintf(w, "%.4f\t%s\t%s\t%s\t%s\n",
			r.Similarity, r.Record.Name, r.Record.Provider, r.Record.Cost, r.Record.Category)
	}
	w.Flush()
	return nil
}
