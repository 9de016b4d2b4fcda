package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yapay-ai/model-scout/pkg/catalog"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List catalog models",
	Long: `List the models from today's snapshot, scraping first when no
snapshot exists. Filters narrow by provider, pricing tier, free
models, or a name substring.`,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.Flags().StringP("provider", "p", "", "Filter by provider")
	modelsCmd.Flags().StringP("category", "c", "", "Filter by pricing tier (Free, Budget, Standard, Premium, Unknown)")
	modelsCmd.Flags().Bool("free", false, "Only free models")
	modelsCmd.Flags().StringP("query", "q", "", "Substring match on name, provider, or description")
}

func runModels(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	provider, _ := cmd.Flags().GetString("provider")
	category, _ := cmd.Flags().GetString("category")
	freeOnly, _ := cmd.Flags().GetBool("free")
	query, _ := cmd.Flags().GetString("query")

	p, storage, err := initPipeline(cfg, logger)
	if err != nil {
		return err
	}
	defer storage.Close()

	res, err := p.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	filter := catalog.Filter{
		Provider:  provider,
		Category:  catalog.Category(category),
		FreeOnly:  freeOnly,
		Substring: query,
	}
	records := catalog.Apply(res.Records, filter)

	if len(records) == 0 {
		fmt.Println("No models match the given filters.")
		return nil
	}

	printRecords(records)
	fmt.Printf("\n%d of %d models\n", len(records), len(res.Records))
	return nil
}

func printRecords(records []catalog.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "NAME\tPROVIDER\tCOST\tTIER\tCONTEXT\n")
	for _, r := range records {
		ctx := ""
		if r.ContextLength > 0 {
			ctx = fmt.Sprintf("%d", r.ContextLength)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Name, r.Provider, r.Cost, r.Category, ctx)
	}
	w.Flush()
}
