package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past scrape runs",
	Long: `List recorded scrape runs, newest first. With --failures the raw
inputs that could not be fully parsed are shown instead.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum entries to show")
	historyCmd.Flags().Bool("failures", false, "Show parse failures instead of runs")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	showFailures, _ := cmd.Flags().GetBool("failures")

	storage, err := initStorage(cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	if showFailures {
		failures, err := storage.ListFailures(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list parse failures: %w", err)
		}
		if len(failures) == 0 {
			fmt.Println("No parse failures recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "TIMESTAMP\tREASON\tRAW INPUT\n")
		for _, f := range failures {
			fmt.Fprintf(w, "%s\t%s\t%s\n", f.Timestamp.Format("2006-01-02 15:04"), f.Reason, f.RawInput)
		}
		w.Flush()
		return nil
	}

	runs, err := storage.ListRuns(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("list scrape runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No scrape runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DATE\tSOURCE\tRECORDS\tFAILURES\tTIMESTAMP\n")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			r.Date, r.Source, r.RecordCount, r.FailureCount,
			r.Timestamp.Format("2006-01-02 15:04"))
	}
	w.Flush()
	return nil
}
