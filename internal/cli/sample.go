package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/yapay-ai/model-scout/pkg/cache"
	"github.com/yapay-ai/model-scout/pkg/catalog"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "List the bundled sample dataset",
	Long: `Print the static model dataset bundled with the binary. It is the
last-resort catalog source when neither the live API nor a local
snapshot is available. With --save it is written as today's snapshot
so later commands work fully offline.`,
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().Bool("save", false, "Write the sample dataset as today's snapshot")
}

func runSample(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	th := thresholds(cfg)
	records, err := catalog.SampleRecords(th)
	if err != nil {
		return fmt.Errorf("load sample dataset: %w", err)
	}

	printRecords(records)
	fmt.Printf("\n%d sample models\n", len(records))

	if save, _ := cmd.Flags().GetBool("save"); save {
		cs := cache.NewStore(cfg.Cache.Dir, th)
		today := time.Now().UTC()
		if err := cs.Write(today, records); err != nil {
			return fmt.Errorf("save sample snapshot: %w", err)
		}
		fmt.Printf("Saved as %s\n", cs.Path(today))
	}
	return nil
}
