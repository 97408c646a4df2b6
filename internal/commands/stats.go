package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/stats"
	"github.com/spf13/cobra"
)

var combinationsFlags struct {
	data string
	out  string
}

var combinationsCmd = &cobra.Command{
	Use:   "combinations",
	Short: "Group repositories by their exact triggered check set",
	RunE:  runCombinations,
}

var statsFlags struct {
	data   string
	outDir string
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute awareness and totals tables over the combined dataset",
	Long: `Compute the fixed aggregate tables: cost-awareness counts grouped by tool
and by (tool, dataset), and failed-check/file/repository totals grouped by
(tool, dataset). Each table is saved to its own YAML file.`,
	RunE: runStats,
}

func init() {
	combinationsCmd.Flags().StringVar(&combinationsFlags.data, "data", "data/combined_data.yml", "Combined dataset file")
	combinationsCmd.Flags().StringVar(&combinationsFlags.out, "out", "check_combinations.yml", "Output file")

	statsCmd.Flags().StringVar(&statsFlags.data, "data", "data/combined_data.yml", "Combined dataset file")
	statsCmd.Flags().StringVar(&statsFlags.outDir, "out-dir", ".", "Output directory for the three tables")
}

func runCombinations(_ *cobra.Command, _ []string) error {
	entries, err := dataset.Load[dataset.Entry](combinationsFlags.data)
	if err != nil {
		return fmt.Errorf("load combined dataset: %w", err)
	}

	combos := stats.Combinations(entries)
	if err := dataset.Save(combinationsFlags.out, combos); err != nil {
		return err
	}

	slog.Info("Check combinations computed", "groups", len(combos))
	return nil
}

func runStats(_ *cobra.Command, _ []string) error {
	entries, err := dataset.Load[dataset.Entry](statsFlags.data)
	if err != nil {
		return fmt.Errorf("load combined dataset: %w", err)
	}

	byTool := stats.AwarenessByTool(entries)
	if err := dataset.Save(filepath.Join(statsFlags.outDir, "awareness_stats_tool.yml"), byTool); err != nil {
		return err
	}

	byOrigin := stats.AwarenessByOrigin(entries)
	if err := dataset.Save(filepath.Join(statsFlags.outDir, "awareness_stats_dataset.yml"), byOrigin); err != nil {
		return err
	}

	totals := stats.AggregateTotals(entries)
	if err := dataset.Save(filepath.Join(statsFlags.outDir, "aggregated_totals.yml"), totals); err != nil {
		return err
	}

	slog.Info("Aggregate tables computed",
		"tools", len(byTool), "datasets", len(byOrigin), "totals", len(totals))
	return nil
}
