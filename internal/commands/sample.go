package commands

import (
	"fmt"
	"log/slog"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/sample"
	"github.com/spf13/cobra"
)

var sampleFlags struct {
	data    string
	out     string
	size    int
	seed    int64
	logFile string
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Draw a stratified random sample from the combined dataset",
	Long: `Draw a fixed-size sample without replacement, stratified over the four
(tool, awareness) buckets. Buckets with fewer than ten eligible repositories
are skipped. Sampled entries are removed from the dataset file so the residual
population can be reused; if no bucket is eligible nothing is written.`,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringVar(&sampleFlags.data, "data", "data/combined_data.yml", "Combined dataset file (rewritten with the residual)")
	sampleCmd.Flags().StringVar(&sampleFlags.out, "out", "sample.yml", "Sample output file")
	sampleCmd.Flags().IntVar(&sampleFlags.size, "size", 0, "Total sample size (default from config, then 4)")
	sampleCmd.Flags().Int64Var(&sampleFlags.seed, "seed", 0, "Random seed (0 uses system entropy)")
	sampleCmd.Flags().StringVar(&sampleFlags.logFile, "log", "", "Run log path (default from config)")
}

func runSample(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	runLog := openRunLog(sampleFlags.logFile, cfg)

	size := sampleFlags.size
	if size <= 0 {
		size = cfg.SampleSizeOrDefault()
	}

	entries, err := dataset.Load[dataset.Entry](sampleFlags.data)
	if err != nil {
		return fmt.Errorf("load combined dataset: %w", err)
	}

	result, ok := sample.Draw(entries, size, newRand(sampleFlags.seed))
	if !ok {
		runLog.Printf("No buckets with at least 10 entries found.")
		slog.Warn("Sampling aborted: no eligible buckets")
		return nil
	}

	if err := dataset.SaveMap(sampleFlags.out, result.Samples); err != nil {
		return err
	}
	if err := dataset.Save(sampleFlags.data, result.Residual); err != nil {
		return err
	}

	slog.Info("Sample drawn",
		"sampled", len(result.Samples), "residual", len(result.Residual))
	return nil
}
