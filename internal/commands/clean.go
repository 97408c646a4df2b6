package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/enrich"
	"github.com/search-rug/costminer/internal/report"
	"github.com/spf13/cobra"
)

var cleanFlags struct {
	rawDir      string
	keywordsDir string
	outDir      string
	seed        int64
	logFile     string
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Enrich the raw datasets and build the combined dataset",
	Long: `Clean each reconciled raw dataset: drop repositories without findings,
attach check names and an example finding, derive per-repository counts, and
label every repository with its cost-awareness. The four cleaned datasets are
saved individually and concatenated into combined_data.yml with survey links
attached.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanFlags.rawDir, "raw-dir", "raw_data", "Directory holding the reconciled raw datasets")
	cleanCmd.Flags().StringVar(&cleanFlags.keywordsDir, "keywords-dir", "keywords", "Directory holding per-dataset keyword outputs (same file names as the raw datasets)")
	cleanCmd.Flags().StringVar(&cleanFlags.outDir, "out-dir", "", "Output directory for cleaned datasets (default from config)")
	cleanCmd.Flags().Int64Var(&cleanFlags.seed, "seed", 0, "Random seed for example selection (0 uses system entropy)")
	cleanCmd.Flags().StringVar(&cleanFlags.logFile, "log", "", "Run log path (default from config)")
}

func runClean(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	runLog := openRunLog(cleanFlags.logFile, cfg)
	rng := newRand(cleanFlags.seed)

	outDir := cleanFlags.outDir
	if outDir == "" {
		outDir = cfg.DataDirOrDefault()
	}

	runLog.Printf("Cleaning datasets...")

	type source struct {
		file   string
		tool   dataset.Tool
		origin dataset.Origin
	}
	sources := []source{
		{fileBaselineTF, dataset.ToolTerraform, dataset.OriginBaseline},
		{fileBaselineCF, dataset.ToolCloudFormation, dataset.OriginBaseline},
		{fileExtendedTF, dataset.ToolTerraform, dataset.OriginExtended},
		{fileExtendedCF, dataset.ToolCloudFormation, dataset.OriginExtended},
	}

	var parts [][]dataset.Entry
	for _, s := range sources {
		raw, err := dataset.Load[dataset.RawEntry](filepath.Join(cleanFlags.rawDir, s.file))
		if err != nil {
			return fmt.Errorf("load %s %s: %w", s.origin, s.tool, err)
		}
		aware, err := dataset.Load[dataset.RepoRecord](filepath.Join(cleanFlags.keywordsDir, s.file))
		if err != nil {
			return fmt.Errorf("load keywords for %s %s: %w", s.origin, s.tool, err)
		}

		cleaned := enrich.Clean(raw, s.tool, s.origin, aware, rng)
		if err := dataset.Save(filepath.Join(outDir, "cleaned_"+s.file), cleaned); err != nil {
			return err
		}
		parts = append(parts, cleaned)
	}

	combined := enrich.Combine(parts...)
	report.AssociateForms(combined, runLog)

	combinedPath := filepath.Join(outDir, "combined_data.yml")
	if err := dataset.Save(combinedPath, combined); err != nil {
		return err
	}

	slog.Info("Datasets cleaned", "entries", len(combined), "combined", combinedPath)
	return nil
}
