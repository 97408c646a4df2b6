package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/reconcile"
	"github.com/spf13/cobra"
)

// Fixed file names for the four raw datasets inside the raw directory.
const (
	fileBaselineTF = "baseline_tf.yml"
	fileBaselineCF = "baseline_cf.yml"
	fileExtendedTF = "extended_tf.yml"
	fileExtendedCF = "extended_cf.yml"
)

var reconcileFlags struct {
	rawDir  string
	logFile string
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Remove cross-dataset duplicate repositories",
	Long: `Scan the four raw datasets (baseline/extended x terraform/cloudformation)
for repository URLs appearing more than once. Duplicates are pruned from the
extended datasets only; the baseline datasets are authoritative. The pruned
datasets are written back in place.`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileFlags.rawDir, "raw-dir", "raw_data", "Directory holding baseline_tf.yml, baseline_cf.yml, extended_tf.yml, extended_cf.yml")
	reconcileCmd.Flags().StringVar(&reconcileFlags.logFile, "log", "", "Run log path (default from config)")
}

func runReconcile(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	runLog := openRunLog(reconcileFlags.logFile, cfg)
	dir := reconcileFlags.rawDir

	var d reconcile.Datasets
	var err error
	if d.BaselineTF, err = dataset.Load[dataset.RawEntry](filepath.Join(dir, fileBaselineTF)); err != nil {
		return fmt.Errorf("load baseline terraform: %w", err)
	}
	if d.BaselineCF, err = dataset.Load[dataset.RawEntry](filepath.Join(dir, fileBaselineCF)); err != nil {
		return fmt.Errorf("load baseline cloudformation: %w", err)
	}
	if d.ExtendedTF, err = dataset.Load[dataset.RawEntry](filepath.Join(dir, fileExtendedTF)); err != nil {
		return fmt.Errorf("load extended terraform: %w", err)
	}
	if d.ExtendedCF, err = dataset.Load[dataset.RawEntry](filepath.Join(dir, fileExtendedCF)); err != nil {
		return fmt.Errorf("load extended cloudformation: %w", err)
	}

	duplicates := reconcile.Reconcile(&d, runLog)
	if len(duplicates) == 0 {
		slog.Info("No duplicates found across datasets")
		return nil
	}

	if err := dataset.Save(filepath.Join(dir, fileExtendedTF), d.ExtendedTF); err != nil {
		return err
	}
	if err := dataset.Save(filepath.Join(dir, fileExtendedCF), d.ExtendedCF); err != nil {
		return err
	}

	slog.Info("Duplicates removed from extended datasets", "count", len(duplicates))
	return nil
}
