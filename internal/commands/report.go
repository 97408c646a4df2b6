package commands

import (
	"fmt"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/report"
	"github.com/spf13/cobra"
)

var reportFlags struct {
	data    string
	outDir  string
	logFile string
}

var reportCmd = &cobra.Command{
	Use:   "report <repository-url>",
	Short: "Assemble a distributable report bundle for one repository",
	Long: `Locate the repository in the combined dataset and write a self-contained
bundle: a linter summary, a glossary of the triggered checks, a zip archive of
both, and a metadata file with the repository URL and its survey link. An
existing bundle directory is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFlags.data, "data", "data/combined_data.yml", "Combined dataset file")
	reportCmd.Flags().StringVar(&reportFlags.outDir, "out-dir", "generated_reports", "Directory report bundles are written under")
	reportCmd.Flags().StringVar(&reportFlags.logFile, "log", "", "Run log path (default from config)")
}

func runReport(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	runLog := openRunLog(reportFlags.logFile, cfg)

	entries, err := dataset.Load[dataset.Entry](reportFlags.data)
	if err != nil {
		return fmt.Errorf("load combined dataset: %w", err)
	}

	return report.GenerateBundle(args[0], entries, reportFlags.outDir, runLog)
}
