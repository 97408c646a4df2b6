package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a sample config file",
	Long:  `Creates a sample .costminer.yaml config file in the working directory.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite an existing config file")
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath := ".costminer.yaml"

	if !initFlags.force {
		if _, err := os.Stat(configPath); err == nil {
			fmt.Printf("Skipping %s (already exists, use --force to overwrite)\n", configPath)
			return nil
		}
	}

	if err := os.WriteFile(configPath, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", configPath, err)
	}

	fmt.Printf("Created %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Export GITHUB_TOKEN for commit-history scanning and issue creation")
	fmt.Println("  2. Run: costminer keywords --input repos.yml")
	fmt.Println("  3. Run: costminer reconcile && costminer clean")
	return nil
}

const sampleConfig = `# costminer configuration

# Directory cleaned and combined datasets are written to
data_dir: data

# Plain-text run log (append-only)
log_file: logs.txt

# Total stratified sample size
sample_size: 4

# Default commit-history window in months (0 scans all history)
window_months: 0

# Timeout for GitHub API driven stages
timeout: 30m
`
