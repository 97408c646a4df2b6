package commands

import (
	"github.com/search-rug/costminer/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string
	commit  string
	date    string
)

var rootCmd = &cobra.Command{
	Use:   "costminer",
	Short: "costminer - IaC cost-misconfiguration study pipeline",
	Long: `costminer supports an empirical study of cost-related misconfigurations in
Infrastructure-as-Code repositories. It classifies repositories by cost-awareness
evidence in their commit histories, reconciles and enriches linter datasets,
computes aggregate tables, draws stratified samples, and assembles per-repository
report bundles and outreach issues.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(combinationsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(issuesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
