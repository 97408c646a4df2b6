package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/github"
	"github.com/search-rug/costminer/internal/keywords"
	"github.com/spf13/cobra"
)

var keywordsFlags struct {
	input         string
	keywordsOut   string
	noKeywordsOut string
	months        int
	logFile       string
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Classify repositories by cost-awareness keyword evidence",
	Long: `Walk each repository's commit history in reverse-chronological order and
partition the input list into repositories with and without cost-awareness
keyword evidence. Only commits that change Terraform files are inspected, and
scanning a repository stops at the first commit with a keyword match.`,
	RunE: runKeywords,
}

func init() {
	keywordsCmd.Flags().StringVar(&keywordsFlags.input, "input", "", "Repository list YAML file (required)")
	keywordsCmd.Flags().StringVar(&keywordsFlags.keywordsOut, "keywords-out", "keywords_repos.yml", "Output file for repositories with keyword evidence")
	keywordsCmd.Flags().StringVar(&keywordsFlags.noKeywordsOut, "no-keywords-out", "no_keywords_repos.yml", "Output file for repositories without keyword evidence")
	keywordsCmd.Flags().IntVar(&keywordsFlags.months, "months", 0, "Limit the scan to the last N months (0 scans all history, capped at 10000 commits)")
	keywordsCmd.Flags().StringVar(&keywordsFlags.logFile, "log", "", "Run log path (default from config)")
	_ = keywordsCmd.MarkFlagRequired("input")
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	runLog := openRunLog(keywordsFlags.logFile, cfg)

	ctx := cmd.Context()
	if timeout := cfg.TimeoutDuration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	repos, err := dataset.Load[dataset.RepoRecord](keywordsFlags.input)
	if err != nil {
		return fmt.Errorf("load repositories: %w", err)
	}

	months := keywordsFlags.months
	if !cmd.Flags().Changed("months") && cfg.WindowMonths > 0 {
		months = cfg.WindowMonths
	}

	client := github.NewClient(http.DefaultClient, githubToken())
	result, err := keywords.Classify(ctx, client, repos, keywords.Options{WindowMonths: months}, runLog)
	if err != nil {
		return enhanceError("classify repositories", err)
	}

	if err := dataset.Save(keywordsFlags.keywordsOut, result.Aware); err != nil {
		return err
	}
	if err := dataset.Save(keywordsFlags.noKeywordsOut, result.Unaware); err != nil {
		return err
	}

	slog.Info("Keyword classification finished",
		"aware", len(result.Aware), "unaware", len(result.Unaware))
	return nil
}
