package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/github"
	"github.com/search-rug/costminer/internal/report"
	"github.com/spf13/cobra"
)

var issuesFlags struct {
	data         string
	messageType  string
	openedOut    string
	notOpenedOut string
	logFile      string
}

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Open one outreach issue per repository",
	Long: `Render the outreach message for every entry in the dataset and file it as
an issue on the repository. Repositories with issues disabled are recorded
separately from other failures. Results are appended to the opened/not-opened
report files.`,
	RunE: runIssues,
}

func init() {
	issuesCmd.Flags().StringVar(&issuesFlags.data, "data", "data/combined_data.yml", "Dataset of entries to open issues for")
	issuesCmd.Flags().StringVar(&issuesFlags.messageType, "type", string(report.MessageSurvey), "Message variant: survey, survey_plain, or example")
	issuesCmd.Flags().StringVar(&issuesFlags.openedOut, "opened-out", "gh_issues/issues_opened.yml", "Append-to file for opened repositories")
	issuesCmd.Flags().StringVar(&issuesFlags.notOpenedOut, "not-opened-out", "gh_issues/issues_not_opened.yml", "Append-to file for failed repositories")
	issuesCmd.Flags().StringVar(&issuesFlags.logFile, "log", "", "Run log path (default from config)")
}

func runIssues(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	runLog := openRunLog(issuesFlags.logFile, cfg)

	messageType := report.MessageType(issuesFlags.messageType)
	switch messageType {
	case report.MessageSurvey, report.MessageSurveyPlain, report.MessageExample:
	default:
		return fmt.Errorf("unknown message type %q (use survey, survey_plain, or example)", issuesFlags.messageType)
	}

	ctx := cmd.Context()
	if timeout := cfg.TimeoutDuration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	entries, err := dataset.Load[dataset.Entry](issuesFlags.data)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	runLog.Printf("Opening issues from %s with message type '%s'", issuesFlags.data, issuesFlags.messageType)

	client := github.NewClient(http.DefaultClient, githubToken())
	result := report.OpenIssues(ctx, client, entries, messageType, runLog)

	if len(result.Opened) > 0 {
		if err := dataset.Append(issuesFlags.openedOut, result.Opened); err != nil {
			return err
		}
	}
	if len(result.NotOpened) > 0 {
		if err := dataset.Append(issuesFlags.notOpenedOut, result.NotOpened); err != nil {
			return err
		}
	}

	slog.Info("Issue run finished",
		"opened", len(result.Opened), "failed", len(result.NotOpened))
	return nil
}
