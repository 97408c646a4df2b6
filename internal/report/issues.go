package report

import (
	"context"
	"errors"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/github"
	"github.com/search-rug/costminer/internal/logging"
)

// IssueFailure records one repository whose issue could not be created,
// with a reason suitable for the failure report.
type IssueFailure struct {
	Repo  string `yaml:"repo"`
	Error string `yaml:"error"`
}

// IssueResult partitions the outreach run into opened and not-opened
// repositories.
type IssueResult struct {
	Opened    []string
	NotOpened []IssueFailure
}

// OpenIssues files one outreach issue per entry. Every failure is
// per-repository: a transport error is logged and skipped, a disabled
// issue tracker is recorded as "Issues disabled", and any other API
// rejection is recorded with the response text.
func OpenIssues(ctx context.Context, api github.API, entries []dataset.Entry, messageType MessageType, runLog *logging.RunLog) IssueResult {
	var result IssueResult

	for _, entry := range entries {
		name, err := github.RepoName(entry.Repo)
		if err != nil {
			runLog.Printf("Error creating issue for %s: %v", entry.Repo, err)
			continue
		}

		body, err := RenderMessage(entry, messageType)
		if err != nil {
			runLog.Printf("Error creating issue for %s: %v", entry.Repo, err)
			continue
		}

		err = api.CreateIssue(ctx, name, IssueTitle, body)
		switch {
		case err == nil:
			runLog.Printf("\tIssue created successfully for %s", entry.Repo)
			result.Opened = append(result.Opened, entry.Repo)
		case errors.Is(err, github.ErrIssuesDisabled):
			runLog.Printf("\tFailed to create issue for %s: %v", entry.Repo, err)
			result.NotOpened = append(result.NotOpened, IssueFailure{
				Repo:  entry.Repo,
				Error: "Issues disabled",
			})
		default:
			var statusErr *github.StatusError
			if errors.As(err, &statusErr) {
				runLog.Printf("\tFailed to create issue for %s: %d - %s", entry.Repo, statusErr.StatusCode, statusErr.Body)
				result.NotOpened = append(result.NotOpened, IssueFailure{
					Repo:  entry.Repo,
					Error: statusErr.Body,
				})
			} else {
				runLog.Printf("Error creating issue for %s: %v", entry.Repo, err)
			}
		}
	}

	return result
}
