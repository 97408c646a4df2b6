// Package keywords walks repository commit histories looking for
// textual evidence of cost-consciousness in commits that change
// Infrastructure-as-Code files.
package keywords

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/search-rug/costminer/internal/dataset"
	"github.com/search-rug/costminer/internal/github"
	"github.com/search-rug/costminer/internal/logging"
)

// Vocabulary is the fixed set of cost-awareness keywords. Matching is
// substring containment against the lower-cased commit message.
var Vocabulary = []string{
	"bill",
	"cheap",
	"cost",
	"efficient",
	"expens",
	"pay",
	"overprovisioned",
	"pay_per_request",
	"r/w",
	"lifecycle",
	"old generation",
}

// maxCommits bounds the all-history scan.
const maxCommits = 10000

// commitsPerPage is the history page size requested from the source.
const commitsPerPage = 100

// iacFile reports whether a changed path is an Infrastructure-as-Code
// file for the purposes of keyword gating.
func iacFile(path string) bool {
	return strings.HasSuffix(path, ".tf")
}

// Options controls the scan bounds.
type Options struct {
	// WindowMonths limits the scan to roughly the last N months
	// (30-day months). Zero scans all history up to the commit cap.
	WindowMonths int

	// Now supplies the reference time for the window; zero means
	// time.Now.
	Now time.Time
}

// Result partitions the input repositories. Repositories whose history
// could not be accessed at all appear in neither partition.
type Result struct {
	Aware   []dataset.RepoRecord
	Unaware []dataset.RepoRecord
}

// Classify scans each repository's history in reverse-chronological
// order and partitions the repositories by keyword evidence. Scanning a
// repository stops at the first commit that both changes an IaC file
// and contains at least one vocabulary keyword.
//
// A single repository whose history is inaccessible is skipped. An
// authentication or rate-limit rejection aborts the run instead, since
// it would fail every remaining repository the same way.
func Classify(ctx context.Context, src github.API, repos []dataset.RepoRecord, opts Options, runLog *logging.RunLog) (Result, error) {
	if opts.WindowMonths > 0 {
		runLog.Printf("Searching for keywords in the last %d months", opts.WindowMonths)
	} else {
		runLog.Printf("Searching for keywords in the last %d commits", maxCommits)
	}

	var since time.Time
	if opts.WindowMonths > 0 {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		since = now.AddDate(0, 0, -30*opts.WindowMonths)
	}

	var result Result
	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		name, err := github.RepoName(repo.Repo)
		if err != nil {
			runLog.Printf("\tError processing repo %s: %v", repo.Repo, err)
			continue
		}

		runLog.Printf("\tProcessing repo: %s", repo.Repo)
		found, err := scanRepository(ctx, src, name, since, runLog)
		if err != nil {
			if fatalAccessError(err) {
				return result, err
			}
			// Whole-repository access failure: the repository is
			// excluded from both partitions, not defaulted to unaware.
			runLog.Printf("\tError processing repo %s: %v", name, err)
			slog.Warn("Skipping repository", "repo", name, "error", err)
			continue
		}

		if len(found) > 0 {
			repo.Keywords = found
			result.Aware = append(result.Aware, repo)
		} else {
			result.Unaware = append(result.Unaware, repo)
			runLog.Printf("\t\tNo keywords found in repo: %s", name)
		}
	}

	runLog.Printf("Found %d repos with keywords and %d without keywords.",
		len(result.Aware), len(result.Unaware))
	return result, nil
}

// fatalAccessError reports whether an API rejection would hit every
// remaining repository identically.
func fatalAccessError(err error) bool {
	var statusErr *github.StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return statusErr.StatusCode == http.StatusUnauthorized ||
		statusErr.StatusCode == http.StatusForbidden
}

// scanRepository returns the sorted keywords matched in the first
// evidence-bearing commit, or nil if the bounded history has none. An
// error means the history itself was inaccessible.
func scanRepository(ctx context.Context, src github.API, repo string, since time.Time, runLog *logging.RunLog) ([]string, error) {
	seen := 0
	for page := 1; seen < maxCommits; page++ {
		commits, err := src.ListCommits(ctx, repo, github.ListOptions{
			Since:   since,
			Page:    page,
			PerPage: commitsPerPage,
		})
		if err != nil {
			return nil, err
		}
		if len(commits) == 0 {
			return nil, nil
		}

		for _, commit := range commits {
			if seen >= maxCommits {
				return nil, nil
			}
			seen++

			files, err := src.CommitFiles(ctx, repo, commit.SHA)
			if err != nil {
				// A single commit's file fetch failing is recoverable.
				runLog.Printf("\t\tCould not fetch files for commit %s: %v", commit.SHA, err)
				continue
			}

			touchesIaC := false
			for _, f := range files {
				if iacFile(f) {
					touchesIaC = true
					break
				}
			}
			if !touchesIaC {
				continue
			}

			message := strings.ToLower(commit.Message)
			var found []string
			for _, keyword := range Vocabulary {
				if strings.Contains(message, keyword) {
					found = append(found, keyword)
					runLog.Printf("\t\tFound keyword '%s' in commit: %s", keyword, commit.HTMLURL)
				}
			}

			// First-evidence short-circuit: one matching commit decides
			// the repository.
			if len(found) > 0 {
				sort.Strings(found)
				return found, nil
			}
		}
	}
	return nil, nil
}
