// Package github is a thin client for the parts of the GitHub REST API
// the pipeline consumes: repository commit history, per-commit file
// lists, and issue creation. Calls are synchronous with no retry; the
// caller decides what a failure means for its unit of work.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// ErrIssuesDisabled is returned by CreateIssue when the target
// repository has issues turned off (HTTP 410).
var ErrIssuesDisabled = errors.New("issues are disabled on this repository")

// StatusError reports a non-success API response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Commit is one commit from a repository's history.
type Commit struct {
	SHA     string
	Message string
	HTMLURL string
}

// ListOptions bounds a commit history page request.
type ListOptions struct {
	Since   time.Time // zero means no time window
	Page    int       // 1-based
	PerPage int
}

// API is the subset of the GitHub REST API used by the pipeline.
type API interface {
	ListCommits(ctx context.Context, repo string, opts ListOptions) ([]Commit, error)
	CommitFiles(ctx context.Context, repo, sha string) ([]string, error)
	CreateIssue(ctx context.Context, repo, title, body string) error
}

// Client implements API against a real GitHub endpoint.
type Client struct {
	// BaseURL may be overridden for tests.
	BaseURL string

	httpClient *http.Client
	token      string
}

// NewClient creates a client. A nil httpClient falls back to
// http.DefaultClient. An empty token sends unauthenticated requests.
func NewClient(httpClient *http.Client, token string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL:    DefaultBaseURL,
		httpClient: httpClient,
		token:      token,
	}
}

var repoURLPattern = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(\.git)?/?$`)

// RepoName extracts the "owner/name" identifier from a repository URL.
func RepoName(repoURL string) (string, error) {
	matches := repoURLPattern.FindStringSubmatch(strings.TrimSpace(repoURL))
	if len(matches) < 3 {
		return "", fmt.Errorf("cannot extract owner/name from %q", repoURL)
	}
	return matches[1] + "/" + matches[2], nil
}

// ListCommits returns one page of a repository's commit history in
// reverse-chronological order. repo is "owner/name".
func (c *Client) ListCommits(ctx context.Context, repo string, opts ListOptions) ([]Commit, error) {
	q := url.Values{}
	if !opts.Since.IsZero() {
		q.Set("since", opts.Since.UTC().Format(time.RFC3339))
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	endpoint := fmt.Sprintf("%s/repos/%s/commits", c.BaseURL, repo)
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var payload []struct {
		SHA    string `json:"sha"`
		Commit struct {
			Message string `json:"message"`
		} `json:"commit"`
		HTMLURL string `json:"html_url"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("list commits for %s: %w", repo, err)
	}

	commits := make([]Commit, 0, len(payload))
	for _, p := range payload {
		commits = append(commits, Commit{
			SHA:     p.SHA,
			Message: p.Commit.Message,
			HTMLURL: p.HTMLURL,
		})
	}
	return commits, nil
}

// CommitFiles returns the changed file paths of a single commit. This
// is a second fetch per commit; the commit list endpoint does not carry
// file data.
func (c *Client) CommitFiles(ctx context.Context, repo, sha string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/commits/%s", c.BaseURL, repo, sha)

	var payload struct {
		Files []struct {
			Filename string `json:"filename"`
		} `json:"files"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("fetch files for commit %s: %w", sha, err)
	}

	files := make([]string, 0, len(payload.Files))
	for _, f := range payload.Files {
		files = append(files, f.Filename)
	}
	return files, nil
}

// CreateIssue opens one issue on the repository. A 410 response maps to
// ErrIssuesDisabled so callers can report it apart from generic errors.
func (c *Client) CreateIssue(ctx context.Context, repo, title, body string) error {
	endpoint := fmt.Sprintf("%s/repos/%s/issues", c.BaseURL, repo)

	payload, err := json.Marshal(map[string]string{
		"title": title,
		"body":  body,
	})
	if err != nil {
		return fmt.Errorf("encode issue: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return nil
	case http.StatusGone:
		return ErrIssuesDisabled
	default:
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "costminer")
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
}
