package keywords

import (
	"context"
	"errors"

	"github.com/search-rug/costminer/internal/github"
)

// mockHistory implements github.API for testing. Commit histories are
// keyed by "owner/name".
type mockHistory struct {
	commits map[string][]github.Commit
	files   map[string][]string
	fileErr map[string]error
	listErr map[string]error

	fileCalls []string
	lastSince map[string]string
}

func newMockHistory() *mockHistory {
	return &mockHistory{
		commits:   make(map[string][]github.Commit),
		files:     make(map[string][]string),
		fileErr:   make(map[string]error),
		listErr:   make(map[string]error),
		lastSince: make(map[string]string),
	}
}

func (m *mockHistory) ListCommits(_ context.Context, repo string, opts github.ListOptions) ([]github.Commit, error) {
	if err, ok := m.listErr[repo]; ok {
		return nil, err
	}
	if !opts.Since.IsZero() {
		m.lastSince[repo] = opts.Since.UTC().String()
	}

	all := m.commits[repo]
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = len(all)
	}
	start := (opts.Page - 1) * perPage
	if start >= len(all) {
		return nil, nil
	}
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (m *mockHistory) CommitFiles(_ context.Context, _, sha string) ([]string, error) {
	m.fileCalls = append(m.fileCalls, sha)
	if err, ok := m.fileErr[sha]; ok {
		return nil, err
	}
	return m.files[sha], nil
}

func (m *mockHistory) CreateIssue(_ context.Context, _, _, _ string) error {
	return errors.New("not supported by mock")
}
